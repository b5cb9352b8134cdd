package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/graph/path"
	"github.com/rogpeppe/gridpath/graph/topo"
	"github.com/rogpeppe/gridpath/metrics"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "run random searches and print metrics about them",
		ArgsUsage: "MAP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "runs",
				Usage: "number of start and goal pairs to search between",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "number of times each pair is requested",
				Value: 4,
			},
			&cli.BoolFlag{
				Name:  "connected",
				Usage: "only pick goals that can be reached from the start",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "random seed",
				Value: 1,
			},
			heuristicFlag(),
			verboseFlag(),
		},
		Action: runBench,
	}
}

func runBench(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMap(cmd)
	if err != nil {
		return err
	}
	runs, repeat := int(cmd.Int("runs")), int(cmd.Int("repeat"))
	if runs < 0 || repeat < 1 {
		return errors.New("--runs must not be negative and --repeat must be positive")
	}
	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}
	var open []graph.NodeID
	for n := range m.Grid.NodeCount() {
		if m.Grid.NodeAt(m.Grid.CoordOf(graph.NodeID(n))) != graph.NoNode {
			open = append(open, graph.NodeID(n))
		}
	}
	if len(open) == 0 {
		return fmt.Errorf("map %s has no open cells", m.Name)
	}

	// pick returns a random goal for a search from start.
	pick := func(rnd *rand.Rand, start graph.NodeID) graph.NodeID {
		return open[rnd.IntN(len(open))]
	}
	if cmd.Bool("connected") {
		sccs, region := topo.Regions(m.Grid)
		pick = func(rnd *rand.Rand, start graph.NodeID) graph.NodeID {
			scc := sccs[region[start]]
			return scc[rnd.IntN(len(scc))]
		}
	}

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	cache := path.NewCache(path.New(m.Grid, append(opts, path.WithStats(true))...))
	seed := uint64(cmd.Int("seed"))
	rnd := rand.New(rand.NewPCG(seed, seed))
	for range runs {
		start := open[rnd.IntN(len(open))]
		goal := pick(rnd, start)
		for range repeat {
			if err := ctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res := cache.FindPath(start, goal)
			rec.Observe(res, time.Since(t0))
		}
	}

	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
