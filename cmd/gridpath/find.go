package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/graph/path"
	"github.com/rogpeppe/gridpath/mermaid"
)

func findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "print the cheapest path between two cells",
		ArgsUsage: "MAP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "start cell as x,y (default the map's S cell)",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "goal cell as x,y (default the map's G cell)",
			},
			&cli.BoolFlag{
				Name:  "mermaid",
				Usage: "print the path as a Mermaid flowchart",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print search statistics",
			},
			heuristicFlag(),
			verboseFlag(),
		},
		Action: runFind,
	}
}

func runFind(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMap(cmd)
	if err != nil {
		return err
	}
	from, err := endpoint(cmd, "from", m.Start, m.HasStart)
	if err != nil {
		return err
	}
	to, err := endpoint(cmd, "to", m.Goal, m.HasGoal)
	if err != nil {
		return err
	}
	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, path.WithStats(cmd.Bool("stats")))
	s := path.New(m.Grid, opts...)
	res := s.FindPath(m.Grid.NodeAt(from), m.Grid.NodeAt(to))

	w := cmd.Root().Writer
	if !res.Found() {
		fmt.Fprintln(w, "no path")
	} else {
		if cmd.Bool("mermaid") {
			data, err := mermaid.NewPath(m.Grid, res.Path).MarshalMermaid()
			if err != nil {
				return err
			}
			w.Write(data)
		} else {
			fmt.Fprintln(w, formatCoords(m.Grid.Coords(res.Path.Nodes)))
		}
		fmt.Fprintf(w, "cost %.3f\n", res.Path.Cost)
	}
	if cmd.Bool("stats") {
		st := res.Stats
		fmt.Fprintf(w, "opened %d closed %d peak %d reprioritized %d\n", st.Opened, st.Closed, st.PeakOpen, st.Reprioritized)
		if st.FailsafeTripped {
			fmt.Fprintln(w, "search abandoned")
		}
	}
	return nil
}

// endpoint returns the coordinate given by the named flag,
// falling back to the map's marker.
func endpoint(cmd *cli.Command, flag string, marker graph.Coord, hasMarker bool) (graph.Coord, error) {
	if s := cmd.String(flag); s != "" {
		return parseCoord(s)
	}
	if !hasMarker {
		return graph.Coord{}, fmt.Errorf("map has no %s cell; use --%s", markerName[flag], flag)
	}
	return marker, nil
}

var markerName = map[string]string{
	"from": "start",
	"to":   "goal",
}

func formatCoords(cs []graph.Coord) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
