// The gridpath command finds paths across tile maps.
//
// Usage:
//
//	gridpath find [flags] MAP
//	gridpath bench [flags] MAP
//
// The find command prints the cheapest path between two cells of the
// map, by default its S and G cells. The bench command runs random
// searches over the map and prints metrics about them in Prometheus
// text format.
//
// Maps are in the text format read by grid.Parse, or in JSON as read
// by grid.ParseConfig when the file name ends in .json.
// Environment variables may be set in a .env file in the current
// directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/graph/path"
	"github.com/rogpeppe/gridpath/grid"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot load .env file", "err", err)
	}
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "gridpath",
		Usage: "find paths across tile maps",
		Commands: []*cli.Command{
			findCommand(),
			benchCommand(),
		},
	}
}

// heuristicFlag and verboseFlag return new instances of the flags
// common to all subcommands.

func heuristicFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "heuristic",
		Usage:   "cost estimate to use: " + strings.Join(path.HeuristicNames(), ", "),
		Value:   "euclidean",
		Sources: cli.EnvVars("GRIDPATH_HEURISTIC"),
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log each search",
		Sources: cli.EnvVars("GRIDPATH_VERBOSE"),
	}
}

// loadMap loads the map named by the command's only argument.
func loadMap(cmd *cli.Command) (*grid.Map, error) {
	if cmd.NArg() != 1 {
		return nil, fmt.Errorf("want exactly one map file, got %d arguments", cmd.NArg())
	}
	return grid.Load(cmd.Args().First())
}

// searchOptions returns the engine options selected by the
// command's flags.
func searchOptions(cmd *cli.Command) ([]path.Option, error) {
	h, err := path.HeuristicByName(cmd.String("heuristic"))
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	return []path.Option{
		path.WithHeuristic(h),
		path.WithLogger(logger),
	}, nil
}

// parseCoord parses a coordinate in the form x,y.
func parseCoord(s string) (graph.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graph.Coord{}, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return graph.Coord{}, fmt.Errorf("invalid coordinate %q: bad x", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return graph.Coord{}, fmt.Errorf("invalid coordinate %q: bad y", s)
	}
	return graph.Coord{X: x, Y: y}, nil
}
