package path

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rogpeppe/gridpath/graph"
)

// Heuristic returns an estimate of the cost of travelling between two
// coordinates. For AStar to return optimal paths the estimate must be
// admissible (it never exceeds the true remaining cost) and consistent
// (for every edge, h(x) <= cost(x, y) + h(y)).
type Heuristic func(from, to graph.Coord) float64

// Euclidean is the straight-line distance between two coordinates.
// It is admissible and consistent for graphs whose edge costs are at
// least the Euclidean length of the edge.
func Euclidean(from, to graph.Coord) float64 {
	d := to.Sub(from)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Octile is the length of the shortest 8-connected route between two
// coordinates on an open grid: diagonal steps cost √2 and
// orthogonal steps cost 1. It is tighter than Euclidean on such grids.
func Octile(from, to graph.Coord) float64 {
	d := to.Sub(from)
	dx, dy := abs(d.X), abs(d.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return float64(dy)*math.Sqrt2 + float64(dx-dy)
}

// Null is an admissible, consistent heuristic that will not speed up computation.
// With it, AStar behaves as Dijkstra's algorithm.
func Null(_, _ graph.Coord) float64 {
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var heuristics = map[string]Heuristic{
	"euclidean": Euclidean,
	"octile":    Octile,
	"null":      Null,
	"dijkstra":  Null,
}

// HeuristicNames returns the names accepted by HeuristicByName, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HeuristicByName returns the heuristic with the given
// case-insensitive name. The empty name selects Euclidean.
func HeuristicByName(name string) (Heuristic, error) {
	if name == "" {
		return Euclidean, nil
	}
	h, ok := heuristics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (want one of %s)", name, strings.Join(HeuristicNames(), ", "))
	}
	return h, nil
}
