package path

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/gridpath/graph"
)

var heuristicTests = []struct {
	from, to  graph.Coord
	euclidean float64
	octile    float64
}{{
	from: at(0, 0), to: at(0, 0),
}, {
	from: at(0, 0), to: at(3, 0),
	euclidean: 3, octile: 3,
}, {
	from: at(2, 2), to: at(0, 0),
	euclidean: 2 * math.Sqrt2, octile: 2 * math.Sqrt2,
}, {
	from: at(0, 0), to: at(3, 4),
	euclidean: 5, octile: 3*math.Sqrt2 + 1,
}, {
	from: at(-1, 5), to: at(4, 3),
	euclidean: math.Sqrt(29), octile: 2*math.Sqrt2 + 3,
}}

func TestHeuristics(t *testing.T) {
	for _, test := range heuristicTests {
		const eps = 1e-9
		qt.Check(t, qt.IsTrue(math.Abs(Euclidean(test.from, test.to)-test.euclidean) < eps), qt.Commentf("euclidean %v -> %v", test.from, test.to))
		qt.Check(t, qt.IsTrue(math.Abs(Octile(test.from, test.to)-test.octile) < eps), qt.Commentf("octile %v -> %v", test.from, test.to))
		qt.Check(t, qt.IsTrue(Octile(test.from, test.to) >= Euclidean(test.from, test.to)-eps))
		qt.Check(t, qt.Equals(Null(test.from, test.to), 0.0))
		qt.Check(t, qt.Equals(Euclidean(test.from, test.to), Euclidean(test.to, test.from)))
	}
}

func TestHeuristicByName(t *testing.T) {
	for _, name := range []string{"", "euclidean", "Euclidean", "EUCLIDEAN"} {
		h, err := HeuristicByName(name)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(h(at(0, 0), at(3, 4)), 5.0))
	}
	h, err := HeuristicByName("octile")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(h(at(0, 0), at(2, 0)), 2.0))

	for _, name := range []string{"null", "Dijkstra"} {
		h, err := HeuristicByName(name)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(h(at(0, 0), at(9, 9)), 0.0))
	}

	_, err = HeuristicByName("manhattan")
	qt.Assert(t, qt.ErrorMatches(err, `unknown heuristic "manhattan" \(want one of dijkstra, euclidean, null, octile\)`))
}

func TestHeuristicNames(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(HeuristicNames(), []string{"dijkstra", "euclidean", "null", "octile"}))
}
