package topo

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/graph/path"
	"github.com/rogpeppe/gridpath/grid"
)

func newGraph(nodes int, edges [][2]graph.NodeID) *graph.Simple {
	g := &graph.Simple{}
	for i := range nodes {
		g.AddNode(graph.Coord{X: i}, 0)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1], 1)
	}
	return g
}

var sccTests = []struct {
	about  string
	nodes  int
	edges  [][2]graph.NodeID
	expect [][]graph.NodeID
}{{
	about:  "empty",
	expect: nil,
}, {
	about:  "isolated nodes",
	nodes:  3,
	expect: [][]graph.NodeID{{0}, {1}, {2}},
}, {
	about:  "chain",
	nodes:  3,
	edges:  [][2]graph.NodeID{{0, 1}, {1, 2}},
	expect: [][]graph.NodeID{{2}, {1}, {0}},
}, {
	about:  "cycle",
	nodes:  3,
	edges:  [][2]graph.NodeID{{0, 1}, {1, 2}, {2, 0}},
	expect: [][]graph.NodeID{{0, 1, 2}},
}, {
	about: "two cycles joined one way",
	nodes: 5,
	edges: [][2]graph.NodeID{
		{0, 1}, {1, 0},
		{1, 2},
		{2, 3}, {3, 4}, {4, 2},
	},
	expect: [][]graph.NodeID{{2, 3, 4}, {0, 1}},
}, {
	about:  "edge into finished component",
	nodes:  2,
	edges:  [][2]graph.NodeID{{1, 0}},
	expect: [][]graph.NodeID{{0}, {1}},
}}

func TestTarjanSCC(t *testing.T) {
	for _, test := range sccTests {
		t.Run(test.about, func(t *testing.T) {
			g := newGraph(test.nodes, test.edges)
			qt.Assert(t, qt.DeepEquals(TarjanSCC(g), test.expect))
		})
	}
}

func TestRegionsOnGrid(t *testing.T) {
	g := grid.New(5, 3)
	for y := range 3 {
		g.SetBlocked(graph.Coord{X: 2, Y: y}, true)
	}
	sccs, region := Regions(g)
	// Two open regions plus one component per blocked cell.
	qt.Assert(t, qt.HasLen(sccs, 5))
	left, right := g.NodeAt(graph.Coord{X: 0, Y: 0}), g.NodeAt(graph.Coord{X: 4, Y: 2})
	qt.Assert(t, qt.Not(qt.Equals(region[left], region[right])))
	qt.Assert(t, qt.HasLen(sccs[region[left]], 6))
	qt.Assert(t, qt.HasLen(sccs[region[right]], 6))

	// Searches succeed exactly within a region.
	s := path.New(g)
	for _, a := range sccs[region[left]] {
		qt.Assert(t, qt.IsTrue(s.FindPath(left, a).Found()))
	}
	qt.Assert(t, qt.IsFalse(s.FindPath(left, right).Found()))
}
