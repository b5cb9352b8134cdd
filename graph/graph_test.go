package graph

import (
	"maps"
	"math"
	"testing"

	"github.com/go-quicktest/qt"
)

// newLine returns a graph of n nodes along the x axis,
// each joined to the next in both directions with cost 1.
func newLine(n int) (*Simple, []NodeID) {
	var g Simple
	var ids []NodeID
	for i := 0; i < n; i++ {
		ids = append(ids, g.AddNode(Coord{i, 0}, 0))
		if i > 0 {
			g.AddBiEdge(ids[i-1], ids[i], 1)
		}
	}
	return &g, ids
}

func TestSimpleNeighbors(t *testing.T) {
	var g Simple
	a := g.AddNode(Coord{0, 0}, 0)
	b := g.AddNode(Coord{1, 0}, 2)
	c := g.AddNode(Coord{1, 1}, 0)
	g.AddEdge(a, b, 1)
	g.AddEdge(a, c, math.Sqrt2)

	qt.Assert(t, qt.Equals(g.NodeCount(), 3))
	qt.Assert(t, qt.Equals(g.Node(b), Node{Coord: Coord{1, 0}, Penalty: 2}))

	var got []NodeID
	var costs []float64
	for n, cost := range g.Neighbors(a) {
		got = append(got, n)
		costs = append(costs, cost)
	}
	qt.Assert(t, qt.DeepEquals(got, []NodeID{b, c}))
	qt.Assert(t, qt.DeepEquals(costs, []float64{1, math.Sqrt2}))

	// Edges are directed.
	qt.Assert(t, qt.HasLen(maps.Collect(g.Neighbors(b)), 0))

	g.SetPenalty(b, 5)
	qt.Assert(t, qt.Equals(g.Node(b).Penalty, 5.0))
}

func TestSimpleNeighborsStopsEarly(t *testing.T) {
	g, ids := newLine(3)
	n := 0
	for range g.Neighbors(ids[1]) {
		n++
		break
	}
	qt.Assert(t, qt.Equals(n, 1))
}

func TestSimplePanics(t *testing.T) {
	g, ids := newLine(2)
	qt.Assert(t, qt.PanicMatches(func() {
		g.AddEdge(ids[0], ids[0], 1)
	}, "graph: self edge"))
	qt.Assert(t, qt.PanicMatches(func() {
		g.AddEdge(ids[0], 7, 1)
	}, "graph: edge refers to unknown node"))
}

func TestContains(t *testing.T) {
	g, _ := newLine(2)
	qt.Assert(t, qt.IsTrue(Contains(g, 0)))
	qt.Assert(t, qt.IsTrue(Contains(g, 1)))
	qt.Assert(t, qt.IsFalse(Contains(g, 2)))
	qt.Assert(t, qt.IsFalse(Contains(g, NoNode)))
}

func TestCoord(t *testing.T) {
	c := Coord{2, 3}
	qt.Assert(t, qt.Equals(c.Add(Coord{1, -1}), Coord{3, 2}))
	qt.Assert(t, qt.Equals(c.Sub(Coord{2, 3}), Coord{}))
	qt.Assert(t, qt.Equals(c.String(), "(2,3)"))
}

type costTest struct {
	about string
	build func(g *Simple)
	from  NodeID
	want  []float64
}

var inf = math.Inf(1)

var costTests = []costTest{{
	about: "line",
	build: func(g *Simple) {
		for i := 0; i < 4; i++ {
			g.AddNode(Coord{i, 0}, 0)
		}
		g.AddEdge(0, 1, 1)
		g.AddEdge(1, 2, 1)
		g.AddEdge(2, 3, 1)
	},
	from: 0,
	want: []float64{0, 1, 2, 3},
}, {
	about: "penalties are paid on entry",
	build: func(g *Simple) {
		g.AddNode(Coord{0, 0}, 1)
		g.AddNode(Coord{1, 0}, 10)
		g.AddNode(Coord{0, 1}, 0)
		g.AddNode(Coord{1, 1}, 2)
		g.AddEdge(0, 1, 1)
		g.AddEdge(0, 2, 1)
		g.AddEdge(2, 3, 1)
		g.AddEdge(1, 3, 1)
	},
	from: 0,
	want: []float64{1, 12, 2, 5},
}, {
	about: "longer path is cheaper",
	build: func(g *Simple) {
		for i := 0; i < 4; i++ {
			g.AddNode(Coord{i, 0}, 0)
		}
		g.AddEdge(0, 3, 10)
		g.AddEdge(0, 1, 1)
		g.AddEdge(1, 2, 1)
		g.AddEdge(2, 3, 1)
	},
	from: 0,
	want: []float64{0, 1, 2, 3},
}, {
	about: "disconnected",
	build: func(g *Simple) {
		for i := 0; i < 4; i++ {
			g.AddNode(Coord{i, 0}, 0)
		}
		g.AddBiEdge(0, 1, 1)
		g.AddBiEdge(2, 3, 1)
	},
	from: 1,
	want: []float64{1, 0, inf, inf},
}}

func TestShortestCosts(t *testing.T) {
	for _, test := range costTests {
		t.Run(test.about, func(t *testing.T) {
			var g Simple
			test.build(&g)
			qt.Assert(t, qt.DeepEquals(ShortestCosts(&g, test.from), test.want))
		})
	}
}

func TestShortestCostsUnknownSource(t *testing.T) {
	g, _ := newLine(2)
	qt.Assert(t, qt.DeepEquals(ShortestCosts(g, NoNode), []float64{inf, inf}))
}

func TestReachable(t *testing.T) {
	g, ids := newLine(5)
	qt.Assert(t, qt.Equals(Reachable(g, ids[2]), 5))
	qt.Assert(t, qt.Equals(Reachable(g, NoNode), 0))
}
