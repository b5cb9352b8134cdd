// Package grid provides an 8-connected tile grid that implements
// graph.Graph, for use with the path-finding engine in graph/path.
//
// Each cell of a grid is a node. A cell may be blocked, in which case
// it cannot be entered, and carries a penalty cost paid on entry.
// Moving to an orthogonal neighbor costs 1 and moving diagonally
// costs √2, in addition to the penalty of the cell entered.
package grid

import (
	"iter"
	"math"

	"github.com/rogpeppe/gridpath/graph"
)

// Grid is a rectangular grid of cells.
// Cell (x, y) has node id y*Width+x.
type Grid struct {
	width, height int
	cells         []cell
}

type cell struct {
	blocked bool
	penalty float64
}

// offsets holds the neighbor offsets in the order they are visited.
var offsets = func() []graph.Coord {
	var offs []graph.Coord
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offs = append(offs, graph.Coord{X: dx, Y: dy})
		}
	}
	return offs
}()

// New returns an open grid of the given size with no penalties.
// It panics if either dimension is negative.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic("grid: negative size")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Width returns the number of columns in g.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in g.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether c lies within g.
func (g *Grid) InBounds(c graph.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) index(c graph.Coord) int {
	if !g.InBounds(c) {
		panic("grid: coordinate out of bounds")
	}
	return c.Y*g.width + c.X
}

// SetBlocked marks the cell at c as blocked or open.
// It panics if c is out of bounds.
func (g *Grid) SetBlocked(c graph.Coord, blocked bool) {
	g.cells[g.index(c)].blocked = blocked
}

// Blocked reports whether the cell at c is blocked.
// Cells outside the grid are reported as blocked.
func (g *Grid) Blocked(c graph.Coord) bool {
	return !g.InBounds(c) || g.cells[g.index(c)].blocked
}

// SetPenalty sets the cost of entering the cell at c.
// It panics if c is out of bounds.
func (g *Grid) SetPenalty(c graph.Coord, penalty float64) {
	g.cells[g.index(c)].penalty = penalty
}

// Penalty returns the cost of entering the cell at c.
func (g *Grid) Penalty(c graph.Coord) float64 {
	return g.cells[g.index(c)].penalty
}

// NodeAt returns the node for the cell at c, or graph.NoNode if c is
// out of bounds or blocked.
func (g *Grid) NodeAt(c graph.Coord) graph.NodeID {
	if g.Blocked(c) {
		return graph.NoNode
	}
	return graph.NodeID(g.index(c))
}

// CoordOf returns the coordinate of the cell for node n.
func (g *Grid) CoordOf(n graph.NodeID) graph.Coord {
	return graph.Coord{X: int(n) % g.width, Y: int(n) / g.width}
}

// Coords returns the coordinates of the given nodes.
func (g *Grid) Coords(nodes []graph.NodeID) []graph.Coord {
	cs := make([]graph.Coord, len(nodes))
	for i, n := range nodes {
		cs[i] = g.CoordOf(n)
	}
	return cs
}

// Neighbors implements graph.Graph.Neighbors. It visits the open cells
// surrounding n row by row, from the row above to the row below.
func (g *Grid) Neighbors(n graph.NodeID) iter.Seq2[graph.NodeID, float64] {
	return func(yield func(graph.NodeID, float64) bool) {
		c := g.CoordOf(n)
		for _, off := range offsets {
			next := g.NodeAt(c.Add(off))
			if next == graph.NoNode {
				continue
			}
			if !yield(next, math.Hypot(float64(off.X), float64(off.Y))) {
				return
			}
		}
	}
}

// Node implements graph.Graph.Node.
func (g *Grid) Node(n graph.NodeID) graph.Node {
	return graph.Node{
		Coord:   g.CoordOf(n),
		Penalty: g.cells[n].penalty,
	}
}

// NodeCount implements graph.Graph.NodeCount.
// Blocked cells are included in the count.
func (g *Grid) NodeCount() int {
	return len(g.cells)
}
