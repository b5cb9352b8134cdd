// Package graph defines the graph contract consumed by the
// path-finding engine in graph/path, together with a simple
// adjacency-list implementation of it.
//
// Nodes are identified by dense integer ids: a graph with
// NodeCount n uses ids 0 to n-1. Engines index per-node scratch
// storage by id, so ids must be stable for as long as an engine
// is used with the graph.
package graph

import (
	"fmt"
	"iter"
)

// NodeID identifies a node within a Graph.
type NodeID int

// NoNode is returned by lookups that find no usable node,
// for example a coordinate outside a grid or inside an obstacle.
const NoNode NodeID = -1

// Coord is an integer 2D coordinate.
type Coord struct {
	X, Y int
}

// Add returns c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Sub returns c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Node holds the attributes of a node.
type Node struct {
	// Coord locates the node. It is used by heuristics.
	Coord Coord
	// Penalty is the cost incurred for entering the node,
	// independent of the edge used to reach it.
	Penalty float64
}

// Graph is implemented by the owner of the nodes.
type Graph interface {
	// Neighbors returns the nodes adjacent to n, each with the base
	// cost of the edge leading to it. The sequence must be finite and
	// must not include n itself.
	Neighbors(n NodeID) iter.Seq2[NodeID, float64]

	// Node returns the attributes of n.
	Node(n NodeID) Node

	// NodeCount returns the number of nodes in the graph.
	NodeCount() int
}

// Contains reports whether n is a valid id in g.
func Contains(g Graph, n NodeID) bool {
	return n >= 0 && int(n) < g.NodeCount()
}
