package graph

import "iter"

// Simple implements Graph with explicit lists of weighted, directed edges.
// The zero value is an empty graph ready to use.
type Simple struct {
	nodes []Node
	edges [][]edge
}

type edge struct {
	to   NodeID
	cost float64
}

// AddNode adds a node at c with the given penalty cost and returns its id.
// Ids are allocated densely in the order nodes are added.
func (g *Simple) AddNode(c Coord, penalty float64) NodeID {
	g.nodes = append(g.nodes, Node{Coord: c, Penalty: penalty})
	g.edges = append(g.edges, nil)
	return NodeID(len(g.nodes) - 1)
}

// AddEdge adds an edge from -> to with the given base cost.
// It panics if either node has not been added or if from == to.
func (g *Simple) AddEdge(from, to NodeID, cost float64) {
	if !Contains(g, from) || !Contains(g, to) {
		panic("graph: edge refers to unknown node")
	}
	if from == to {
		panic("graph: self edge")
	}
	g.edges[from] = append(g.edges[from], edge{to, cost})
}

// AddBiEdge adds edges in both directions between a and b.
func (g *Simple) AddBiEdge(a, b NodeID, cost float64) {
	g.AddEdge(a, b, cost)
	g.AddEdge(b, a, cost)
}

// SetPenalty changes the penalty cost of n.
func (g *Simple) SetPenalty(n NodeID, penalty float64) {
	g.nodes[n].Penalty = penalty
}

// Neighbors implements Graph.Neighbors.
func (g *Simple) Neighbors(n NodeID) iter.Seq2[NodeID, float64] {
	return func(yield func(NodeID, float64) bool) {
		for _, e := range g.edges[n] {
			if !yield(e.to, e.cost) {
				return
			}
		}
	}
}

// Node implements Graph.Node.
func (g *Simple) Node(n NodeID) Node {
	return g.nodes[n]
}

// NodeCount implements Graph.NodeCount.
func (g *Simple) NodeCount() int {
	return len(g.nodes)
}
