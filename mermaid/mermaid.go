// Package mermaid renders graphs and paths through them in Mermaid
// flowchart format. Mermaid is a text-based diagramming tool that
// generates diagrams from markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/graph/path"
)

// PathStyle is applied to the nodes of the highlighted path.
const PathStyle = "fill:#fd6,stroke:#333"

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// NewGraph returns a Marshaler that draws every node of g and every
// edge out of it, labelled with the edge cost. The nodes of p are
// highlighted and the edges between them are drawn thick. The whole
// graph is drawn, so this is only useful for small graphs.
func NewGraph(g graph.Graph, p path.Path) Marshaler {
	return &graphImpl{g: g, p: p}
}

// NewPath returns a Marshaler that draws only the nodes of p and the
// steps between them.
func NewPath(g graph.Graph, p path.Path) Marshaler {
	return &pathImpl{g: g, p: p}
}

type graphImpl struct {
	g graph.Graph
	p path.Path
}

func (m *graphImpl) MarshalMermaid() ([]byte, error) {
	steps, err := pathSteps(m.g, m.p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for i := range m.g.NodeCount() {
		n := graph.NodeID(i)
		writeNode(&buf, m.g, n, steps.on[n])
		for next, cost := range m.g.Neighbors(n) {
			writeEdge(&buf, n, next, cost, steps.takes(n, next))
		}
	}
	return buf.Bytes(), nil
}

type pathImpl struct {
	g graph.Graph
	p path.Path
}

func (m *pathImpl) MarshalMermaid() ([]byte, error) {
	steps, err := pathSteps(m.g, m.p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph LR\n")
	for i, n := range m.p.Nodes {
		writeNode(&buf, m.g, n, true)
		if i > 0 {
			prev := m.p.Nodes[i-1]
			writeEdge(&buf, prev, n, steps.cost[prev], true)
		}
	}
	return buf.Bytes(), nil
}

// steps holds the edges taken by a path, keyed by the node they leave.
type steps struct {
	on   map[graph.NodeID]bool
	next map[graph.NodeID]graph.NodeID
	cost map[graph.NodeID]float64
}

// takes reports whether the path steps from one node to the other.
func (s steps) takes(from, to graph.NodeID) bool {
	next, ok := s.next[from]
	return ok && next == to
}

func pathSteps(g graph.Graph, p path.Path) (steps, error) {
	s := steps{
		on:   make(map[graph.NodeID]bool),
		next: make(map[graph.NodeID]graph.NodeID),
		cost: make(map[graph.NodeID]float64),
	}
	for _, n := range p.Nodes {
		if !graph.Contains(g, n) {
			return steps{}, fmt.Errorf("mermaid: path node %d not in graph", n)
		}
		s.on[n] = true
	}
	for i, n := range p.Nodes {
		if i == len(p.Nodes)-1 {
			break
		}
		to := p.Nodes[i+1]
		found := false
		for next, cost := range g.Neighbors(n) {
			if next == to {
				s.next[n], s.cost[n] = to, cost
				found = true
				break
			}
		}
		if !found {
			return steps{}, fmt.Errorf("mermaid: path has no edge from %d to %d", n, to)
		}
	}
	return s, nil
}

func writeNode(buf *bytes.Buffer, g graph.Graph, n graph.NodeID, highlight bool) {
	node := g.Node(n)
	text := node.Coord.String()
	if node.Penalty != 0 {
		text += " +" + formatCost(node.Penalty)
	}
	fmt.Fprintf(buf, "  %s[%q]\n", nodeID(n), text)
	if highlight {
		fmt.Fprintf(buf, "  style %s %s\n", nodeID(n), PathStyle)
	}
}

func writeEdge(buf *bytes.Buffer, from, to graph.NodeID, cost float64, thick bool) {
	arrow := "-->"
	if thick {
		arrow = "==>"
	}
	fmt.Fprintf(buf, "  %s%s|%s|%s\n", nodeID(from), arrow, formatCost(cost), nodeID(to))
}

func nodeID(n graph.NodeID) string {
	return "n" + strconv.Itoa(int(n))
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', 3, 64)
}
