// Package topo finds the connected regions of a graph.
package topo

import (
	"slices"

	"github.com/rogpeppe/gridpath/graph"
)

// TarjanSCC returns the strongly connected components of the graph g using Tarjan's algorithm.
//
// A strongly connected component of a graph is a set of vertices where it's possible to reach any
// vertex in the set from any other. A path search between two nodes can only succeed
// when the goal is in the same component as the start or in one reachable from it;
// on graphs whose edges all run both ways, such as grids, it succeeds exactly when
// they share a component.
//
// Components are returned in reverse topological order: no component
// has edges into a component that comes after it. Each component's
// nodes are sorted by id.
func TarjanSCC(g graph.Graph) [][]graph.NodeID {
	n := g.NodeCount()
	t := tarjan{
		g:          g,
		indexTable: make([]int, n),
		lowLink:    make([]int, n),
		onStack:    make([]bool, n),
	}
	for v := range n {
		if t.indexTable[v] == 0 {
			t.strongconnect(graph.NodeID(v))
		}
	}
	for _, scc := range t.sccs {
		slices.Sort(scc)
	}
	return t.sccs
}

// Regions maps every node of g to the index of its component in the
// result of TarjanSCC.
func Regions(g graph.Graph) (sccs [][]graph.NodeID, region []int) {
	sccs = TarjanSCC(g)
	region = make([]int, g.NodeCount())
	for i, scc := range sccs {
		for _, n := range scc {
			region[n] = i
		}
	}
	return sccs, region
}

// tarjan implements Tarjan's strongly connected component finding
// algorithm. The implementation is from the pseudocode at
//
// http://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm?oldid=642744644
//
// Per-node state is indexed by node id. An index of zero means
// the node has not been visited.
type tarjan struct {
	g graph.Graph

	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []graph.NodeID

	sccs [][]graph.NodeID
}

// strongconnect is the strongconnect function described in the
// wikipedia article.
func (t *tarjan) strongconnect(v graph.NodeID) {
	t.index++
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for w := range t.g.Neighbors(v) {
		if t.indexTable[w] == 0 {
			t.strongconnect(w)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[w])
		} else if t.onStack[w] {
			t.lowLink[v] = min(t.lowLink[v], t.indexTable[w])
		}
	}

	// If v is a root node, pop the stack and generate an SCC.
	if t.lowLink[v] == t.indexTable[v] {
		var scc []graph.NodeID
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}
