package graph

import (
	"math"

	"github.com/rogpeppe/gridpath/heap"
)

// item holds an item in the node fringe being calculated by
// ShortestCosts.
type item struct {
	n     NodeID
	dist  float64
	index int
}

// ShortestCosts returns the minimum cost of reaching every node of g
// from the node from, using Dijkstra's algorithm. Costs follow the same
// model as the A* engine: a path costs the penalty of its first node
// plus, for each step, the edge cost and the penalty of the node
// entered. Unreachable nodes have cost +Inf.
//
// ShortestCosts visits every reachable node and is intended as a
// reference for checking faster searches, and for reachability queries.
func ShortestCosts(g Graph, from NodeID) []float64 {
	dist := make([]float64, g.NodeCount())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	if !Contains(g, from) {
		return dist
	}
	dist[from] = g.Node(from).Penalty
	items := make([]*item, g.NodeCount())
	h := heap.New(nil, func(i1, i2 *item) int {
		return heap.Compare(i1.dist, i2.dist)
	}, func(it **item, i int) {
		(*it).index = i
	})
	items[from] = &item{n: from, dist: dist[from]}
	h.Push(items[from])
	done := make([]bool, g.NodeCount())
	for h.Len() > 0 {
		nearest, _ := h.Pop()
		done[nearest.n] = true
		for to, cost := range g.Neighbors(nearest.n) {
			if done[to] {
				continue
			}
			d := nearest.dist + cost + g.Node(to).Penalty
			toItem := items[to]
			if toItem == nil {
				toItem = &item{n: to, dist: d}
				items[to] = toItem
				dist[to] = d
				h.Push(toItem)
			} else if d < toItem.dist {
				toItem.dist = d
				dist[to] = d
				h.Reprioritize(toItem.index)
			}
		}
	}
	return dist
}

// Reachable returns the number of nodes reachable from the node from,
// including from itself.
func Reachable(g Graph, from NodeID) int {
	n := 0
	for _, d := range ShortestCosts(g, from) {
		if !math.IsInf(d, 1) {
			n++
		}
	}
	return n
}
