// Package path finds minimum-cost paths through a graph.Graph
// using the A* algorithm.
//
// A path's cost is the penalty of its first node plus, for
// each step, the base cost of the edge taken and the penalty of
// the node entered. Costs must not be negative; this is not checked.
//
// Failing to find a path is a normal outcome, reported as a Result
// with no nodes rather than as an error: a start or goal of
// graph.NoNode, a goal that cannot be reached, and a search that
// exceeds its iteration bound all produce the same empty Result.
package path

import (
	"log/slog"
	"slices"

	"github.com/rogpeppe/gridpath/graph"
	"github.com/rogpeppe/gridpath/heap"
)

// AStar finds the A*-shortest path from s to t in g using the heuristic h.
// It is a shorthand for New(g, WithHeuristic(h)).FindPath(s, t), for
// callers that do not search repeatedly.
func AStar(g graph.Graph, s, t graph.NodeID, h Heuristic) Result {
	return New(g, WithHeuristic(h)).FindPath(s, t)
}

type nodeState uint8

const (
	unseen nodeState = iota
	opened
	closed
)

// record holds the A* accounting for a node during one search.
type record struct {
	// gen holds the search generation for which the record is valid.
	gen    uint32
	state  nodeState
	parent graph.NodeID
	// g holds the cost of the best known path from the start node,
	// including the penalty of this node.
	g float64
	// h holds the heuristic estimate of the remaining cost.
	h         float64
	heapIndex int
}

func (r *record) f() float64 {
	return r.g + r.h
}

// Search runs A* searches over a single graph. It keeps its scratch
// storage between searches, so that repeated searches do not
// allocate beyond the returned paths.
//
// A Search must not be used concurrently. Independent Search values
// may run concurrently over the same graph as long as the graph is
// not modified meanwhile.
type Search struct {
	g    graph.Graph
	opts options

	gen uint32
	// records is indexed by node id.
	records []record
	open    *heap.Heap[graph.NodeID]
}

// New returns a Search over g.
func New(g graph.Graph, opts ...Option) *Search {
	s := &Search{
		g: g,
		opts: options{
			heuristic: Euclidean,
		},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	if s.opts.logger == nil {
		s.opts.logger = slog.New(slog.DiscardHandler)
	}
	s.open = heap.New(nil, s.compare, s.setIndex)
	return s
}

// Graph returns the graph searched by s.
func (s *Search) Graph() graph.Graph {
	return s.g
}

// compare orders open nodes by total estimated cost. Nodes of equal
// cost are ordered however the heap happens to hold them.
func (s *Search) compare(a, b graph.NodeID) int {
	return heap.Compare(s.records[a].f(), s.records[b].f())
}

func (s *Search) setIndex(n *graph.NodeID, i int) {
	s.records[*n].heapIndex = i
}

// FindPath returns the minimum-cost path from start to goal.
func (s *Search) FindPath(start, goal graph.NodeID) Result {
	log := s.opts.logger
	if !graph.Contains(s.g, start) || !graph.Contains(s.g, goal) {
		log.Debug("path endpoint absent", "start", start, "goal", goal)
		return Result{}
	}
	failsafe := s.reset()
	var stats Stats

	goalCoord := s.g.Node(goal).Coord
	n := s.g.Node(start)
	r := s.record(start)
	r.g = n.Penalty
	r.h = s.opts.heuristic(n.Coord, goalCoord)
	s.push(start, &stats)

	for s.open.Len() > 0 {
		if failsafe <= 0 {
			stats.FailsafeTripped = true
			log.Debug("path search abandoned", "start", start, "goal", goal, "closed", stats.Closed)
			return s.result(Path{}, stats)
		}
		failsafe--

		current, _ := s.open.Pop()
		s.check()
		cur := &s.records[current]
		cur.state = closed
		stats.Closed++

		if current == goal {
			p := Path{
				Nodes: s.reconstruct(current),
				Cost:  cur.g,
			}
			log.Debug("path found", "start", start, "goal", goal, "cost", p.Cost, "len", len(p.Nodes), "closed", stats.Closed)
			return s.result(p, stats)
		}

		for next, cost := range s.g.Neighbors(current) {
			r := s.record(next)
			switch r.state {
			case closed:
				continue
			case opened:
				g := cur.g + cost + s.g.Node(next).Penalty
				if g < r.g {
					// h depends only on the node, so f drops with g.
					r.g = g
					r.parent = current
					s.open.Reprioritize(r.heapIndex)
					s.check()
					stats.Reprioritized++
				}
			default:
				n := s.g.Node(next)
				r.g = cur.g + cost + n.Penalty
				r.h = s.opts.heuristic(n.Coord, goalCoord)
				r.parent = current
				s.push(next, &stats)
			}
		}
	}
	log.Debug("no path", "start", start, "goal", goal, "closed", stats.Closed)
	return s.result(Path{}, stats)
}

// reset discards the state of any previous search and returns
// the iteration bound for the next one.
func (s *Search) reset() int {
	s.open.Reset()
	n := s.g.NodeCount()
	if len(s.records) < n {
		s.records = make([]record, n)
	}
	s.gen++
	if s.gen == 0 {
		// The generation counter has wrapped, so old stamps could
		// be mistaken for current ones.
		clear(s.records)
		s.gen = 1
	}
	if s.opts.iterationLimit > 0 && s.opts.iterationLimit < n {
		return s.opts.iterationLimit
	}
	return n
}

// record returns the record for n in the current search.
func (s *Search) record(n graph.NodeID) *record {
	r := &s.records[n]
	if r.gen != s.gen {
		*r = record{
			gen:       s.gen,
			parent:    graph.NoNode,
			heapIndex: -1,
		}
	}
	return r
}

func (s *Search) push(n graph.NodeID, stats *Stats) {
	s.records[n].state = opened
	s.open.Push(n)
	s.check()
	stats.Opened++
	stats.PeakOpen = max(stats.PeakOpen, s.open.Len())
}

// reconstruct returns the path ending at n by walking back
// through the parent links.
func (s *Search) reconstruct(n graph.NodeID) []graph.NodeID {
	var nodes []graph.NodeID
	for ; n != graph.NoNode; n = s.records[n].parent {
		nodes = append(nodes, n)
	}
	slices.Reverse(nodes)
	return nodes
}

func (s *Search) result(p Path, stats Stats) Result {
	if !s.opts.stats {
		stats = Stats{}
	}
	return Result{
		Path:  p,
		Stats: stats,
	}
}

func (s *Search) check() {
	if !s.opts.checkInvariants {
		return
	}
	if !s.open.Valid() {
		panic("path: heap invariant violated")
	}
	for i, n := range s.open.Items {
		if r := &s.records[n]; r.heapIndex != i || r.state != opened {
			panic("path: open set index out of step with heap")
		}
	}
}
