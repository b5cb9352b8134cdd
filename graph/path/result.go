package path

import "github.com/rogpeppe/gridpath/graph"

// Path is an ordered sequence of nodes from a start node to a goal node
// inclusive, together with its total cost.
type Path struct {
	Nodes []graph.NodeID
	Cost  float64
}

// Len returns the number of nodes in the path.
func (p Path) Len() int {
	return len(p.Nodes)
}

// Start returns the first node of the path, or graph.NoNode if the path is empty.
func (p Path) Start() graph.NodeID {
	if len(p.Nodes) == 0 {
		return graph.NoNode
	}
	return p.Nodes[0]
}

// Goal returns the last node of the path, or graph.NoNode if the path is empty.
func (p Path) Goal() graph.NodeID {
	if len(p.Nodes) == 0 {
		return graph.NoNode
	}
	return p.Nodes[len(p.Nodes)-1]
}

// Connects reports whether p is non-empty and runs from start to goal.
func (p Path) Connects(start, goal graph.NodeID) bool {
	return len(p.Nodes) > 0 && p.Start() == start && p.Goal() == goal
}

// Stats holds counters describing a single search.
type Stats struct {
	// Opened counts nodes admitted to the open set.
	Opened int
	// Closed counts nodes whose cost was finalized.
	Closed int
	// PeakOpen is the largest number of nodes open at once.
	PeakOpen int
	// Reprioritized counts in-place updates of open nodes
	// after a cheaper route to them was found.
	Reprioritized int
	// FailsafeTripped reports whether the search was abandoned
	// because it ran for more iterations than the graph has nodes.
	FailsafeTripped bool
}

// Result holds the outcome of a search. When no path was found,
// Path is the zero Path: nil nodes and zero cost.
type Result struct {
	Path Path
	// Stats is only filled in when statistics are enabled.
	Stats Stats
	// Cached reports that the result was returned by a Cache
	// without searching.
	Cached bool
}

// Found reports whether the search found a path.
func (r Result) Found() bool {
	return len(r.Path.Nodes) > 0
}
