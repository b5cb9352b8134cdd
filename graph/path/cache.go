package path

import "github.com/rogpeppe/gridpath/graph"

// Cache remembers the most recent path found by a Search and
// returns it again, without searching, for as long as callers keep
// asking for a path between the same two nodes. This suits callers
// that re-request a path every frame while neither end moves.
//
// The cache holds at most one path. It is not told about changes to
// the graph; call Invalidate after changing penalties or obstacles.
//
// A Cache must not be used concurrently.
type Cache struct {
	search *Search
	last   Result
}

// NewCache returns a Cache that computes paths with s.
func NewCache(s *Search) *Cache {
	return &Cache{
		search: s,
	}
}

// FindPath returns the cached result if its path runs from start to
// goal, with Cached set. Otherwise it searches afresh, remembering the
// result if a path was found and forgetting any previous one.
// Nodes of a cached path are shared between the results that
// return it and must not be modified.
func (c *Cache) FindPath(start, goal graph.NodeID) Result {
	if c.last.Path.Connects(start, goal) {
		r := c.last
		r.Cached = true
		return r
	}
	r := c.search.FindPath(start, goal)
	if r.Found() {
		c.last = r
	} else {
		c.last = Result{}
	}
	return r
}

// Path returns the cached path and reports whether there is one.
func (c *Cache) Path() (Path, bool) {
	return c.last.Path, c.last.Found()
}

// Invalidate forgets the cached path.
func (c *Cache) Invalidate() {
	c.last = Result{}
}
