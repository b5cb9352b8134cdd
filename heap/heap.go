// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides an indexable binary min-heap.
//
// Unlike container/heap, each item can be told its own position
// inside the heap (see New), which lets a caller change the
// priority of an item that is already queued and restore the
// ordering in O(log n) without searching for it.
//
// The minimum element in the tree is the root, at index 0.
package heap

// New returns a binary min-heap on the items slice, using cmp to
// order them. cmp must return a negative number when a orders before b,
// a positive number when it orders after, and zero when neither does.
//
// If setIndex is non-nil, it will be called whenever an item in the
// heap is moved, and passed a pointer to the item that has moved and
// its new index in the slice. Items that leave the heap through Pop
// or Remove are passed index -1.
func New[E any](items []E, cmp func(a, b E) int, setIndex func(e *E, i int)) *Heap[E] {
	h := &Heap[E]{
		Items:    items,
		cmp:      cmp,
		setIndex: setIndex,
	}
	if setIndex != nil {
		for i := range h.Items {
			setIndex(&h.Items[i], i)
		}
	}
	h.Init()
	return h
}

// Heap implements an indexable binary min-heap.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item
	// orders before all the others. Callers must not reorder
	// the slice directly.
	Items    []E
	cmp      func(E, E) int
	setIndex func(*E, int)
}

// Compare is a three-way comparison of two costs suitable for use
// with New. It is computed from the signed difference so that equal
// costs compare as exactly zero.
func Compare(a, b float64) int {
	d := a - b
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariants required by the other routines in this package.
// Init is idempotent with respect to the heap invariants
// and may be called whenever the heap invariants may have been invalidated.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Reset empties the heap, keeping the backing array for reuse.
func (h *Heap[E]) Reset() {
	clear(h.Items)
	h.Items = h.Items[:0]
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	index := len(h.Items) - 1
	if h.setIndex != nil {
		h.setIndex(&h.Items[index], index)
	}
	h.up(index)
}

// Peek returns the minimum element without removing it.
// It reports false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.Items) == 0 {
		var zero E
		return zero, false
	}
	return h.Items[0], true
}

// Pop removes and returns the minimum element (according to cmp) from the heap.
// It reports false if the heap is empty.
// The complexity is O(log n) where n = h.Len().
// Pop is equivalent to Remove(0).
func (h *Heap[E]) Pop() (E, bool) {
	if len(h.Items) == 0 {
		var zero E
		return zero, false
	}
	n := len(h.Items) - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop(), true
}

// Reprioritize re-establishes the heap ordering after the element at index i
// has changed its value, and returns the element's new index.
// It first tries to move the element towards the root; only if that
// leaves it in place does it try to move it towards the leaves.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Reprioritize(i int) int {
	if j := h.up(i); j != i {
		return j
	}
	return h.down(i, len(h.Items))
}

// Fix is like Reprioritize but does not return the new index.
// Changing the value of the element at index i and then calling Fix is equivalent to,
// but less expensive than, calling Remove(i) followed by a Push of the new value.
func (h *Heap[E]) Fix(i int) {
	h.Reprioritize(i)
}

// Remove removes and returns the element at index i from the heap.
// It reports false if i is out of range.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Remove(i int) (E, bool) {
	if i < 0 || i >= len(h.Items) {
		var zero E
		return zero, false
	}
	n := len(h.Items) - 1
	if n != i {
		h.swap(i, n)
		if h.down(i, n) == i {
			h.up(i)
		}
	}
	return h.pop(), true
}

// Valid reports whether every item orders no earlier than its parent.
func (h *Heap[E]) Valid() bool {
	for i := 1; i < len(h.Items); i++ {
		if h.cmp(h.Items[(i-1)/2], h.Items[i]) > 0 {
			return false
		}
	}
	return true
}

func (h *Heap[E]) swap(i, j int) {
	h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
	if h.setIndex != nil {
		h.setIndex(&h.Items[i], i)
		h.setIndex(&h.Items[j], j)
	}
}

func (h *Heap[E]) pop() E {
	n := len(h.Items) - 1
	x := h.Items[n]
	var zero E
	h.Items[n] = zero
	h.Items = h.Items[0:n]
	if h.setIndex != nil {
		h.setIndex(&x, -1)
	}
	return x
}

// up moves the element at j towards the root while its parent
// orders after it, and returns its final index.
func (h *Heap[E]) up(j int) int {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if h.cmp(h.Items[i], h.Items[j]) <= 0 {
			break
		}
		h.swap(i, j)
		j = i
	}
	return j
}

// down moves the element at i0 towards the leaves of the first n items
// while a child orders before it, and returns its final index.
// When both children order equally the left one is chosen.
func (h *Heap[E]) down(i0, n int) int {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.cmp(h.Items[j2], h.Items[j1]) < 0 {
			j = j2 // = 2*i + 2  // right child
		}
		if h.cmp(h.Items[j], h.Items[i]) >= 0 {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i
}
