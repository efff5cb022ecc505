// Package store provides the sparse, index-addressable child storage shared
// by every level of the message hierarchy, together with the re-indexing
// primitives (shift-for-insert, delete-and-compact, move) that keep sibling
// numbering dense and sort-order consistent across arbitrary edits.
package store

import "sort"

// Store maps a non-negative position to a child of type T. Insertion order is
// irrelevant; iteration order is always by ascending position. Re-indexing
// rebuilds the mapping in a single call, so a position set is never observable
// in a half-renumbered state.
type Store[T any] struct {
	children map[int]T
	onIndex  func(child T, index int)
}

// New creates an empty store. onIndex, if non-nil, is invoked whenever a
// re-indexing primitive assigns a child its new position, letting the owner
// keep per-child bookkeeping (such as a cached index) in sync.
func New[T any](onIndex func(child T, index int)) *Store[T] {
	return &Store[T]{
		children: make(map[int]T),
		onIndex:  onIndex,
	}
}

// Get returns the child at position p, if one has been stored there.
func (s *Store[T]) Get(p int) (T, bool) {
	c, ok := s.children[p]
	return c, ok
}

// Put stores child at position p, replacing any previous occupant.
func (s *Store[T]) Put(p int, child T) {
	s.children[p] = child
	if s.onIndex != nil {
		s.onIndex(child, p)
	}
}

// Len returns the number of populated positions.
func (s *Store[T]) Len() int {
	return len(s.children)
}

// Count returns the highest populated position plus one, or zero when the
// store is empty. This is deliberately not the number of populated children:
// a store holding only position 5 reports count 6, and serialization relies
// on that sparsity to emit padding delimiters.
func (s *Store[T]) Count() int {
	max := -1
	for p := range s.children {
		if p > max {
			max = p
		}
	}

	return max + 1
}

// Indices returns the populated positions in ascending order.
func (s *Store[T]) Indices() []int {
	idx := make([]int, 0, len(s.children))
	for p := range s.children {
		idx = append(idx, p)
	}
	sort.Ints(idx)

	return idx
}

// Range calls fn for every populated position in ascending order.
func (s *Store[T]) Range(fn func(p int, child T)) {
	for _, p := range s.Indices() {
		fn(p, s.children[p])
	}
}

// ShiftUp increments the position of every child at or above p by one,
// opening a gap at p without overwriting the current occupant. The caller
// materializes the new child at p afterwards.
func (s *Store[T]) ShiftUp(p int) {
	next := make(map[int]T, len(s.children))
	for i, c := range s.children {
		if i >= p {
			i++
		}
		next[i] = c
	}
	s.replace(next)
}

// Remove deletes the child at position p and decrements every position above
// p by one, compacting the store with no gap left behind. The relative order
// of all surviving children is preserved. It reports whether a child was
// present at p.
func (s *Store[T]) Remove(p int) bool {
	if _, ok := s.children[p]; !ok {
		return false
	}

	next := make(map[int]T, len(s.children)-1)
	for i, c := range s.children {
		if i == p {
			continue
		}
		if i > p {
			i--
		}
		next[i] = c
	}
	s.replace(next)

	return true
}

// Move relocates the child at position src to position dst. Positions above
// src compact down to close the gap, then positions at or above dst (after
// compaction) open up to make room, so the net effect is removal at src
// followed by insertion at dst among the remaining children. Untouched
// children keep their relative order whether dst is above or below src.
// It reports whether a child was present at src.
func (s *Store[T]) Move(src, dst int) bool {
	moved, ok := s.children[src]
	if !ok {
		return false
	}
	if src == dst {
		return true
	}

	next := make(map[int]T, len(s.children))
	for i, c := range s.children {
		if i == src {
			continue
		}
		if i > src {
			i--
		}
		if i >= dst {
			i++
		}
		next[i] = c
	}
	next[dst] = moved
	s.replace(next)

	return true
}

// Clear removes every child.
func (s *Store[T]) Clear() {
	s.children = make(map[int]T)
}

func (s *Store[T]) replace(next map[int]T) {
	s.children = next
	if s.onIndex == nil {
		return
	}
	for i, c := range next {
		s.onIndex(c, i)
	}
}
