package element

import (
	"errors"

	"github.com/arloliu/hl7v2/format"
)

// ErrTypeMigration is returned when a segment that already holds a concrete
// type would change into or out of the header role. The header segment owns
// the delimiter declarations for the whole tree, so its role is fixed once a
// different concrete type has been assigned.
var ErrTypeMigration = errors.New("segment type cannot migrate into or out of the header role")

// Element is the capability every node of the message tree exposes,
// regardless of its level.
//
// Positions are zero-based. Accessing a position always succeeds: a child is
// materialized on first access, which reserves storage but does not change
// the element's observable value. Negative positions are reserved as
// "whole element" sentinels by GetValue and GetValues and must not be passed
// to Child; doing so panics, like indexing a slice out of range.
type Element interface {
	// Level reports which tier of the hierarchy this element occupies.
	Level() format.Level

	// Index is the position this element occupies under its ancestor.
	Index() int

	// Ancestor returns the owning element, or nil at the message root.
	// The reference is non-owning: ancestors own children, never the reverse.
	Ancestor() Element

	// Exists reports whether the element carries non-default content or was
	// explicitly assigned a value. Materializing a position alone does not
	// make the child exist.
	Exists() bool

	// Count returns the highest populated child position plus one, or zero
	// when no child was ever materialized. Sparse stores deliberately report
	// counts larger than the number of populated children.
	Count() int

	// Value composes the element's canonical delimited text from its
	// children, padding unpopulated positions with delimiters. On the leaf
	// level it returns the stored text.
	Value() string

	// SetValue replaces the element's entire content by splitting text on
	// the child delimiter and rebuilding the child set. On failure the
	// element keeps its prior content.
	SetValue(text string) error

	// Values returns the texts of positions 0 through Count()-1.
	Values() []string

	// SetValues replaces all children from an ordered sequence of texts
	// assigned to positions 1, 2, ... (position 0 is reserved).
	SetValues(vals ...string) error

	// Seq returns a lazy index-addressable view over the element's
	// sub-values, backed by the same positional accessors as Child.
	Seq() *Sequence

	// GetValue descends one level per non-negative position in path and
	// returns that element's value. A negative position, or the end of the
	// path, means "the whole element reached so far".
	GetValue(path ...int) string

	// GetValues is GetValue's counterpart returning the reached element's
	// sub-values.
	GetValues(path ...int) []string

	// Child returns the element at position p, materializing it on first
	// access. Panics when p is negative.
	Child(p int) Element

	// Children returns the currently materialized children in ascending
	// position order.
	Children() []Element

	// Delimiter returns the character separating siblings at this element's
	// level, or 0 where no single character applies (message, segment).
	Delimiter() byte

	// Delims returns the delimiter configuration this element resolves
	// against. Descendants share their ancestor's configuration unless the
	// header segment overrides it tree-wide.
	Delims() format.Delimiters

	// Erase resets the element to an absent, empty state without removing it
	// from its ancestor's store. Distinct from Delete on the ancestor.
	Erase()

	// Clone returns an independent copy carrying the same serialized text,
	// the same index, and the same (referential) ancestor, with no shared
	// child storage.
	Clone() Element

	// Insert shifts every child at or above p up by one and materializes a
	// new child at p with the given text. It returns the inserted child.
	Insert(p int, text string) (Element, error)

	// InsertElement inserts a copy of src's full subtree at p.
	InsertElement(p int, src Element) (Element, error)

	// Delete removes the child at p and compacts the positions above it.
	// It reports whether a child was removed.
	Delete(p int) bool

	// Move relocates the child at src to dst, preserving the relative order
	// of every untouched child.
	Move(src, dst int) error

	// setIndex keeps a child's cached position in sync during re-indexing.
	setIndex(i int)
}

func queryValue(el Element, path ...int) string {
	return descend(el, path).Value()
}

func queryValues(el Element, path ...int) []string {
	return descend(el, path).Values()
}

func descend(el Element, path []int) Element {
	cur := el
	for _, p := range path {
		if p < 0 {
			break
		}
		cur = cur.Child(p)
	}

	return cur
}
