package element

// Sequence is a lazy, index-addressable view over an element's sub-values,
// bounded by the element's current value count. It is a thin adapter over the
// same positional accessors used for direct child indexing, not a
// materialized copy: reads and writes go through Child, so accessing a
// position reserves storage exactly like direct indexing does.
type Sequence struct {
	el Element
}

// Len returns the element's value count (highest populated position plus one).
func (s *Sequence) Len() int { return s.el.Count() }

// At returns the text at position i.
func (s *Sequence) At(i int) string { return s.el.Child(i).Value() }

// Set assigns the text at position i.
func (s *Sequence) Set(i int, v string) error { return s.el.Child(i).SetValue(v) }

// Strings snapshots the view into a slice of Len() texts.
func (s *Sequence) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}
