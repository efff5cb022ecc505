package element

import (
	"fmt"
	"strings"

	"github.com/arloliu/hl7v2/format"
)

// Segment is the field-level specialization of the generic engine.
//
// Field 0 always holds the three-letter segment type. While that type is the
// header code ("MSH"), field 1 resolves to the field delimiter character
// itself and field 2 to the remaining encoding characters; both are live
// views over the tree's delimiter configuration, decided by inspecting the
// current field-0 text at every access. Serializing a header segment
// suppresses field 1's delimiter-plus-text pair, because the delimiter
// character already appears right after the type code.
type Segment struct {
	b *Builder
}

var _ Element = (*Segment)(nil)

func newSegment(ancestor Element, index int, delims *format.Delimiters) *Segment {
	s := &Segment{b: newBuilder(format.LevelSegment, index, ancestor, delims)}
	s.b.self = s

	return s
}

// Type returns the segment type code held in field 0.
func (s *Segment) Type() string { return s.currentType() }

// SetType assigns the segment type code, enforcing the header-migration rule.
func (s *Segment) SetType(t string) error { return s.Child(0).SetValue(t) }

// IsHeader reports whether field 0 currently holds the header code.
func (s *Segment) IsHeader() bool { return s.isHeader() }

// Level returns format.LevelSegment.
func (s *Segment) Level() format.Level { return s.b.Level() }

// Index returns the segment's position under the message root.
func (s *Segment) Index() int { return s.b.Index() }

// Ancestor returns the message root owning this segment, or nil.
func (s *Segment) Ancestor() Element { return s.b.Ancestor() }

// Exists reports whether the segment carries any content.
func (s *Segment) Exists() bool { return s.b.Exists() }

// Count returns the highest materialized field position plus one.
func (s *Segment) Count() int { return s.b.Count() }

// Delimiter returns 0; segments are separated by the message root's
// segment separator, not by a character from the delimiter set.
func (s *Segment) Delimiter() byte { return s.b.Delimiter() }

// Delims returns the current delimiter configuration of the tree.
func (s *Segment) Delims() format.Delimiters { return s.b.Delims() }

// Children returns the materialized fields in ascending position order.
func (s *Segment) Children() []Element { return s.b.Children() }

// Seq returns the lazy positional view over the segment's fields.
func (s *Segment) Seq() *Sequence { return &Sequence{el: s} }

// Values returns the field texts at positions 0 through Count()-1.
func (s *Segment) Values() []string { return s.Seq().Strings() }

// SetValues replaces the fields from texts assigned to positions 1, 2, ...;
// the type code at position 0 survives.
func (s *Segment) SetValues(vals ...string) error { return s.b.SetValues(vals...) }

// GetValue resolves a positional path below this segment.
func (s *Segment) GetValue(path ...int) string { return queryValue(s, path...) }

// GetValues resolves a positional path below this segment.
func (s *Segment) GetValues(path ...int) []string { return queryValues(s, path...) }

// Erase resets the segment, type code included, without detaching it from
// the message.
func (s *Segment) Erase() { s.b.Erase() }

// Insert shifts fields at or above p up by one and assigns text at p.
func (s *Segment) Insert(p int, text string) (Element, error) { return s.b.Insert(p, text) }

// InsertElement inserts a copy of src's subtree at field position p.
func (s *Segment) InsertElement(p int, src Element) (Element, error) {
	return s.b.InsertElement(p, src)
}

// Delete removes the field at p and compacts the positions above it.
func (s *Segment) Delete(p int) bool { return s.b.Delete(p) }

// Move relocates the field at src to dst.
func (s *Segment) Move(src, dst int) error { return s.b.Move(src, dst) }

// Clone returns an independent segment carrying the same serialized text.
func (s *Segment) Clone() Element {
	c := newSegment(s.b.ancestor, s.b.index, s.b.delims)
	_ = c.SetValue(s.Value())

	return c
}

func (s *Segment) setIndex(i int) { s.b.setIndex(i) }

// Child returns the field at position p. Positions 0 through 2 resolve to
// the tagged variant the current field-0 text implies: the type field, plus
// the delimiter and encoding views while the type is the header code.
func (s *Segment) Child(p int) Element {
	if p < 0 {
		panic("hl7v2: negative element position")
	}
	raw := s.fieldBuilder(p)
	switch {
	case p == 0:
		return newTypeField(s, raw)
	case p == 1 && s.isHeader():
		return newDelimField(s, raw)
	case p == 2 && s.isHeader():
		return newEncodingField(s, raw)
	default:
		return raw
	}
}

// Value serializes the segment: the type code, then one field delimiter per
// position followed by the field's text, with the header's field-1 slot
// suppressed because its character already follows the type code.
func (s *Segment) Value() string {
	skip := -1
	if s.isHeader() {
		skip = 1
	}

	return s.b.compose(s.b.delims.Field, skip)
}

// SetValue replaces the whole segment from delimited text. Text shorter than
// a type code plus one delimiter is accepted as a no-op, leaving prior
// content untouched. Header text adopts its fourth character as the field
// delimiter for the whole tree and its first field as the encoding
// characters, re-inserting the delimiter placeholder that splitting consumed.
func (s *Segment) SetValue(text string) error {
	if len(text) < format.TypeLen+1 {
		return nil
	}
	if text[:format.TypeLen] == format.HeaderType {
		return s.setHeaderValue(text)
	}

	return s.setOrdinaryValue(text)
}

func (s *Segment) setHeaderValue(text string) error {
	if err := s.checkTypeChange(format.HeaderType); err != nil {
		return err
	}

	fd := text[format.TypeLen]
	pieces := strings.Split(text[format.TypeLen+1:], string(fd))
	if pieces[0] != "" {
		// Validate the encoding declaration before committing any part of
		// the delimiter set, so a rejected header leaves it untouched.
		if err := s.b.delims.SetEncoding(pieces[0]); err != nil {
			return err
		}
	}
	s.b.delims.Field = fd

	s.b.ensureChildren()
	s.b.children.Clear()
	s.b.present = true

	if err := s.fieldBuilder(0).SetValue(format.HeaderType); err != nil {
		return err
	}
	// Positions 1 and 2 are reserved; their live values come from the
	// delimiter configuration, so only the storage slots are claimed here.
	s.reserve(1)
	s.reserve(2)
	for i := 1; i < len(pieces); i++ {
		if err := s.fieldBuilder(i + 2).SetValue(pieces[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *Segment) setOrdinaryValue(text string) error {
	pieces := strings.Split(text, string(s.b.delims.Field))
	if err := s.checkType(pieces[0]); err != nil {
		return err
	}

	s.b.ensureChildren()
	s.b.children.Clear()
	s.b.present = true
	for i, piece := range pieces {
		if err := s.fieldBuilder(i).SetValue(piece); err != nil {
			return err
		}
	}

	return nil
}

// currentType reads the stored field-0 text directly, bypassing the variant
// wrappers so role resolution cannot recurse.
func (s *Segment) currentType() string {
	if s.b.children == nil {
		return ""
	}
	c, ok := s.b.children.Get(0)
	if !ok {
		return ""
	}

	return c.Value()
}

func (s *Segment) isHeader() bool { return s.currentType() == format.HeaderType }

// checkTypeChange enforces the header-migration invariant: once field 0
// holds a concrete type, its header-ness is fixed.
func (s *Segment) checkTypeChange(next string) error {
	cur := s.currentType()
	if cur == "" || cur == next {
		return nil
	}
	if (cur == format.HeaderType) != (next == format.HeaderType) {
		return fmt.Errorf("segment type %q -> %q: %w", cur, next, ErrTypeMigration)
	}

	return nil
}

// checkType validates a prospective type code: the migration invariant plus
// the fixed code length, shared by the type field and full-text setters.
func (s *Segment) checkType(next string) error {
	if err := s.checkTypeChange(next); err != nil {
		return err
	}
	if next != "" && len(next) != format.TypeLen {
		return fmt.Errorf("invalid segment type %q: want %d characters", next, format.TypeLen)
	}

	return nil
}

// fieldBuilder materializes the raw storage child at position p.
func (s *Segment) fieldBuilder(p int) *Builder {
	s.b.ensureChildren()
	if c, ok := s.b.children.Get(p); ok {
		if raw, ok := c.(*Builder); ok {
			return raw
		}
	}
	raw := newBuilder(format.LevelField, p, s, s.b.delims)
	s.b.children.Put(p, raw)

	return raw
}

// reserve claims a storage slot whose live value is provided elsewhere.
func (s *Segment) reserve(p int) {
	raw := s.fieldBuilder(p)
	raw.present = true
}
