package element

import (
	"fmt"
	"strings"

	"github.com/arloliu/hl7v2/format"
	"github.com/arloliu/hl7v2/internal/hash"
	"github.com/arloliu/hl7v2/internal/options"
)

// DefaultSegmentSeparator terminates segments on the wire per the HL7v2
// convention.
const DefaultSegmentSeparator byte = '\r'

// Message is the root of an element tree. It owns the delimiter
// configuration shared by every descendant, the segment store, and the
// segment separator used when composing or parsing multi-segment text.
type Message struct {
	b      *Builder
	sep    byte
	delims format.Delimiters
}

var _ Element = (*Message)(nil)

// Option configures a Message during construction.
type Option = options.Option[*Message]

// WithDelimiters overrides the initial delimiter set. A parsed header
// segment still adopts its own declaration over this.
func WithDelimiters(d format.Delimiters) Option {
	return options.NoError(func(m *Message) { m.delims = d })
}

// WithSegmentSeparator overrides the character separating segments.
func WithSegmentSeparator(c byte) Option {
	return options.New(func(m *Message) error {
		if c == 0 {
			return fmt.Errorf("invalid segment separator %q", c)
		}
		m.sep = c

		return nil
	})
}

// NewMessage creates an empty message tree with the default delimiter set.
func NewMessage(opts ...Option) (*Message, error) {
	m := &Message{
		sep:    DefaultSegmentSeparator,
		delims: format.DefaultDelimiters(),
	}
	m.b = newBuilder(format.LevelMessage, 0, nil, &m.delims)
	m.b.self = m
	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// Segment returns the segment at position p, materializing it on first
// access.
func (m *Message) Segment(p int) *Segment {
	seg, _ := m.Child(p).(*Segment)
	return seg
}

// SegmentsOfType returns every materialized segment whose type code equals t,
// in ascending position order.
func (m *Message) SegmentsOfType(t string) []*Segment {
	var out []*Segment
	for _, c := range m.Children() {
		if seg, ok := c.(*Segment); ok && seg.Type() == t {
			out = append(out, seg)
		}
	}

	return out
}

// SegmentByType returns the first segment whose type code equals t.
func (m *Message) SegmentByType(t string) (*Segment, bool) {
	segs := m.SegmentsOfType(t)
	if len(segs) == 0 {
		return nil, false
	}

	return segs[0], true
}

// Fingerprint returns the xxHash64 of the message's canonical serialized
// text, usable as a dedup or idempotency key: equal trees hash equal.
func (m *Message) Fingerprint() uint64 { return hash.ID(m.Value()) }

// Level returns format.LevelMessage.
func (m *Message) Level() format.Level { return m.b.Level() }

// Index returns 0; the root occupies no position under an ancestor.
func (m *Message) Index() int { return m.b.Index() }

// Ancestor returns nil; message roots own no upward reference.
func (m *Message) Ancestor() Element { return nil }

// Exists reports whether any segment carries content.
func (m *Message) Exists() bool { return m.b.Exists() }

// Count returns the highest materialized segment position plus one.
func (m *Message) Count() int { return m.b.Count() }

// Delimiter returns the segment separator.
func (m *Message) Delimiter() byte { return m.sep }

// Delims returns the current delimiter configuration of the tree.
func (m *Message) Delims() format.Delimiters { return m.delims }

// Child returns the segment at position p as an Element.
func (m *Message) Child(p int) Element { return m.b.Child(p) }

// Children returns the materialized segments in ascending position order.
func (m *Message) Children() []Element { return m.b.Children() }

// Seq returns the lazy positional view over the message's segments.
func (m *Message) Seq() *Sequence { return &Sequence{el: m} }

// Values returns the segment texts at positions 0 through Count()-1.
func (m *Message) Values() []string { return m.Seq().Strings() }

// SetValues replaces the segments from texts assigned to positions 1, 2, ...
func (m *Message) SetValues(vals ...string) error { return m.b.SetValues(vals...) }

// GetValue resolves a positional path (segment, field, repetition,
// component, subcomponent) and returns the reached value. Negative or
// omitted trailing positions mean "the whole element reached so far".
func (m *Message) GetValue(path ...int) string { return queryValue(m, path...) }

// GetValues resolves a positional path and returns the reached sub-values.
func (m *Message) GetValues(path ...int) []string { return queryValues(m, path...) }

// Value composes the full message text: segments ascending, separated (and
// gap-padded) by the segment separator.
func (m *Message) Value() string { return m.b.compose(m.sep, -1) }

// SetValue parses full message text. Line endings are normalized to the
// segment separator when it is the conventional carriage return, each line
// is distributed through the segment setter, and the previous segment set
// and delimiter configuration are restored if any line fails, so a failed
// parse never leaves a partial tree.
func (m *Message) SetValue(text string) error {
	if m.sep == '\r' {
		text = strings.ReplaceAll(text, "\r\n", "\r")
		text = strings.ReplaceAll(text, "\n", "\r")
	}

	prev := m.b.children
	prevPresent := m.b.present
	// A header line adopts its delimiters in place before a later line can
	// fail, so the configuration needs restoring along with the store.
	prevDelims := m.delims
	m.b.children = nil
	m.b.ensureChildren()
	m.b.present = true

	for i, line := range strings.Split(text, string(m.sep)) {
		if err := m.Child(i).SetValue(line); err != nil {
			m.b.children = prev
			m.b.present = prevPresent
			m.delims = prevDelims

			return fmt.Errorf("segment %d: %w", i, err)
		}
	}

	return nil
}

// Erase drops every segment, leaving an empty tree.
func (m *Message) Erase() { m.b.Erase() }

// Clone returns an independent message carrying the same serialized text,
// separator, and delimiter configuration.
func (m *Message) Clone() Element {
	c, _ := NewMessage(WithSegmentSeparator(m.sep), WithDelimiters(m.delims))
	_ = c.SetValue(m.Value())

	return c
}

// Insert shifts segments at or above p up by one and parses text into a new
// segment at p.
func (m *Message) Insert(p int, text string) (Element, error) { return m.b.Insert(p, text) }

// InsertElement inserts a copy of src's subtree as a segment at p.
func (m *Message) InsertElement(p int, src Element) (Element, error) {
	return m.b.InsertElement(p, src)
}

// Delete removes the segment at p and compacts the positions above it.
func (m *Message) Delete(p int) bool { return m.b.Delete(p) }

// Move relocates the segment at src to dst.
func (m *Message) Move(src, dst int) error { return m.b.Move(src, dst) }

func (m *Message) setIndex(i int) { m.b.setIndex(i) }
