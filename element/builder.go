package element

import (
	"fmt"
	"strings"

	"github.com/arloliu/hl7v2/format"
	"github.com/arloliu/hl7v2/internal/pool"
	"github.com/arloliu/hl7v2/internal/store"
)

// Builder is the shared mutable implementation of Element used by every
// level of the hierarchy. The field, repetition and component levels use it
// unchanged; the subcomponent level stores leaf text; Segment and Message
// wrap it with their level-specific rules.
type Builder struct {
	level    format.Level
	index    int
	ancestor Element
	delims   *format.Delimiters
	children *store.Store[Element]
	text     string // leaf text, subcomponent level only
	present  bool

	// self is the outermost Element view of this node. Specialized wrappers
	// (Segment, Message) point it at themselves so the generic paths route
	// child access and serialization through their overrides.
	self Element
}

var _ Element = (*Builder)(nil)

func newBuilder(level format.Level, index int, ancestor Element, delims *format.Delimiters) *Builder {
	b := &Builder{
		level:    level,
		index:    index,
		ancestor: ancestor,
		delims:   delims,
	}
	b.self = b

	return b
}

// Level returns the hierarchy tier of this element.
func (b *Builder) Level() format.Level { return b.level }

// Index returns the position this element occupies under its ancestor.
func (b *Builder) Index() int { return b.index }

// Ancestor returns the owning element, or nil at the root.
func (b *Builder) Ancestor() Element { return b.ancestor }

// Delimiter returns the character separating siblings at this level.
func (b *Builder) Delimiter() byte { return b.delims.For(b.level) }

// Delims returns the current delimiter configuration of the tree.
func (b *Builder) Delims() format.Delimiters { return *b.delims }

// Exists reports whether this element or any of its children carries content.
func (b *Builder) Exists() bool {
	if b.present {
		return true
	}
	exists := false
	if b.children != nil {
		b.children.Range(func(_ int, c Element) {
			if c.Exists() {
				exists = true
			}
		})
	}

	return exists
}

// Count returns the highest materialized child position plus one.
func (b *Builder) Count() int {
	if b.children == nil {
		return 0
	}

	return b.children.Count()
}

// Child returns the element at position p, materializing it on first access.
func (b *Builder) Child(p int) Element {
	if p < 0 {
		panic("hl7v2: negative element position")
	}
	b.ensureChildren()
	if c, ok := b.children.Get(p); ok {
		return c
	}
	c := b.newChild(p)
	b.children.Put(p, c)

	return c
}

// Children returns the materialized children in ascending position order.
func (b *Builder) Children() []Element {
	if b.children == nil {
		return nil
	}
	out := make([]Element, 0, b.children.Len())
	for _, p := range b.children.Indices() {
		out = append(out, b.self.Child(p))
	}

	return out
}

// Value composes the canonical delimited text of this element.
func (b *Builder) Value() string {
	if b.level == format.LevelSubcomponent {
		return b.text
	}

	return b.compose(b.delims.For(b.level.Child()), -1)
}

// SetValue replaces the element's content from delimited text.
func (b *Builder) SetValue(text string) error {
	if b.level == format.LevelSubcomponent {
		b.text = text
		b.present = true

		return nil
	}

	b.ensureChildren()
	b.children.Clear()
	b.present = true
	if text == "" {
		return nil
	}

	delim := b.delims.For(b.level.Child())
	base := b.level.ChildBase()
	for i, piece := range strings.Split(text, string(delim)) {
		if err := b.self.Child(base + i).SetValue(piece); err != nil {
			return err
		}
	}

	return nil
}

// Values returns the texts at positions 0 through Count()-1.
func (b *Builder) Values() []string { return b.Seq().Strings() }

// SetValues replaces all children from texts assigned to positions 1, 2, ...
// A child already stored at the reserved position 0 survives.
func (b *Builder) SetValues(vals ...string) error {
	b.ensureChildren()
	zero, hadZero := b.children.Get(0)
	b.children.Clear()
	if hadZero {
		b.children.Put(0, zero)
	}
	b.present = true
	for i, v := range vals {
		if err := b.self.Child(i + 1).SetValue(v); err != nil {
			return err
		}
	}

	return nil
}

// Seq returns the lazy positional view over this element's sub-values.
func (b *Builder) Seq() *Sequence { return &Sequence{el: b.self} }

// GetValue resolves a positional path and returns the reached value.
func (b *Builder) GetValue(path ...int) string { return queryValue(b.self, path...) }

// GetValues resolves a positional path and returns the reached sub-values.
func (b *Builder) GetValues(path ...int) []string { return queryValues(b.self, path...) }

// Erase resets this element to an absent, empty state in place.
func (b *Builder) Erase() {
	b.text = ""
	if b.children != nil {
		b.children.Clear()
	}
	b.present = false
}

// Clone returns an independent copy carrying the same serialized text.
func (b *Builder) Clone() Element {
	c := newBuilder(b.level, b.index, b.ancestor, b.delims)
	_ = c.SetValue(b.self.Value())

	return c
}

// Insert shifts children at or above p up by one and materializes a new
// child at p holding text.
func (b *Builder) Insert(p int, text string) (Element, error) {
	if p < 0 {
		return nil, fmt.Errorf("insert at negative position %d", p)
	}
	b.ensureChildren()
	b.children.ShiftUp(p)
	c := b.self.Child(p)
	if err := c.SetValue(text); err != nil {
		// Removing the just-materialized child compacts the shifted
		// positions back, so a rejected insert leaves no trace.
		b.children.Remove(p)

		return nil, err
	}
	b.present = true

	return c, nil
}

// InsertElement inserts a copy of src's subtree at p.
func (b *Builder) InsertElement(p int, src Element) (Element, error) {
	return b.self.Insert(p, src.Value())
}

// Delete removes the child at p and compacts the positions above it.
func (b *Builder) Delete(p int) bool {
	if p < 0 || b.children == nil {
		return false
	}

	return b.children.Remove(p)
}

// Move relocates the child at src to dst.
func (b *Builder) Move(src, dst int) error {
	if src < 0 || dst < 0 {
		return fmt.Errorf("move with negative position %d -> %d", src, dst)
	}
	if b.children == nil || !b.children.Move(src, dst) {
		return fmt.Errorf("move: no child at position %d", src)
	}

	return nil
}

func (b *Builder) setIndex(i int) { b.index = i }

func (b *Builder) ensureChildren() {
	if b.children == nil {
		b.children = store.New[Element](func(c Element, i int) { c.setIndex(i) })
	}
}

func (b *Builder) newChild(p int) Element {
	if b.level == format.LevelMessage {
		return newSegment(b.self, p, b.delims)
	}

	return newBuilder(b.level.Child(), p, b.self, b.delims)
}

// compose walks materialized children in ascending order, emitting one
// delimiter per position between the previous emitted position and the
// current one, then the child's own text. prev starts at the level's child
// base so content below the base never produces leading delimiters. skip
// marks one position (the header segment's delimiter slot) that contributes
// neither delimiter nor text but still advances the gap origin.
func (b *Builder) compose(delim byte, skip int) string {
	if b.children == nil || b.children.Len() == 0 {
		return ""
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	prev := b.level.ChildBase()
	for _, p := range b.children.Indices() {
		if p == skip {
			prev = p
			continue
		}
		for i := 0; i < p-prev; i++ {
			buf.WriteByte(delim)
		}
		buf.WriteString(b.self.Child(p).Value())
		prev = p
	}

	return buf.String()
}
