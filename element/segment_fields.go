package element

import (
	"fmt"

	"github.com/arloliu/hl7v2/format"
)

// fieldView is the shared delegation base for the specialized field variants
// a segment resolves at positions 0 through 2. Structural operations act on
// the raw storage child; Value and SetValue are supplied by each variant.
type fieldView struct {
	raw  *Builder
	self Element
}

func (f *fieldView) Level() format.Level { return f.raw.Level() }
func (f *fieldView) Index() int { return f.raw.Index() }
func (f *fieldView) Ancestor() Element { return f.raw.Ancestor() }
func (f *fieldView) Exists() bool { return f.raw.Exists() }
func (f *fieldView) Count() int { return f.raw.Count() }
func (f *fieldView) Delimiter() byte { return f.raw.Delimiter() }
func (f *fieldView) Delims() format.Delimiters { return f.raw.Delims() }
func (f *fieldView) Child(p int) Element { return f.raw.Child(p) }
func (f *fieldView) Children() []Element { return f.raw.Children() }
func (f *fieldView) Erase() { f.raw.Erase() }
func (f *fieldView) Delete(p int) bool { return f.raw.Delete(p) }
func (f *fieldView) Move(src, dst int) error { return f.raw.Move(src, dst) }
func (f *fieldView) setIndex(i int) { f.raw.setIndex(i) }

func (f *fieldView) Insert(p int, text string) (Element, error) { return f.raw.Insert(p, text) }
func (f *fieldView) InsertElement(p int, src Element) (Element, error) {
	return f.raw.InsertElement(p, src)
}

func (f *fieldView) SetValues(vals ...string) error { return f.raw.SetValues(vals...) }
func (f *fieldView) Seq() *Sequence                 { return &Sequence{el: f.self} }
func (f *fieldView) Values() []string               { return f.Seq().Strings() }
func (f *fieldView) GetValue(path ...int) string    { return queryValue(f.self, path...) }
func (f *fieldView) GetValues(path ...int) []string { return queryValues(f.self, path...) }

// typeField constrains field 0 to the segment type code.
type typeField struct {
	fieldView
	seg *Segment
}

func newTypeField(seg *Segment, raw *Builder) *typeField {
	f := &typeField{fieldView: fieldView{raw: raw}, seg: seg}
	f.self = f

	return f
}

func (f *typeField) Value() string { return f.raw.Value() }

func (f *typeField) SetValue(text string) error {
	if err := f.seg.checkType(text); err != nil {
		return err
	}
	if err := f.raw.SetValue(text); err != nil {
		return err
	}
	// Becoming the header claims the delimiter and encoding slots, so a
	// header built field by field serializes with the same suppressed
	// position 1 and live encoding at position 2 as a parsed one.
	if text == format.HeaderType {
		f.seg.reserve(1)
		f.seg.reserve(2)
	}

	return nil
}

func (f *typeField) Clone() Element { return f.raw.Clone() }

// delimField exposes the header segment's field 1: the field delimiter
// character itself, read from and written to the live delimiter
// configuration rather than from stored text.
type delimField struct {
	fieldView
	seg *Segment
}

func newDelimField(seg *Segment, raw *Builder) *delimField {
	f := &delimField{fieldView: fieldView{raw: raw}, seg: seg}
	f.self = f

	return f
}

func (f *delimField) Value() string { return string(f.seg.b.delims.Field) }

func (f *delimField) SetValue(text string) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid field delimiter %q: want a single character", text)
	}
	f.seg.b.delims.Field = text[0]
	f.raw.present = true

	return nil
}

func (f *delimField) Exists() bool { return true }

func (f *delimField) Clone() Element {
	c := newBuilder(format.LevelField, f.raw.index, f.raw.ancestor, f.raw.delims)
	_ = c.SetValue(f.Value())

	return c
}

// encodingField exposes the header segment's field 2: the ordered encoding
// characters (component, repetition, escape, subcomponent), also a live view
// over the delimiter configuration.
type encodingField struct {
	fieldView
	seg *Segment
}

func newEncodingField(seg *Segment, raw *Builder) *encodingField {
	f := &encodingField{fieldView: fieldView{raw: raw}, seg: seg}
	f.self = f

	return f
}

func (f *encodingField) Value() string { return f.seg.b.delims.Encoding() }

func (f *encodingField) SetValue(text string) error {
	if err := f.seg.b.delims.SetEncoding(text); err != nil {
		return err
	}
	f.raw.present = true

	return nil
}

func (f *encodingField) Exists() bool { return true }

func (f *encodingField) Clone() Element {
	c := newBuilder(format.LevelField, f.raw.index, f.raw.ancestor, f.raw.delims)
	_ = c.SetValue(f.Value())

	return c
}
