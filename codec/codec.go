// Package codec interprets element text as typed values: HL7v2 timestamps,
// numerics, booleans, escaped free text, and coded (CE-style) values. Every
// read and write routes through the element's Value accessor, so a codec
// never sees or depends on the builder's internal storage.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oarkflow/convert"

	"github.com/arloliu/hl7v2/element"
	"github.com/arloliu/hl7v2/format"
)

// Codec is a converter view bound to one element.
type Codec struct {
	el element.Element
}

// Bind attaches a converter view to an element.
func Bind(el element.Element) *Codec {
	return &Codec{el: el}
}

// Element returns the bound element.
func (c *Codec) Element() element.Element { return c.el }

// Text returns the element's value with delimiter escape sequences resolved.
func (c *Codec) Text() string {
	return format.Unescape(c.el.Value(), c.el.Delims())
}

// SetText writes free text, escaping any delimiter characters it contains.
func (c *Codec) SetText(s string) error {
	return c.el.SetValue(format.Escape(s, c.el.Delims()))
}

// Int parses the element's value as a signed integer.
func (c *Codec) Int() (int64, error) {
	v := strings.TrimSpace(c.el.Value())
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, ok := convert.ToFloat64(v)
	if !ok {
		return 0, fmt.Errorf("value %q is not numeric", v)
	}

	return int64(f), nil
}

// SetInt writes a signed integer.
func (c *Codec) SetInt(n int64) error {
	return c.el.SetValue(strconv.FormatInt(n, 10))
}

// Float parses the element's value as a float.
func (c *Codec) Float() (float64, error) {
	v := strings.TrimSpace(c.el.Value())
	f, ok := convert.ToFloat64(v)
	if !ok {
		return 0, fmt.Errorf("value %q is not numeric", v)
	}

	return f, nil
}

// SetFloat writes a float in its shortest round-trippable form.
func (c *Codec) SetFloat(f float64) error {
	return c.el.SetValue(strconv.FormatFloat(f, 'f', -1, 64))
}

// Bool parses the element's value as a boolean. The HL7v2 yes/no spellings
// Y and N are handled first, then the usual textual spellings.
func (c *Codec) Bool() (bool, error) {
	v := strings.TrimSpace(c.el.Value())
	switch v {
	case "Y", "y":
		return true, nil
	case "N", "n":
		return false, nil
	}
	b, ok := convert.ToBool(v)
	if !ok {
		return false, fmt.Errorf("value %q is not a boolean", v)
	}

	return b, nil
}

// SetBool writes the HL7v2 yes/no spelling.
func (c *Codec) SetBool(b bool) error {
	if b {
		return c.el.SetValue("Y")
	}

	return c.el.SetValue("N")
}

// Coded is a CE-style coded value: identifier, display text, and the coding
// system the identifier belongs to, carried in the first three components.
type Coded struct {
	ID     string
	Text   string
	System string
}

// Coded splits the element's value on the component delimiter and returns
// the first three components.
func (c *Codec) Coded() Coded {
	comps := strings.Split(c.el.Value(), string(c.el.Delims().Component))
	out := Coded{ID: comps[0]}
	if len(comps) > 1 {
		out.Text = comps[1]
	}
	if len(comps) > 2 {
		out.System = comps[2]
	}

	return out
}

// SetCoded writes a CE-style coded value as three components.
func (c *Codec) SetCoded(v Coded) error {
	d := string(c.el.Delims().Component)
	return c.el.SetValue(v.ID + d + v.Text + d + v.System)
}

var errEmptyValue = errors.New("empty value")
