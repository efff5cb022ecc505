package format

import "fmt"

// EncodingLen is the length of the MSH-2 encoding-character declaration
// (component, repetition, escape, subcomponent).
const EncodingLen = 4

// Delimiters holds the five delimiter characters of one message tree.
//
// A message root owns one Delimiters value; every descendant shares it by
// pointer unless it overrides its own copy. The header segment rewrites the
// shared value in place when its text is set, so an adopted delimiter set
// takes effect for the whole tree at once.
type Delimiters struct {
	Field        byte // separates fields within a segment
	Repetition   byte // separates repetitions within a field
	Component    byte // separates components within a repetition
	Subcomponent byte // separates subcomponents within a component
	Escape       byte // introduces escape sequences
}

// DefaultDelimiters returns the conventional HL7v2 set: | ~ ^ & \.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Field:        '|',
		Repetition:   '~',
		Component:    '^',
		Subcomponent: '&',
		Escape:       '\\',
	}
}

// Encoding returns the MSH-2 encoding-character string in declaration order:
// component, repetition, escape, subcomponent (conventionally "^~\&").
func (d Delimiters) Encoding() string {
	return string([]byte{d.Component, d.Repetition, d.Escape, d.Subcomponent})
}

// SetEncoding adopts an MSH-2 encoding-character declaration. Shorter
// declarations are legal in HL7v2 and leave the omitted characters unchanged.
func (d *Delimiters) SetEncoding(enc string) error {
	if len(enc) == 0 || len(enc) > EncodingLen {
		return fmt.Errorf("invalid encoding characters %q: want 1 to %d characters", enc, EncodingLen)
	}

	d.Component = enc[0]
	if len(enc) > 1 {
		d.Repetition = enc[1]
	}
	if len(enc) > 2 {
		d.Escape = enc[2]
	}
	if len(enc) > 3 {
		d.Subcomponent = enc[3]
	}

	return nil
}

// For returns the character that separates sibling elements of the given
// level. Message-level separation (between segments) is owned by the message
// root, not by the delimiter set, and returns 0 here; the subcomponent level
// is the leaf and also returns 0 for its (nonexistent) children.
func (d Delimiters) For(l Level) byte {
	switch l {
	case LevelField:
		return d.Field
	case LevelRepetition:
		return d.Repetition
	case LevelComponent:
		return d.Component
	case LevelSubcomponent:
		return d.Subcomponent
	default:
		return 0
	}
}
