package format

import "strings"

// Escape rewrites delimiter characters occurring inside free text into their
// HL7v2 escape sequences (\F\ field, \R\ repetition, \S\ component,
// \T\ subcomponent, \E\ escape), using the given delimiter set.
func Escape(s string, d Delimiters) string {
	if !strings.ContainsAny(s, string([]byte{d.Field, d.Repetition, d.Component, d.Subcomponent, d.Escape})) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		code, ok := escapeCode(c, d)
		if !ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(d.Escape)
		b.WriteByte(code)
		b.WriteByte(d.Escape)
	}

	return b.String()
}

// Unescape resolves the five delimiter escape sequences back into literal
// characters. Sequences it does not recognize (highlighting, hex, locally
// defined) are preserved verbatim, escape markers included.
func Unescape(s string, d Delimiters) string {
	if strings.IndexByte(s, d.Escape) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != d.Escape || i+2 >= len(s) || s[i+2] != d.Escape {
			b.WriteByte(c)
			continue
		}
		lit, ok := escapeLiteral(s[i+1], d)
		if !ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(lit)
		i += 2
	}

	return b.String()
}

func escapeCode(c byte, d Delimiters) (byte, bool) {
	switch c {
	case d.Field:
		return 'F', true
	case d.Repetition:
		return 'R', true
	case d.Component:
		return 'S', true
	case d.Subcomponent:
		return 'T', true
	case d.Escape:
		return 'E', true
	default:
		return 0, false
	}
}

func escapeLiteral(code byte, d Delimiters) (byte, bool) {
	switch code {
	case 'F':
		return d.Field, true
	case 'R':
		return d.Repetition, true
	case 'S':
		return d.Component, true
	case 'T':
		return d.Subcomponent, true
	case 'E':
		return d.Escape, true
	default:
		return 0, false
	}
}
