// Package hl7v2 builds and mutates HL7v2-style delimited healthcare
// messages: a strictly ordered hierarchy of message → segment → field →
// repetition → component → subcomponent, addressed by zero-based positions
// and serialized to canonical delimited text on demand.
//
// # Basic Usage
//
// Parsing and reading:
//
//	msg, _ := hl7v2.Parse("MSH|^~\\&|APP|FAC|||20260102150405||ADT^A01|MSG001|P|2.5\rPID|1||12345")
//	msg.GetValue(0, 9, 1, 1) // "ADT"
//	pid, _ := msg.SegmentByType("PID")
//	pid.GetValue(3)          // "12345"
//
// Building element by element:
//
//	msg, _ := hl7v2.New("ADT", "A01")
//	pid := msg.Segment(1)
//	_ = pid.SetType("PID")
//	_ = pid.Child(3).SetValue("12345")
//	wire := msg.Value()
//
// Every position at every level materializes lazily on first access, so
// sparse content serializes with padding delimiters and arbitrary positions
// can be assigned in any order. Insert, Delete, and Move renumber siblings
// while preserving the relative order of untouched elements.
//
// # Typed Values
//
// The codec package binds converter views to any element for timestamps,
// numerics, escaped free text, and coded values:
//
//	ts, _ := codec.Bind(msg.Segment(0).Child(7)).Time()
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The element package
// holds the tree engine, format the delimiter and level definitions, codec
// the typed converters, and compress the payload codecs used by Pack and
// Unpack.
package hl7v2

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/hl7v2/codec"
	"github.com/arloliu/hl7v2/compress"
	"github.com/arloliu/hl7v2/element"
	"github.com/arloliu/hl7v2/format"
	"github.com/arloliu/hl7v2/internal/hash"
)

// Re-exported element types, so common flows need only this package.
type (
	Message  = element.Message
	Segment  = element.Segment
	Element  = element.Element
	Option   = element.Option
	Sequence = element.Sequence
)

// DefaultVersion is the HL7 version the New constructor declares in MSH-12.
const DefaultVersion = "2.5"

// Parse builds a message tree from full delimited text. The header segment's
// own delimiter declarations take effect for the whole tree.
func Parse(text string, opts ...Option) (*Message, error) {
	m, err := element.NewMessage(opts...)
	if err != nil {
		return nil, err
	}
	if err := m.SetValue(text); err != nil {
		return nil, err
	}

	return m, nil
}

// New creates a message with a populated header segment: the default
// delimiter declarations, the current timestamp in MSH-7, the message type
// and trigger event in MSH-9, a generated control ID in MSH-10, and the
// default processing ID and version in MSH-11/12.
func New(messageType, triggerEvent string, opts ...Option) (*Message, error) {
	m, err := element.NewMessage(opts...)
	if err != nil {
		return nil, err
	}

	d := m.Delims()
	msh := m.Segment(0)
	if err := msh.SetValue(format.HeaderType + string(d.Field) + d.Encoding()); err != nil {
		return nil, err
	}
	if err := msh.Child(7).SetValue(codec.FormatTime(time.Now())); err != nil {
		return nil, err
	}
	if err := msh.Child(9).SetValue(messageType + string(d.Component) + triggerEvent); err != nil {
		return nil, err
	}
	if err := msh.Child(10).SetValue(uuid.NewString()); err != nil {
		return nil, err
	}
	if err := msh.Child(11).SetValue("P"); err != nil {
		return nil, err
	}
	if err := msh.Child(12).SetValue(DefaultVersion); err != nil {
		return nil, err
	}

	return m, nil
}

// Pack envelope layout: magic, a format version, the compression type, the
// xxHash64 fingerprint of the canonical text, then the compressed payload.
const (
	packMagic      = "HL7P"
	packVersion    = 1
	packHeaderSize = len(packMagic) + 2 + 8
)

// Pack serializes a message to its canonical text, compresses it with the
// selected codec, and frames it with a fingerprint so Unpack can verify
// integrity. The result is a caller-owned byte payload for spooling or
// transport; it carries no transport framing of its own.
func Pack(m *Message, compression format.CompressionType) ([]byte, error) {
	c, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	text := m.Value()
	payload, err := c.Compress([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", compression, err)
	}

	out := make([]byte, packHeaderSize, packHeaderSize+len(payload))
	copy(out, packMagic)
	out[4] = packVersion
	out[5] = byte(compression)
	binary.BigEndian.PutUint64(out[6:], hash.ID(text))

	return append(out, payload...), nil
}

// Unpack restores a message from a Pack envelope, verifying the payload
// fingerprint before parsing.
func Unpack(data []byte, opts ...Option) (*Message, error) {
	if len(data) < packHeaderSize || string(data[:4]) != packMagic {
		return nil, fmt.Errorf("invalid pack envelope")
	}
	if data[4] != packVersion {
		return nil, fmt.Errorf("unsupported pack version %d", data[4])
	}

	c, err := compress.GetCodec(format.CompressionType(data[5]))
	if err != nil {
		return nil, err
	}
	text, err := c.Decompress(data[packHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if hash.Sum64(text) != binary.BigEndian.Uint64(data[6:packHeaderSize]) {
		return nil, fmt.Errorf("pack fingerprint mismatch")
	}

	return Parse(string(text), opts...)
}
