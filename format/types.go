package format

type (
	// Level identifies one tier of the message hierarchy.
	Level uint8
	// CompressionType selects the codec used to pack serialized message text.
	CompressionType uint8
)

const (
	LevelMessage      Level = 0x1 // LevelMessage is the root; its children are segments.
	LevelSegment      Level = 0x2 // LevelSegment holds fields, field 0 being the type code.
	LevelField        Level = 0x3 // LevelField holds repetitions.
	LevelRepetition   Level = 0x4 // LevelRepetition holds components.
	LevelComponent    Level = 0x5 // LevelComponent holds subcomponents.
	LevelSubcomponent Level = 0x6 // LevelSubcomponent is the leaf; it holds raw text.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// HeaderType is the segment type code that carries message control data and
// declares the delimiter set for the whole message.
const HeaderType = "MSH"

// TypeLen is the fixed length of a segment type code.
const TypeLen = 3

// Child returns the hierarchy level of this level's children.
// LevelSubcomponent is the leaf and returns itself.
func (l Level) Child() Level {
	if l >= LevelSubcomponent {
		return LevelSubcomponent
	}

	return l + 1
}

// ChildBase returns the lowest position ordinary content occupies under an
// element of this level. Segment children start at 0 because position 0 holds
// the type code; message children start at 0; everywhere else real content
// starts at position 1.
func (l Level) ChildBase() int {
	switch l {
	case LevelMessage, LevelSegment:
		return 0
	default:
		return 1
	}
}

func (l Level) String() string {
	switch l {
	case LevelMessage:
		return "Message"
	case LevelSegment:
		return "Segment"
	case LevelField:
		return "Field"
	case LevelRepetition:
		return "Repetition"
	case LevelComponent:
		return "Component"
	case LevelSubcomponent:
		return "Subcomponent"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
