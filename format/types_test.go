package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLevelChild verifies the hierarchy descends one tier at a time and
// bottoms out at the subcomponent leaf.
func TestLevelChild(t *testing.T) {
	require.Equal(t, LevelSegment, LevelMessage.Child())
	require.Equal(t, LevelField, LevelSegment.Child())
	require.Equal(t, LevelRepetition, LevelField.Child())
	require.Equal(t, LevelComponent, LevelRepetition.Child())
	require.Equal(t, LevelSubcomponent, LevelComponent.Child())
	require.Equal(t, LevelSubcomponent, LevelSubcomponent.Child())
}

// TestLevelChildBase verifies content bases: type code at 0 under segments,
// real content from 1 below the field level.
func TestLevelChildBase(t *testing.T) {
	require.Equal(t, 0, LevelMessage.ChildBase())
	require.Equal(t, 0, LevelSegment.ChildBase())
	require.Equal(t, 1, LevelField.ChildBase())
	require.Equal(t, 1, LevelRepetition.ChildBase())
	require.Equal(t, 1, LevelComponent.ChildBase())
}

// TestLevelString verifies the display names.
func TestLevelString(t *testing.T) {
	require.Equal(t, "Segment", LevelSegment.String())
	require.Equal(t, "Subcomponent", LevelSubcomponent.String())
	require.Equal(t, "Unknown", Level(0xff).String())
}

// TestCompressionTypeString verifies the display names.
func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}
