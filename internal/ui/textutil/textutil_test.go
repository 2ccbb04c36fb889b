package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Volume", Truncate("Volume", 10))
	assert.Equal(t, "Volume", Truncate("Volume", 6))
	assert.Equal(t, "Vol…", Truncate("Volume", 4))
	assert.Equal(t, "", Truncate("Volume", 0))
	assert.LessOrEqual(t, Width(Truncate("新しいペア", 5)), 5)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}

func TestSpans(t *testing.T) {
	spans := Spans([]string{" P1 ", " P2 ", " P3 "}, " ")
	assert.Equal(t, []Span{{0, 4}, {5, 9}, {10, 14}}, spans)
	assert.True(t, spans[1].Contains(5))
	assert.False(t, spans[1].Contains(9))
	assert.False(t, spans[0].Contains(4), "gap belongs to no span")
}
