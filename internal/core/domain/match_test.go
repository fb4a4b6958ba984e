package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewContextLine_ShortLineUntouched tests that short lines pass through.
func TestNewContextLine_ShortLineUntouched(t *testing.T) {
	cl := NewContextLine(7, "  short line with TODO  ", 17, 80)

	assert.Equal(t, 7, cl.Number)
	assert.Equal(t, "short line with TODO", cl.Text)
	assert.False(t, cl.Truncated)
}

// TestNewContextLine_LongLineTruncated tests width enforcement.
func TestNewContextLine_LongLineTruncated(t *testing.T) {
	line := strings.Repeat("x", 300) + "NEEDLE" + strings.Repeat("y", 300)
	cl := NewContextLine(1, line, 300, 80)

	assert.True(t, cl.Truncated)
	assert.LessOrEqual(t, len(cl.Text), 80)
	assert.Contains(t, cl.Text, "NEEDLE")
	assert.True(t, strings.HasPrefix(cl.Text, "..."))
	assert.True(t, strings.HasSuffix(cl.Text, "..."))
}

// TestNewContextLine_MatchNearStart tests window clamping at the left edge.
func TestNewContextLine_MatchNearStart(t *testing.T) {
	line := "NEEDLE" + strings.Repeat("z", 400)
	cl := NewContextLine(1, line, 0, 60)

	assert.True(t, cl.Truncated)
	assert.LessOrEqual(t, len(cl.Text), 60)
	assert.Contains(t, cl.Text, "NEEDLE")
}

// TestNewContextLine_MatchNearEnd tests window clamping at the right edge.
func TestNewContextLine_MatchNearEnd(t *testing.T) {
	line := strings.Repeat("z", 400) + "NEEDLE"
	cl := NewContextLine(1, line, 400, 60)

	assert.True(t, cl.Truncated)
	assert.LessOrEqual(t, len(cl.Text), 60)
	assert.Contains(t, cl.Text, "NEEDLE")
}

// TestNewContextLine_WidthInvariant tests len(Text) <= width across sizes.
func TestNewContextLine_WidthInvariant(t *testing.T) {
	line := strings.Repeat("abc ", 200)
	for _, width := range []int{10, 40, 80, 200, 500} {
		cl := NewContextLine(1, line, 100, width)
		assert.LessOrEqual(t, len(cl.Text), width, "width %d", width)
	}
}
