package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitMeasure gives every rune width 1 regardless of style, so expected
// wrap positions can be counted by hand.
func unitMeasure(text string, _ bool) float64 {
	return float64(len(text))
}

func lineText(l Line) string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

func TestFlowSingleShortLine(t *testing.T) {
	lines := Flow([]Segment{{Text: "front kick"}}, 50, unitMeasure)
	require.Len(t, lines, 1)
	assert.Equal(t, "front kick", lineText(lines[0]))
	assert.Equal(t, 0.0, lines[0].Words[0].X)
	assert.Equal(t, 6.0, lines[0].Words[1].X) // "front" + space
}

func TestFlowWrapsAtWordBoundary(t *testing.T) {
	// Width 11 fits "front kick" (10) but not "front kick combo".
	lines := Flow([]Segment{{Text: "front kick combo"}}, 11, unitMeasure)
	require.Len(t, lines, 2)
	assert.Equal(t, "front kick", lineText(lines[0]))
	assert.Equal(t, "combo", lineText(lines[1]))
	assert.Equal(t, 0.0, lines[1].Words[0].X, "horizontal cursor resets on wrap")
}

func TestFlowNeverSplitsOrDropsWords(t *testing.T) {
	long := strings.Repeat("x", 40)
	lines := Flow([]Segment{{Text: "a " + long + " b"}}, 10, unitMeasure)
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lineText(lines[0]))
	assert.Equal(t, long, lineText(lines[1]), "overlong word gets its own line, whole")
	assert.Equal(t, "b", lineText(lines[2]))
}

func TestFlowLastWordMayTouchMargin(t *testing.T) {
	// "kick" ends exactly at the margin: the check excludes the
	// trailing space, so it stays on the first line.
	lines := Flow([]Segment{{Text: "front kick"}}, 10, unitMeasure)
	require.Len(t, lines, 1)
}

func TestFlowCursorPersistsAcrossSegments(t *testing.T) {
	segs := []Segment{
		{Text: "see the"},
		{Text: "bold part", Bold: true},
	}
	lines := Flow(segs, 50, unitMeasure)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Words, 4)
	assert.False(t, lines[0].Words[1].Bold)
	assert.True(t, lines[0].Words[2].Bold)
	assert.Equal(t, 8.0, lines[0].Words[2].X, "bold span continues mid-line")
}

func TestFlowExplicitNewlineResetsCursor(t *testing.T) {
	segs := []Segment{
		{Text: "one two", BreakAfter: true},
		{Text: "three"},
	}
	lines := Flow(segs, 50, unitMeasure)
	require.Len(t, lines, 2)
	assert.Equal(t, 0.0, lines[1].Words[0].X)
}

func TestFlowBlankLine(t *testing.T) {
	segs := []Segment{
		{Text: "a", BreakAfter: true},
		{Text: "", BreakAfter: true},
		{Text: "b"},
	}
	lines := Flow(segs, 50, unitMeasure)
	require.Len(t, lines, 3)
	assert.Empty(t, lines[1].Words)
}

func TestFlowBoldMeasuredWithOwnStyle(t *testing.T) {
	// Bold words measure double: the wrap decision has to use the
	// word's own style.
	wide := func(text string, bold bool) float64 {
		w := float64(len(text))
		if bold {
			w *= 2
		}
		return w
	}
	segs := []Segment{
		{Text: "aaaa"},
		{Text: "bbbb", Bold: true}, // 8 wide in bold
	}
	lines := Flow(segs, 10, wide)
	require.Len(t, lines, 2)
	assert.Equal(t, "aaaa", lineText(lines[0]))
	assert.Equal(t, "bbbb", lineText(lines[1]))
}

func TestFlowNoTrailingEmptyLine(t *testing.T) {
	lines := Flow([]Segment{{Text: "just this"}}, 50, unitMeasure)
	assert.Len(t, lines, 1)
}
