package report

import "strings"

// Measurer returns the rendered width of text in the given style, in the
// same units as the available line width.
type Measurer func(text string, bold bool) float64

// Word is a positioned word within a flowed line. X is the horizontal
// offset from the left edge of the text area.
type Word struct {
	Text string
	Bold bool
	X    float64
}

// Line is one emitted line of flowed text. An empty word list is a blank
// line produced by consecutive explicit newlines.
type Line struct {
	Words []Word
}

// Flow re-flows parsed segments into lines no wider than width.
//
// The horizontal cursor persists across segment boundaries, so a bold
// span continues mid-line, and resets on every wrapped line and every
// explicit newline. A word that would cross the right edge wraps to the
// next line whole; words are never split and never dropped, so a single
// word wider than the whole line still gets a line to itself. The cursor
// advance after a word includes its trailing space; the overflow check
// does not, letting a last word sit flush against the margin.
func Flow(segs []Segment, width float64, measure Measurer) []Line {
	var lines []Line
	var cur Line
	x := 0.0

	newline := func() {
		lines = append(lines, cur)
		cur = Line{}
		x = 0
	}

	for _, seg := range segs {
		for _, word := range strings.Fields(seg.Text) {
			w := measure(word, seg.Bold)
			if len(cur.Words) > 0 && x+w > width {
				newline()
			}
			cur.Words = append(cur.Words, Word{Text: word, Bold: seg.Bold, X: x})
			x += measure(word+" ", seg.Bold)
		}
		if seg.BreakAfter {
			newline()
		}
	}
	if len(cur.Words) > 0 {
		newline()
	}
	return lines
}
