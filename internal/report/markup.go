// Package report renders the rank test result document: a paginated PDF
// built from a participant's aggregated scores. Text flow, word wrap and
// page breaks are computed here; the PDF library is only a measuring and
// drawing backend.
package report

import "strings"

// Segment is a run of text with uniform styling. Bold spans are the only
// inline style the notes markup supports. BreakAfter records an explicit
// newline following the segment, so blank lines survive parsing.
type Segment struct {
	Text       string
	Bold       bool
	BreakAfter bool
}

// ParseMarkup splits restricted rich text into ordered segments. The
// recognized tags are <b>, <strong> (and their closers) and <br>; any
// other angle-bracket text is kept literally, so plain text with no
// markup at all passes through as a single segment per line.
func ParseMarkup(s string) []Segment {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var segs []Segment
	var buf strings.Builder
	bold := false

	flush := func(breakAfter bool) {
		if buf.Len() == 0 && !breakAfter {
			return
		}
		segs = append(segs, Segment{Text: buf.String(), Bold: bold, BreakAfter: breakAfter})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		c := s[i]
		if c == '\n' {
			flush(true)
			i++
			continue
		}
		if c == '<' {
			if tag, width := matchTag(s[i:]); width > 0 {
				switch tag {
				case "b", "strong":
					flush(false)
					bold = true
				case "/b", "/strong":
					flush(false)
					bold = false
				case "br":
					flush(true)
				}
				i += width
				continue
			}
		}
		buf.WriteByte(c)
		i++
	}
	flush(false)
	return segs
}

// matchTag reports whether s starts with a recognized tag and how many
// bytes it spans. Unrecognized tags get width 0 and stay literal text.
func matchTag(s string) (name string, width int) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", 0
	}
	inner := strings.ToLower(strings.TrimSpace(s[1:end]))
	inner = strings.TrimSuffix(inner, "/")
	inner = strings.TrimSpace(inner)
	switch inner {
	case "b", "strong", "/b", "/strong", "br":
		return inner, end + 1
	}
	return "", 0
}
