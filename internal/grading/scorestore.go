package grading

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// ItemScore is the grader's record for one curriculum item.
type ItemScore struct {
	State ItemState
	Notes string
}

// ScoreMap maps item IDs to their scores. Items with no entry are
// incomplete. A ScoreMap is mutable working state; aggregation and
// rendering receive it as a snapshot and never modify it.
type ScoreMap map[uint]ItemScore

// Toggle advances the item's score one step through the
// incomplete -> passed -> failed cycle and returns the new state.
// Annotations survive the toggle.
func (m ScoreMap) Toggle(itemID uint) ItemState {
	sc := m[itemID]
	sc.State = sc.State.Next()
	m[itemID] = sc
	return sc.State
}

// Annotate sets the free-text note for an item without touching its
// pass state.
func (m ScoreMap) Annotate(itemID uint, text string) {
	sc := m[itemID]
	sc.Notes = text
	m[itemID] = sc
}

// Clone returns an independent copy for handing to aggregation or
// rendering while the original keeps taking edits.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for id, sc := range m {
		out[id] = sc
	}
	return out
}

// itemScoreWire is the persisted shape of one item score. The two-bool
// encoding is the legacy storage format; both false means incomplete and
// passed wins if a stored record ever carries both flags.
type itemScoreWire struct {
	Passed bool     `json:"passed"`
	Failed bool     `json:"failed,omitempty"`
	Score  *float64 `json:"score,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

// DecodeScoreMap parses a participant's serialized score snapshot.
// Malformed payloads degrade to an empty map so grading restarts from
// incomplete instead of failing the whole sheet.
func DecodeScoreMap(raw string) ScoreMap {
	out := ScoreMap{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	var wire map[uint]itemScoreWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		log.Warn().Err(err).Msg("DecodeScoreMap: unparsable item scores, starting from empty")
		return ScoreMap{}
	}
	for id, w := range wire {
		sc := ItemScore{Notes: w.Notes}
		switch {
		case w.Passed:
			sc.State = StatePassed
		case w.Failed:
			sc.State = StateFailed
		}
		out[id] = sc
	}
	return out
}

// Encode serializes the map in the legacy wire format. Incomplete items
// without notes are written too; absence and zero-value are equivalent
// on decode.
func (m ScoreMap) Encode() (string, error) {
	wire := make(map[uint]itemScoreWire, len(m))
	for id, sc := range m {
		wire[id] = itemScoreWire{
			Passed: sc.State == StatePassed,
			Failed: sc.State == StateFailed,
			Notes:  sc.Notes,
		}
	}
	b, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatTimeNotation normalizes raw grader keystrokes into an M(M):SS
// shaped string: all non-digits are stripped, one or two digits render
// as typed, three or four render with the last two digits as seconds,
// and anything past four digits is dropped.
func FormatTimeNotation(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 4 {
			break
		}
	}
	d := digits.String()
	if len(d) <= 2 {
		return d
	}
	return d[:len(d)-2] + ":" + d[len(d)-2:]
}
