package grading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thepit/dojorank/internal/model"
)

// ErrNoCurriculum means no rank test applies to the participant: the
// lookup rank name is blank, names nothing in the style's rank list, or
// the matched rank has no stored test. Callers render an explicit empty
// state and must keep grading saves disabled.
var ErrNoCurriculum = errors.New("no curriculum for participant's rank")

// CurriculumSource is the lookup collaborator. More than one test can
// exist for a (rank, style) pair; the resolver takes the first.
type CurriculumSource interface {
	FindByRankAndStyle(rankID, styleID uint) ([]model.RankTest, error)
}

// ResolveCurriculum finds the rank test a participant grades against.
//
// The style's naming convention picks the lookup name: from_rank keys
// tests by the rank being tested out of, into_rank (the default) by the
// rank being tested into. Rank names are matched exactly first, then
// with a trimmed case-insensitive pass. The fallback is deliberate
// tolerance for operator data entry ("Yellow Belt " vs "yellow belt");
// two ranks differing only by case or whitespace resolve to the same
// test, with the exact match winning.
func ResolveCurriculum(style *model.Style, participant *model.Participant, src CurriculumSource) (*model.RankTest, error) {
	if style == nil || participant == nil {
		return nil, ErrNoCurriculum
	}

	lookup := participant.TestingForRank
	if style.NamingConvention == model.FromRank {
		lookup = participant.CurrentRank
	}
	if strings.TrimSpace(lookup) == "" || len(style.Ranks) == 0 {
		return nil, ErrNoCurriculum
	}

	rank := matchRank(style.Ranks, lookup)
	if rank == nil {
		return nil, ErrNoCurriculum
	}

	tests, err := src.FindByRankAndStyle(rank.ID, style.ID)
	if err != nil {
		return nil, fmt.Errorf("curriculum lookup for rank %q: %w", rank.Name, err)
	}
	if len(tests) == 0 {
		return nil, ErrNoCurriculum
	}
	return &tests[0], nil
}

func matchRank(ranks []model.Rank, name string) *model.Rank {
	for i := range ranks {
		if ranks[i].Name == name {
			return &ranks[i]
		}
	}
	want := strings.TrimSpace(name)
	for i := range ranks {
		if strings.EqualFold(strings.TrimSpace(ranks[i].Name), want) {
			return &ranks[i]
		}
	}
	return nil
}

// NextRank returns the rank that follows the given rank name in the
// style's order, using the same two-tier name matching as curriculum
// resolution. Used when registering a participant to pre-fill the rank
// they are testing for.
func NextRank(style *model.Style, currentRank string) *model.Rank {
	cur := matchRank(style.Ranks, currentRank)
	if cur == nil {
		return nil
	}
	var next *model.Rank
	for i := range style.Ranks {
		r := &style.Ranks[i]
		if r.OrderInStyle <= cur.OrderInStyle {
			continue
		}
		if next == nil || r.OrderInStyle < next.OrderInStyle {
			next = r
		}
	}
	return next
}
