package grading

import (
	"math"

	"github.com/thepit/dojorank/internal/model"
)

// Summary is the roll-up of a score snapshot against a curriculum.
type Summary struct {
	TotalItems        int
	PassedItems       int
	Percent           int
	RequiredRemaining int
	FinalStatus       string
}

// Aggregate computes the live summary for one participant. Percent is
// passed items over all items, rounded; an empty curriculum scores 0.
// RequiredRemaining counts required items not yet passed (failed and
// incomplete both count). FinalStatus is the grader's override when one
// is set; clearing every required item never promotes the result on its
// own, so without an override the status stays incomplete.
func Aggregate(test *model.RankTest, scores ScoreMap, override Override) Summary {
	sum := Summary{FinalStatus: model.ParticipantIncomplete}
	switch override {
	case OverridePassed:
		sum.FinalStatus = model.ParticipantPassed
	case OverrideFailed:
		sum.FinalStatus = model.ParticipantFailed
	}
	if test == nil {
		return sum
	}

	for _, cat := range test.Categories {
		for _, item := range cat.Items {
			sum.TotalItems++
			passed := scores[item.ID].State == StatePassed
			if passed {
				sum.PassedItems++
			}
			if item.Required && !passed {
				sum.RequiredRemaining++
			}
		}
	}
	if sum.TotalItems > 0 {
		sum.Percent = int(math.Round(float64(sum.PassedItems) / float64(sum.TotalItems) * 100))
	}
	return sum
}
