package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thepit/dojorank/internal/model"
)

func twoItemTest() *model.RankTest {
	return &model.RankTest{
		ID: 1,
		Categories: []model.Category{{
			ID: 1,
			Items: []model.Item{
				{ID: 1, Name: "Front Kick", Required: true},
				{ID: 2, Name: "Board Break", Required: false},
			},
		}},
	}
}

func TestAggregateEmptyCurriculum(t *testing.T) {
	sum := Aggregate(&model.RankTest{}, ScoreMap{}, OverrideNone)
	assert.Equal(t, 0, sum.TotalItems)
	assert.Equal(t, 0, sum.Percent)
	assert.Equal(t, model.ParticipantIncomplete, sum.FinalStatus)

	sum = Aggregate(nil, ScoreMap{}, OverridePassed)
	assert.Equal(t, 0, sum.Percent)
	assert.Equal(t, model.ParticipantPassed, sum.FinalStatus)
}

func TestAggregatePassedRequiredWithOverride(t *testing.T) {
	// Required item passed, optional left incomplete, grader confirms.
	scores := ScoreMap{1: {State: StatePassed}}
	sum := Aggregate(twoItemTest(), scores, OverridePassed)

	assert.Equal(t, 2, sum.TotalItems)
	assert.Equal(t, 1, sum.PassedItems)
	assert.Equal(t, 50, sum.Percent)
	assert.Equal(t, 0, sum.RequiredRemaining)
	assert.Equal(t, model.ParticipantPassed, sum.FinalStatus)
}

func TestAggregateFailedRequiredNoOverride(t *testing.T) {
	// Required item failed, no override: one item scored but the
	// result stays incomplete.
	scores := ScoreMap{1: {State: StateFailed}}
	sum := Aggregate(twoItemTest(), scores, OverrideNone)

	assert.Equal(t, 1, sum.RequiredRemaining)
	assert.Equal(t, 0, sum.Percent)
	assert.Equal(t, model.ParticipantIncomplete, sum.FinalStatus)
}

func TestAggregateNeverAutoPromotes(t *testing.T) {
	// Every item passed, required remaining zero: still incomplete
	// until the grader says otherwise.
	scores := ScoreMap{1: {State: StatePassed}, 2: {State: StatePassed}}
	sum := Aggregate(twoItemTest(), scores, OverrideNone)

	assert.Equal(t, 100, sum.Percent)
	assert.Equal(t, 0, sum.RequiredRemaining)
	assert.Equal(t, model.ParticipantIncomplete, sum.FinalStatus)
}

func TestAggregateOverrideFailed(t *testing.T) {
	scores := ScoreMap{1: {State: StatePassed}, 2: {State: StatePassed}}
	sum := Aggregate(twoItemTest(), scores, OverrideFailed)
	assert.Equal(t, model.ParticipantFailed, sum.FinalStatus)
}

func TestAggregateRounding(t *testing.T) {
	test := &model.RankTest{Categories: []model.Category{{Items: []model.Item{
		{ID: 1}, {ID: 2}, {ID: 3},
	}}}}
	sum := Aggregate(test, ScoreMap{1: {State: StatePassed}}, OverrideNone)
	assert.Equal(t, 33, sum.Percent)

	sum = Aggregate(test, ScoreMap{1: {State: StatePassed}, 2: {State: StatePassed}}, OverrideNone)
	assert.Equal(t, 67, sum.Percent)
}

func TestAggregateBounds(t *testing.T) {
	// Scores for items unknown to the curriculum never push the
	// percentage past 100.
	scores := ScoreMap{1: {State: StatePassed}, 2: {State: StatePassed}, 99: {State: StatePassed}}
	sum := Aggregate(twoItemTest(), scores, OverrideNone)
	assert.LessOrEqual(t, sum.PassedItems, sum.TotalItems)
	assert.Equal(t, 100, sum.Percent)
}
