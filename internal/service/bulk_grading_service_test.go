package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/model"
)

func TestGradeEventAllSucceed(t *testing.T) {
	p1 := newParticipant(1, "Jamie")
	p1.ItemScores = `{"1":{"passed":true},"2":{"passed":true}}`
	p2 := newParticipant(2, "Riley")
	p2.ItemScores = `{"1":{"passed":true}}`
	f := newFixture(p1, p2)

	sum, err := f.bulk.GradeEvent(fixtureEventID, dto.BulkGradeRequestDTO{
		Overrides: map[uint]string{1: "passed", 2: "failed"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 0, sum.FailedCount)
	require.Len(t, sum.Results, 2)
	assert.Equal(t, uint(1), sum.Results[0].ParticipantID, "results keep event order")
	assert.Equal(t, 100, sum.Results[0].Percent)
	assert.Equal(t, model.ParticipantPassed, sum.Results[0].Status)
	assert.Equal(t, model.ParticipantFailed, sum.Results[1].Status)
	for _, r := range sum.Results {
		assert.True(t, r.OK)
		assert.NotEmpty(t, r.DocumentURL)
	}
}

func TestGradeEventPartialFailure(t *testing.T) {
	// Participant 2's persistence fails; 1 and 3 keep their saved
	// scores and documents, nothing is rolled back.
	p1, p2, p3 := newParticipant(1, "Jamie"), newParticipant(2, "Riley"), newParticipant(3, "Sam")
	for _, p := range []*model.Participant{p1, p2, p3} {
		p.ItemScores = `{"1":{"passed":true}}`
	}
	f := newFixture(p1, p2, p3)
	f.participantRepo.failGradingFor[2] = true

	sum, err := f.bulk.GradeEvent(fixtureEventID, dto.BulkGradeRequestDTO{
		Overrides: map[uint]string{1: "passed", 2: "passed", 3: "passed"},
	})
	require.NoError(t, err, "one participant failing does not fail the bulk call")

	assert.Equal(t, 1, sum.FailedCount)
	assert.True(t, sum.Results[0].OK)
	assert.False(t, sum.Results[1].OK)
	assert.NotEmpty(t, sum.Results[1].Error)
	assert.True(t, sum.Results[2].OK)

	for _, id := range []uint{1, 3} {
		p, _ := f.participantRepo.FindByID(id)
		assert.Equal(t, model.ParticipantPassed, p.Status, "participant %d", id)
		assert.NotNil(t, p.ResultDocumentURL, "participant %d", id)
	}
	p, _ := f.participantRepo.FindByID(2)
	assert.Equal(t, model.ParticipantRegistered, p.Status)
	assert.Nil(t, p.ResultDocumentURL)
}

func TestGradeEventParticipantWithoutOverrideStaysIncomplete(t *testing.T) {
	p := newParticipant(1, "Jamie")
	p.ItemScores = `{"1":{"passed":true},"2":{"passed":true}}`
	f := newFixture(p)

	sum, err := f.bulk.GradeEvent(fixtureEventID, dto.BulkGradeRequestDTO{})
	require.NoError(t, err)
	assert.Equal(t, model.ParticipantIncomplete, sum.Results[0].Status)
	assert.Equal(t, 100, sum.Results[0].Percent)
}

func TestGradeEventUsesOpenSheets(t *testing.T) {
	// A live unsaved sheet wins over the persisted snapshot.
	f := newFixture(newParticipant(1, "Jamie"))
	_, err := f.sheets.ToggleItem(1, frontKickItemID)
	require.NoError(t, err)
	_, err = f.sheets.ToggleItem(1, boardBreakItemID)
	require.NoError(t, err)

	sum, err := f.bulk.GradeEvent(fixtureEventID, dto.BulkGradeRequestDTO{
		Overrides: map[uint]string{1: "passed"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, sum.Results[0].Percent)
}

func TestGradeEventUnknownEvent(t *testing.T) {
	f := newFixture()
	_, err := f.bulk.GradeEvent(999, dto.BulkGradeRequestDTO{})
	assert.Error(t, err)
}
