package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/model"
)

func TestSaveParticipantPassScenario(t *testing.T) {
	// Required item passed, optional left incomplete, grader confirms
	// the pass.
	f := newFixture(newParticipant(1, "Jamie"))
	_, err := f.sheets.ToggleItem(1, frontKickItemID)
	require.NoError(t, err)

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{
		Result: "passed",
		Notes:  "Great energy. Work on <b>chambering</b> the kick.",
	})
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, 50, res.Percent)
	assert.Equal(t, model.ParticipantPassed, res.Status)
	assert.NotEmpty(t, res.DocumentURL)

	p, _ := f.participantRepo.FindByID(1)
	assert.Equal(t, model.ParticipantPassed, p.Status)
	require.NotNil(t, p.Score)
	assert.Equal(t, 50, *p.Score)
	assert.Contains(t, p.ItemScores, `"passed":true`)
	require.NotNil(t, p.ResultDocumentURL)

	// The document is filed on the member record under its display name.
	docs := f.memberDocRepo.docs[1]
	require.Len(t, docs, 1)
	assert.Equal(t, "Jamie_Tester_Fall_Belt_Testing_Results", docs[0].DisplayName)
	assert.Equal(t, *p.ResultDocumentURL, docs[0].URL)
}

func TestSaveParticipantNoOverrideStaysIncomplete(t *testing.T) {
	// Required item failed, nothing confirmed: scored but incomplete.
	f := newFixture(newParticipant(1, "Jamie"))
	_, err := f.sheets.ToggleItem(1, frontKickItemID) // passed
	require.NoError(t, err)
	_, err = f.sheets.ToggleItem(1, frontKickItemID) // failed
	require.NoError(t, err)

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{})
	require.NoError(t, err)
	assert.Equal(t, model.ParticipantIncomplete, res.Status)
	assert.Equal(t, 0, res.Percent)

	p, _ := f.participantRepo.FindByID(1)
	assert.Equal(t, model.ParticipantIncomplete, p.Status)
}

func TestSaveParticipantUploadFailureKeepsScores(t *testing.T) {
	// The document pipeline failing after a successful score save is
	// not a save failure: scores stay, the URL just is not updated.
	f := newFixture(newParticipant(1, "Jamie"))
	f.files.fail = true
	_, err := f.sheets.ToggleItem(1, frontKickItemID)
	require.NoError(t, err)

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.DocumentURL)

	p, _ := f.participantRepo.FindByID(1)
	assert.Equal(t, model.ParticipantPassed, p.Status)
	assert.Nil(t, p.ResultDocumentURL)
	assert.Empty(t, f.memberDocRepo.docs)
}

func TestSaveParticipantPersistenceFailure(t *testing.T) {
	f := newFixture(newParticipant(1, "Jamie"))
	f.participantRepo.failGradingFor[1] = true

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.Error(t, err)
	assert.False(t, res.OK)
	assert.Empty(t, f.files.uploads, "no document is rendered for a failed save")
}

func TestSaveParticipantWithoutCurriculum(t *testing.T) {
	p := newParticipant(1, "Jamie")
	p.TestingForRank = ""
	f := newFixture(p)

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.Error(t, err)
	assert.False(t, res.OK)
}

func TestSaveParticipantUsesPersistedScoresWithoutSheet(t *testing.T) {
	// No open sheet: the save grades the snapshot stored on the
	// participant record.
	p := newParticipant(1, "Jamie")
	p.ItemScores = `{"1":{"passed":true},"2":{"passed":true}}`
	f := newFixture(p)

	res, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Percent)
}

func TestSaveParticipantReplacesDocumentByDisplayName(t *testing.T) {
	f := newFixture(newParticipant(1, "Jamie"))

	_, err := f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.NoError(t, err)
	first := f.memberDocRepo.docs[1][0].URL

	_, err = f.grader.SaveParticipant(1, dto.SaveRequestDTO{Result: "passed"})
	require.NoError(t, err)

	docs := f.memberDocRepo.docs[1]
	require.Len(t, docs, 1, "same display name replaces, not appends")
	assert.NotEqual(t, first, docs[0].URL, "each save uploads under a fresh URL")
}
