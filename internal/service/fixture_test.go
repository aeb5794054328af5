package service

import (
	"time"

	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/report"
)

// fixture wires the grading services over the in-memory fakes with a
// small karate curriculum: White -> Yellow -> Orange, and a Yellow Belt
// test of one category holding a required and an optional item.
type fixture struct {
	styleRepo       *fakeStyleRepo
	rankTestRepo    *fakeRankTestRepo
	eventRepo       *fakeEventRepo
	participantRepo *fakeParticipantRepo
	memberDocRepo   *fakeMemberDocRepo
	files           *fakeFileStore

	sheets SheetService
	grader GradingService
	bulk   BulkGradingService
}

const (
	fixtureStyleID   = uint(1)
	fixtureEventID   = uint(1)
	yellowRankID     = uint(11)
	yellowTestID     = uint(100)
	frontKickItemID  = uint(1)
	boardBreakItemID = uint(2)
)

func fixtureCurriculum() model.RankTest {
	return model.RankTest{
		ID:      yellowTestID,
		Name:    "Yellow Belt Test",
		StyleID: fixtureStyleID,
		RankID:  yellowRankID,
		Categories: []model.Category{{
			ID:          1,
			Name:        "Kicks",
			OrderInTest: 1,
			Items: []model.Item{
				{ID: frontKickItemID, CategoryID: 1, Name: "Front Kick", Required: true, OrderInCategory: 1},
				{ID: boardBreakItemID, CategoryID: 1, Name: "Board Break", OrderInCategory: 2},
			},
		}},
	}
}

func newParticipant(id uint, name string) *model.Participant {
	return &model.Participant{
		ID:             id,
		TestingEventID: fixtureEventID,
		MemberID:       id,
		Member:         model.Member{ID: id, FirstName: name, LastName: "Tester", CurrentRank: "White Belt"},
		CurrentRank:    "White Belt",
		TestingForRank: "Yellow Belt",
		Status:         model.ParticipantRegistered,
	}
}

func newFixture(participants ...*model.Participant) *fixture {
	style := &model.Style{
		ID:               fixtureStyleID,
		Name:             "Karate",
		NamingConvention: model.IntoRank,
		Ranks: []model.Rank{
			{ID: 10, StyleID: fixtureStyleID, Name: "White Belt", OrderInStyle: 1},
			{ID: yellowRankID, StyleID: fixtureStyleID, Name: "Yellow Belt", OrderInStyle: 2},
			{ID: 12, StyleID: fixtureStyleID, Name: "Orange Belt", OrderInStyle: 3},
		},
	}

	f := &fixture{
		styleRepo:    &fakeStyleRepo{styles: map[uint]*model.Style{fixtureStyleID: style}},
		rankTestRepo: &fakeRankTestRepo{tests: map[[2]uint][]model.RankTest{{yellowRankID, fixtureStyleID}: {fixtureCurriculum()}}},
		memberDocRepo: &fakeMemberDocRepo{},
		files:         &fakeFileStore{},
	}

	event := &model.TestingEvent{
		ID:      fixtureEventID,
		Name:    "Fall Belt Testing",
		Date:    time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
		StyleID: fixtureStyleID,
		Status:  model.EventScheduled,
	}
	for _, p := range participants {
		event.Participants = append(event.Participants, *p)
	}
	f.eventRepo = &fakeEventRepo{events: map[uint]*model.TestingEvent{fixtureEventID: event}}
	f.participantRepo = newFakeParticipantRepo(participants...)

	f.sheets = NewSheetService(f.participantRepo, f.eventRepo, f.styleRepo, f.rankTestRepo)
	f.grader = NewGradingService(
		f.participantRepo, f.eventRepo, f.styleRepo, f.rankTestRepo,
		f.memberDocRepo, f.sheets, report.NewGenerator("The Pit Martial Arts"), f.files,
	)
	f.bulk = NewBulkGradingService(f.eventRepo, f.styleRepo, f.grader)
	return f
}
