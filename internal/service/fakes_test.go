package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/repository"
)

// In-memory fakes for the repository and storage collaborators. Each
// fake only implements what the services under test exercise.

var errNotFound = errors.New("record not found")

type fakeStyleRepo struct {
	styles map[uint]*model.Style
}

func (f *fakeStyleRepo) Create(style *model.Style) error {
	if f.styles == nil {
		f.styles = map[uint]*model.Style{}
	}
	style.ID = uint(len(f.styles) + 1)
	f.styles[style.ID] = style
	return nil
}

func (f *fakeStyleRepo) FindByID(id uint) (*model.Style, error) {
	s, ok := f.styles[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (f *fakeStyleRepo) FindByIDWithRanks(id uint) (*model.Style, error) { return f.FindByID(id) }

func (f *fakeStyleRepo) FindAll() ([]model.Style, error) {
	var out []model.Style
	for _, s := range f.styles {
		out = append(out, *s)
	}
	return out, nil
}

type fakeRankTestRepo struct {
	tests map[[2]uint][]model.RankTest
}

func (f *fakeRankTestRepo) Create(test *model.RankTest) error {
	if f.tests == nil {
		f.tests = map[[2]uint][]model.RankTest{}
	}
	key := [2]uint{test.RankID, test.StyleID}
	f.tests[key] = append(f.tests[key], *test)
	return nil
}

func (f *fakeRankTestRepo) FindByIDWithItems(id uint) (*model.RankTest, error) {
	for _, tests := range f.tests {
		for i := range tests {
			if tests[i].ID == id {
				return &tests[i], nil
			}
		}
	}
	return nil, errNotFound
}

func (f *fakeRankTestRepo) FindByRankAndStyle(rankID, styleID uint) ([]model.RankTest, error) {
	return f.tests[[2]uint{rankID, styleID}], nil
}

func (f *fakeRankTestRepo) FindByStyleID(styleID uint) ([]model.RankTest, error) {
	var out []model.RankTest
	for key, tests := range f.tests {
		if key[1] == styleID {
			out = append(out, tests...)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[uint]*model.TestingEvent
}

func (f *fakeEventRepo) Create(event *model.TestingEvent) error {
	if f.events == nil {
		f.events = map[uint]*model.TestingEvent{}
	}
	event.ID = uint(len(f.events) + 1)
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) FindByID(id uint) (*model.TestingEvent, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) FindByIDWithParticipants(id uint) (*model.TestingEvent, error) {
	return f.FindByID(id)
}

func (f *fakeEventRepo) FindAll() ([]model.TestingEvent, error) {
	var out []model.TestingEvent
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) Update(event *model.TestingEvent) error {
	f.events[event.ID] = event
	return nil
}

type fakeParticipantRepo struct {
	mu             sync.Mutex
	participants   map[uint]*model.Participant
	failGradingFor map[uint]bool

	gradingUpdates map[uint]repository.GradingUpdate
	docURLs        map[uint]string
}

func newFakeParticipantRepo(ps ...*model.Participant) *fakeParticipantRepo {
	f := &fakeParticipantRepo{
		participants:   map[uint]*model.Participant{},
		failGradingFor: map[uint]bool{},
		gradingUpdates: map[uint]repository.GradingUpdate{},
		docURLs:        map[uint]string{},
	}
	for _, p := range ps {
		f.participants[p.ID] = p
	}
	return f
}

func (f *fakeParticipantRepo) Create(p *model.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uint(len(f.participants) + 1)
	f.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) FindByID(id uint) (*model.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeParticipantRepo) FindByIDWithMember(id uint) (*model.Participant, error) {
	return f.FindByID(id)
}

func (f *fakeParticipantRepo) UpdateGrading(id uint, upd repository.GradingUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGradingFor[id] {
		return fmt.Errorf("simulated persistence failure for participant %d", id)
	}
	p, ok := f.participants[id]
	if !ok {
		return errNotFound
	}
	f.gradingUpdates[id] = upd
	p.ItemScores = upd.ItemScores
	p.Score = upd.Score
	p.Status = upd.Status
	p.Notes = upd.Notes
	p.AdminNotes = upd.AdminNotes
	return nil
}

func (f *fakeParticipantRepo) UpdateDocumentURL(id uint, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return errNotFound
	}
	f.docURLs[id] = url
	p.ResultDocumentURL = &url
	return nil
}

func (f *fakeParticipantRepo) UpdateStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return errNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeParticipantRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.participants, id)
	return nil
}

type fakeMemberRepo struct {
	members map[uint]*model.Member
}

func (f *fakeMemberRepo) Create(m *model.Member) error {
	if f.members == nil {
		f.members = map[uint]*model.Member{}
	}
	m.ID = uint(len(f.members) + 1)
	f.members[m.ID] = m
	return nil
}

func (f *fakeMemberRepo) FindByID(id uint) (*model.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (f *fakeMemberRepo) FindByIDWithDocuments(id uint) (*model.Member, error) {
	return f.FindByID(id)
}

func (f *fakeMemberRepo) Update(m *model.Member) error {
	f.members[m.ID] = m
	return nil
}

type docEntry struct {
	DisplayName string
	URL         string
}

type fakeMemberDocRepo struct {
	mu   sync.Mutex
	docs map[uint][]docEntry
}

func (f *fakeMemberDocRepo) UpsertByDisplayName(memberID uint, displayName, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs == nil {
		f.docs = map[uint][]docEntry{}
	}
	for i, d := range f.docs[memberID] {
		if d.DisplayName == displayName {
			f.docs[memberID][i].URL = url
			return nil
		}
	}
	f.docs[memberID] = append(f.docs[memberID], docEntry{DisplayName: displayName, URL: url})
	return nil
}

type fakeFileStore struct {
	mu      sync.Mutex
	fail    bool
	uploads map[string][]byte
	serial  int
}

func (f *fakeFileStore) Upload(fileName string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("simulated upload failure")
	}
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.serial++
	f.uploads[fileName] = data
	return fmt.Sprintf("http://files.local/%d/%s", f.serial, fileName), nil
}
