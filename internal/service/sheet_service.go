package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/repository"
)

var (
	// ErrSheetSaving means a save for this participant is in flight;
	// edits are rejected until it resolves.
	ErrSheetSaving = errors.New("a save is in progress for this participant")
	// ErrUnknownItem means the toggled item is not on the sheet's
	// curriculum.
	ErrUnknownItem = errors.New("item is not part of this curriculum")
)

// SheetService owns the live grading sheets: one mutable score map per
// participant, seeded from the persisted snapshot when first opened.
// Aggregation and rendering only ever see cloned snapshots.
type SheetService interface {
	GetSheet(participantID uint) (*dto.GradingSheetDTO, error)
	ToggleItem(participantID, itemID uint) (*dto.ToggleResponseDTO, error)
	AnnotateItem(participantID, itemID uint, req dto.AnnotateRequestDTO) (*dto.ItemScoreDTO, error)

	// Snapshot returns a copy of the participant's live scores, or
	// false when no sheet is open (bulk grading then falls back to the
	// persisted snapshot).
	Snapshot(participantID uint) (grading.ScoreMap, bool)
	// BeginSave marks the sheet in flight; edits fail until FinishSave.
	BeginSave(participantID uint) error
	// FinishSave clears the in-flight mark. After a successful save the
	// sheet is dropped so the next open reseeds from persistence.
	FinishSave(participantID uint, saved bool)
}

type sheet struct {
	curriculum *model.RankTest // nil when no curriculum resolved
	items      map[uint]model.Item
	scores     grading.ScoreMap
	saving     bool
}

type sheetService struct {
	participantRepo repository.ParticipantRepository
	eventRepo       repository.EventRepository
	styleRepo       repository.StyleRepository
	rankTestRepo    repository.RankTestRepository

	mu     sync.Mutex
	sheets map[uint]*sheet
}

func NewSheetService(
	participantRepo repository.ParticipantRepository,
	eventRepo repository.EventRepository,
	styleRepo repository.StyleRepository,
	rankTestRepo repository.RankTestRepository,
) SheetService {
	return &sheetService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		styleRepo:       styleRepo,
		rankTestRepo:    rankTestRepo,
		sheets:          make(map[uint]*sheet),
	}
}

// loadSheet resolves the participant's curriculum and seeds the score
// map from the persisted snapshot. A participant without a curriculum
// still gets a sheet so the client can render the empty state; its
// curriculum stays nil and saves stay disabled.
func (s *sheetService) loadSheet(participantID uint) (*sheet, *model.Participant, error) {
	p, err := s.participantRepo.FindByIDWithMember(participantID)
	if err != nil {
		return nil, nil, fmt.Errorf("participant %d: %w", participantID, err)
	}
	event, err := s.eventRepo.FindByID(p.TestingEventID)
	if err != nil {
		return nil, nil, fmt.Errorf("event %d: %w", p.TestingEventID, err)
	}
	style, err := s.styleRepo.FindByIDWithRanks(event.StyleID)
	if err != nil {
		return nil, nil, fmt.Errorf("style %d: %w", event.StyleID, err)
	}

	sh := &sheet{
		items:  make(map[uint]model.Item),
		scores: grading.DecodeScoreMap(p.ItemScores),
	}
	curriculum, err := grading.ResolveCurriculum(style, p, s.rankTestRepo)
	switch {
	case errors.Is(err, grading.ErrNoCurriculum):
		log.Info().Uint("participantID", participantID).Msg("GetSheet: no curriculum for participant, rendering empty state")
	case err != nil:
		return nil, nil, err
	default:
		sh.curriculum = curriculum
		for _, cat := range curriculum.Categories {
			for _, item := range cat.Items {
				sh.items[item.ID] = item
			}
		}
	}
	return sh, p, nil
}

func (s *sheetService) ensureSheet(participantID uint) (*sheet, error) {
	s.mu.Lock()
	if sh, ok := s.sheets[participantID]; ok {
		s.mu.Unlock()
		return sh, nil
	}
	s.mu.Unlock()

	sh, _, err := s.loadSheet(participantID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have seeded it meanwhile; keep the first.
	if existing, ok := s.sheets[participantID]; ok {
		return existing, nil
	}
	s.sheets[participantID] = sh
	return sh, nil
}

func (s *sheetService) GetSheet(participantID uint) (*dto.GradingSheetDTO, error) {
	sh, p, err := s.loadSheet(participantID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.sheets[participantID]; ok {
		sh = existing // keep unsaved edits over the persisted snapshot
	} else {
		s.sheets[participantID] = sh
	}
	out := &dto.GradingSheetDTO{
		ParticipantID:   p.ID,
		MemberName:      p.Member.FullName(),
		CurrentRank:     p.CurrentRank,
		TestingForRank:  p.TestingForRank,
		CurriculumFound: sh.curriculum != nil,
		SaveEnabled:     sh.curriculum != nil && !sh.saving,
		Scores:          scoreDTOs(sh.scores),
		Summary:         summaryDTO(grading.Aggregate(sh.curriculum, sh.scores, grading.OverrideNone)),
		Notes:           p.Notes,
		AdminNotes:      p.AdminNotes,
	}
	if sh.curriculum != nil {
		var curriculumDTO dto.RankTestResponseDTO
		if err := copier.Copy(&curriculumDTO, sh.curriculum); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("preparing curriculum response: %w", err)
		}
		out.Curriculum = &curriculumDTO
	}
	s.mu.Unlock()
	return out, nil
}

func (s *sheetService) ToggleItem(participantID, itemID uint) (*dto.ToggleResponseDTO, error) {
	sh, err := s.ensureSheet(participantID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sh.saving {
		return nil, ErrSheetSaving
	}
	if sh.curriculum == nil {
		return nil, grading.ErrNoCurriculum
	}
	if _, ok := sh.items[itemID]; !ok {
		return nil, ErrUnknownItem
	}
	state := sh.scores.Toggle(itemID)
	return &dto.ToggleResponseDTO{
		ItemID:  itemID,
		State:   state.String(),
		Summary: summaryDTO(grading.Aggregate(sh.curriculum, sh.scores, grading.OverrideNone)),
	}, nil
}

func (s *sheetService) AnnotateItem(participantID, itemID uint, req dto.AnnotateRequestDTO) (*dto.ItemScoreDTO, error) {
	sh, err := s.ensureSheet(participantID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sh.saving {
		return nil, ErrSheetSaving
	}
	if sh.curriculum == nil {
		return nil, grading.ErrNoCurriculum
	}
	if _, ok := sh.items[itemID]; !ok {
		return nil, ErrUnknownItem
	}
	notes := req.Notes
	if req.AsTime {
		notes = grading.FormatTimeNotation(notes)
	}
	sh.scores.Annotate(itemID, notes)
	sc := sh.scores[itemID]
	return &dto.ItemScoreDTO{ItemID: itemID, State: sc.State.String(), Notes: sc.Notes}, nil
}

func (s *sheetService) Snapshot(participantID uint) (grading.ScoreMap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[participantID]
	if !ok {
		return nil, false
	}
	return sh.scores.Clone(), true
}

func (s *sheetService) BeginSave(participantID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[participantID]
	if !ok {
		return nil // nothing open to guard
	}
	if sh.saving {
		return ErrSheetSaving
	}
	sh.saving = true
	return nil
}

func (s *sheetService) FinishSave(participantID uint, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[participantID]
	if !ok {
		return
	}
	if saved {
		delete(s.sheets, participantID)
		return
	}
	sh.saving = false
}

func scoreDTOs(scores grading.ScoreMap) []dto.ItemScoreDTO {
	out := make([]dto.ItemScoreDTO, 0, len(scores))
	for id, sc := range scores {
		out = append(out, dto.ItemScoreDTO{ItemID: id, State: sc.State.String(), Notes: sc.Notes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func summaryDTO(sum grading.Summary) dto.SummaryDTO {
	return dto.SummaryDTO{
		TotalItems:        sum.TotalItems,
		PassedItems:       sum.PassedItems,
		Percent:           sum.Percent,
		RequiredRemaining: sum.RequiredRemaining,
		FinalStatus:       sum.FinalStatus,
	}
}
