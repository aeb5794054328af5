package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/report"
	"github.com/thepit/dojorank/internal/repository"
	"github.com/thepit/dojorank/internal/storage"
)

// GradingService runs the save pipeline for one participant: aggregate
// the live scores, persist the grading fields, then render and upload
// the result document. The score save is the part that matters; a
// rendering or upload failure afterwards is logged and the participant
// simply keeps the previous (or no) document URL.
type GradingService interface {
	SaveParticipant(participantID uint, req dto.SaveRequestDTO) (*dto.GradeResultDTO, error)

	// GradeLoaded runs the pipeline on already-loaded records, using
	// the participant's stored notes. Bulk grading fans this out.
	GradeLoaded(p model.Participant, event *model.TestingEvent, style *model.Style, override grading.Override) dto.GradeResultDTO
}

type gradingService struct {
	participantRepo repository.ParticipantRepository
	eventRepo       repository.EventRepository
	styleRepo       repository.StyleRepository
	rankTestRepo    repository.RankTestRepository
	memberDocRepo   repository.MemberDocumentRepository
	sheets          SheetService
	generator       *report.Generator
	files           storage.FileStore
}

func NewGradingService(
	participantRepo repository.ParticipantRepository,
	eventRepo repository.EventRepository,
	styleRepo repository.StyleRepository,
	rankTestRepo repository.RankTestRepository,
	memberDocRepo repository.MemberDocumentRepository,
	sheets SheetService,
	generator *report.Generator,
	files storage.FileStore,
) GradingService {
	return &gradingService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		styleRepo:       styleRepo,
		rankTestRepo:    rankTestRepo,
		memberDocRepo:   memberDocRepo,
		sheets:          sheets,
		generator:       generator,
		files:           files,
	}
}

func (s *gradingService) SaveParticipant(participantID uint, req dto.SaveRequestDTO) (*dto.GradeResultDTO, error) {
	p, err := s.participantRepo.FindByIDWithMember(participantID)
	if err != nil {
		return nil, fmt.Errorf("participant %d: %w", participantID, err)
	}
	event, err := s.eventRepo.FindByID(p.TestingEventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", p.TestingEventID, err)
	}
	style, err := s.styleRepo.FindByIDWithRanks(event.StyleID)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", event.StyleID, err)
	}

	p.Notes = req.Notes
	p.AdminNotes = req.AdminNotes
	result := s.GradeLoaded(*p, event, style, grading.ParseOverride(req.Result))
	if !result.OK {
		return &result, errors.New(result.Error)
	}
	return &result, nil
}

func (s *gradingService) GradeLoaded(p model.Participant, event *model.TestingEvent, style *model.Style, override grading.Override) dto.GradeResultDTO {
	result := dto.GradeResultDTO{ParticipantID: p.ID, MemberName: p.Member.FullName()}

	curriculum, err := grading.ResolveCurriculum(style, &p, s.rankTestRepo)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if err := s.sheets.BeginSave(p.ID); err != nil {
		result.Error = err.Error()
		return result
	}
	saved := false
	defer func() { s.sheets.FinishSave(p.ID, saved) }()

	scores, ok := s.sheets.Snapshot(p.ID)
	if !ok {
		scores = grading.DecodeScoreMap(p.ItemScores)
	}

	sum := grading.Aggregate(curriculum, scores, override)
	result.Percent = sum.Percent
	result.Status = sum.FinalStatus

	encoded, err := scores.Encode()
	if err != nil {
		result.Error = fmt.Sprintf("encoding item scores: %v", err)
		return result
	}
	percent := sum.Percent
	err = s.participantRepo.UpdateGrading(p.ID, repository.GradingUpdate{
		ItemScores: encoded,
		Score:      &percent,
		Status:     sum.FinalStatus,
		Notes:      p.Notes,
		AdminNotes: p.AdminNotes,
	})
	if err != nil {
		log.Error().Err(err).Uint("participantID", p.ID).Msg("GradeLoaded: failed to save participant grades")
		result.Error = err.Error()
		return result
	}
	result.OK = true
	saved = true

	// Grading data is saved; everything below is best-effort. A failed
	// render or upload leaves the document URL untouched.
	s.publishDocument(&result, p, event, curriculum, scores, sum)
	return result
}

func (s *gradingService) publishDocument(result *dto.GradeResultDTO, p model.Participant, event *model.TestingEvent, curriculum *model.RankTest, scores grading.ScoreMap, sum grading.Summary) {
	location := ""
	if event.Location != nil {
		location = *event.Location
	}
	pdf, err := s.generator.Render(report.RenderInput{
		ParticipantName: p.Member.FullName(),
		CurrentRank:     p.CurrentRank,
		TestingForRank:  p.TestingForRank,
		EventName:       event.Name,
		EventDate:       event.Date,
		Location:        location,
		Curriculum:      curriculum,
		Scores:          scores,
		Summary:         sum,
		Notes:           p.Notes,
	})
	if err != nil {
		log.Warn().Err(err).Uint("participantID", p.ID).Msg("GradeLoaded: result document rendering failed, scores are saved")
		return
	}

	name := report.DocumentName(p.Member.FullName(), event.Name)
	url, err := s.files.Upload(name+".pdf", pdf)
	if err != nil {
		log.Warn().Err(err).Uint("participantID", p.ID).Msg("GradeLoaded: result document upload failed, scores are saved")
		return
	}
	if err := s.participantRepo.UpdateDocumentURL(p.ID, url); err != nil {
		log.Warn().Err(err).Uint("participantID", p.ID).Msg("GradeLoaded: failed to record document URL")
		return
	}
	if err := s.memberDocRepo.UpsertByDisplayName(p.MemberID, name, url); err != nil {
		log.Warn().Err(err).Uint("memberID", p.MemberID).Msg("GradeLoaded: failed to file document on member record")
		return
	}
	result.DocumentURL = url
}
