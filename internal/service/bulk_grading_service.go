package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/repository"
)

// BulkGradingService grades every participant of an event in one pass.
// The per-participant pipelines are independent: each one saves, renders
// and uploads on its own goroutine, a failure in one never blocks or
// rolls back another, and failures come back in the summary for the
// grader to report. No retries.
type BulkGradingService interface {
	GradeEvent(eventID uint, req dto.BulkGradeRequestDTO) (*dto.BulkGradeSummaryDTO, error)
}

type bulkGradingService struct {
	eventRepo repository.EventRepository
	styleRepo repository.StyleRepository
	grader    GradingService
}

func NewBulkGradingService(
	eventRepo repository.EventRepository,
	styleRepo repository.StyleRepository,
	grader GradingService,
) BulkGradingService {
	return &bulkGradingService{eventRepo: eventRepo, styleRepo: styleRepo, grader: grader}
}

func (s *bulkGradingService) GradeEvent(eventID uint, req dto.BulkGradeRequestDTO) (*dto.BulkGradeSummaryDTO, error) {
	event, err := s.eventRepo.FindByIDWithParticipants(eventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	style, err := s.styleRepo.FindByIDWithRanks(event.StyleID)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", event.StyleID, err)
	}

	results := make([]dto.GradeResultDTO, len(event.Participants))
	resultsChan := make(chan struct {
		idx int
		res dto.GradeResultDTO
	}, len(event.Participants))

	var wg sync.WaitGroup
	for i := range event.Participants {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			p := event.Participants[idx]
			override := grading.ParseOverride(req.Overrides[p.ID])
			res := s.grader.GradeLoaded(p, event, style, override)
			resultsChan <- struct {
				idx int
				res dto.GradeResultDTO
			}{idx, res}
		}(i)
	}
	wg.Wait()
	close(resultsChan)

	summary := &dto.BulkGradeSummaryDTO{EventID: eventID, Total: len(event.Participants)}
	for r := range resultsChan {
		results[r.idx] = r.res
		if !r.res.OK {
			summary.FailedCount++
			log.Warn().Uint("participantID", r.res.ParticipantID).Str("error", r.res.Error).
				Msg("GradeEvent: participant save failed, continuing with the rest")
		}
	}
	summary.Results = results
	return summary, nil
}
