package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/repository"
)

type EventService interface {
	CreateEvent(req dto.EventCreateDTO) (*dto.EventResponseDTO, error)
	GetEvent(eventID uint) (*dto.EventResponseDTO, error)
	ListEvents() ([]dto.EventResponseDTO, error)
	AddParticipant(eventID uint, req dto.ParticipantAddDTO) (*dto.ParticipantResponseDTO, error)
	RemoveParticipant(participantID uint) error
	SetParticipantStatus(participantID uint, status string) error
	CompleteEvent(eventID uint) error
}

type eventService struct {
	eventRepo       repository.EventRepository
	participantRepo repository.ParticipantRepository
	memberRepo      repository.MemberRepository
	styleRepo       repository.StyleRepository
}

func NewEventService(
	eventRepo repository.EventRepository,
	participantRepo repository.ParticipantRepository,
	memberRepo repository.MemberRepository,
	styleRepo repository.StyleRepository,
) EventService {
	return &eventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		memberRepo:      memberRepo,
		styleRepo:       styleRepo,
	}
}

func (s *eventService) CreateEvent(req dto.EventCreateDTO) (*dto.EventResponseDTO, error) {
	if _, err := s.styleRepo.FindByID(req.StyleID); err != nil {
		return nil, fmt.Errorf("style %d: %w", req.StyleID, err)
	}
	event := model.TestingEvent{
		Name:     req.Name,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		StyleID:  req.StyleID,
		Status:   model.EventScheduled,
	}
	if err := s.eventRepo.Create(&event); err != nil {
		log.Error().Err(err).Msg("CreateEvent: failed to create testing event")
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return s.eventDTO(&event)
}

func (s *eventService) GetEvent(eventID uint) (*dto.EventResponseDTO, error) {
	event, err := s.eventRepo.FindByIDWithParticipants(eventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	resp, err := s.eventDTO(event)
	if err != nil {
		return nil, err
	}
	for i, p := range event.Participants {
		if p.Member.ID != 0 {
			resp.Participants[i].MemberName = p.Member.FullName()
		}
	}
	return resp, nil
}

func (s *eventService) ListEvents() ([]dto.EventResponseDTO, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	out := make([]dto.EventResponseDTO, 0, len(events))
	for i := range events {
		resp, err := s.eventDTO(&events[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// AddParticipant registers a member, copying their current rank and
// pre-filling the rank they test for as the next rank on the style's
// ladder. A member already at the top (or with an unknown rank) starts
// with a blank testing-for rank for the operator to fill in.
func (s *eventService) AddParticipant(eventID uint, req dto.ParticipantAddDTO) (*dto.ParticipantResponseDTO, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	member, err := s.memberRepo.FindByID(req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("member %d: %w", req.MemberID, err)
	}
	style, err := s.styleRepo.FindByIDWithRanks(event.StyleID)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", event.StyleID, err)
	}

	testingFor := ""
	if next := grading.NextRank(style, member.CurrentRank); next != nil {
		testingFor = next.Name
	} else {
		log.Warn().Uint("memberID", member.ID).Str("currentRank", member.CurrentRank).
			Msg("AddParticipant: no next rank for member, testing-for left blank")
	}

	p := model.Participant{
		TestingEventID: event.ID,
		MemberID:       member.ID,
		CurrentRank:    member.CurrentRank,
		TestingForRank: testingFor,
		Status:         model.ParticipantRegistered,
	}
	if err := s.participantRepo.Create(&p); err != nil {
		return nil, fmt.Errorf("registering participant: %w", err)
	}

	var resp dto.ParticipantResponseDTO
	if err := copier.Copy(&resp, &p); err != nil {
		return nil, fmt.Errorf("preparing participant response: %w", err)
	}
	resp.MemberName = member.FullName()
	return &resp, nil
}

func (s *eventService) RemoveParticipant(participantID uint) error {
	return s.participantRepo.Delete(participantID)
}

// SetParticipantStatus is the direct status edit used outside grading,
// e.g. marking a no-show. Grading saves set status through the grading
// pipeline instead.
func (s *eventService) SetParticipantStatus(participantID uint, status string) error {
	return s.participantRepo.UpdateStatus(participantID, status)
}

func (s *eventService) CompleteEvent(eventID uint) error {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return fmt.Errorf("event %d: %w", eventID, err)
	}
	event.Status = model.EventCompleted
	return s.eventRepo.Update(event)
}

func (s *eventService) eventDTO(event *model.TestingEvent) (*dto.EventResponseDTO, error) {
	var resp dto.EventResponseDTO
	if err := copier.Copy(&resp, event); err != nil {
		return nil, fmt.Errorf("preparing event response: %w", err)
	}
	return &resp, nil
}
