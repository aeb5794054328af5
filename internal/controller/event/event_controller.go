package event

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/service"
)

// EventController handles testing event scheduling, the roster, and
// member enrollment.
type EventController struct {
	eventService  service.EventService
	memberService service.MemberService
}

func NewEventController(eventService service.EventService, memberService service.MemberService) *EventController {
	return &EventController{eventService: eventService, memberService: memberService}
}

// CreateEvent godoc
// @Summary Schedule a testing event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body dto.EventCreateDTO true "Event details"
// @Success 201 {object} dto.EventResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateEvent: invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.eventService.CreateEvent(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create event", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetEvent godoc
// @Summary Get a testing event with its roster
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} dto.EventResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{event_id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "event_id")
	if !ok {
		return
	}
	resp, err := c.eventService.GetEvent(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Event not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListEvents godoc
// @Summary List testing events
// @Tags Events
// @Produce json
// @Success 200 {array} dto.EventResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents()
	if err != nil {
		log.Error().Err(err).Msg("ListEvents: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list events", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CompleteEvent godoc
// @Summary Mark a testing event completed
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{event_id}/complete [post]
func (c *EventController) CompleteEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "event_id")
	if !ok {
		return
	}
	if err := c.eventService.CompleteEvent(id); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Event not found", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddParticipant godoc
// @Summary Register a member for an event
// @Description Copies the member's current rank and pre-fills the rank they test for from the style's ladder.
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param participant body dto.ParticipantAddDTO true "Member to register"
// @Success 201 {object} dto.ParticipantResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /events/{event_id}/participants [post]
func (c *EventController) AddParticipant(ctx *gin.Context) {
	id, ok := pathID(ctx, "event_id")
	if !ok {
		return
	}
	var req dto.ParticipantAddDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddParticipant: invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.eventService.AddParticipant(id, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to register participant", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RemoveParticipant godoc
// @Summary Remove a participant from an event
// @Tags Events
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /participants/{participant_id} [delete]
func (c *EventController) RemoveParticipant(ctx *gin.Context) {
	id, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	if err := c.eventService.RemoveParticipant(id); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Participant not found", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetParticipantStatus godoc
// @Summary Edit a participant's status directly
// @Description Direct status edit outside grading, e.g. marking a no-show.
// @Tags Events
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param status body dto.ParticipantStatusDTO true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Router /participants/{participant_id}/status [put]
func (c *EventController) SetParticipantStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	var req dto.ParticipantStatusDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.eventService.SetParticipantStatus(id, req.Status); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Participant not found", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateMember godoc
// @Summary Enroll a member
// @Tags Members
// @Accept json
// @Produce json
// @Param member body dto.MemberCreateDTO true "Member details"
// @Success 201 {object} model.Member
// @Failure 400 {object} dto.ErrorResponse
// @Router /members [post]
func (c *EventController) CreateMember(ctx *gin.Context) {
	var req dto.MemberCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateMember: invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	member, err := c.memberService.CreateMember(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create member", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, member)
}

// GetMember godoc
// @Summary Get a member with their result documents
// @Tags Members
// @Produce json
// @Param member_id path int true "Member ID"
// @Success 200 {object} model.Member
// @Failure 404 {object} dto.ErrorResponse
// @Router /members/{member_id} [get]
func (c *EventController) GetMember(ctx *gin.Context) {
	id, ok := pathID(ctx, "member_id")
	if !ok {
		return
	}
	member, err := c.memberService.GetMember(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Member not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, member)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
