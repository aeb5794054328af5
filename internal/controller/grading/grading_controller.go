package grading

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	gradingcore "github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/service"
)

// GradingController exposes the grading sheet: opening it, toggling and
// annotating items, and saving one participant or a whole event.
type GradingController struct {
	sheetService service.SheetService
	gradeService service.GradingService
	bulkService  service.BulkGradingService
}

func NewGradingController(
	sheetService service.SheetService,
	gradeService service.GradingService,
	bulkService service.BulkGradingService,
) *GradingController {
	return &GradingController{
		sheetService: sheetService,
		gradeService: gradeService,
		bulkService:  bulkService,
	}
}

// GetSheet godoc
// @Summary Open the grading sheet for a participant
// @Description Resolves the participant's curriculum and returns the checklist with live scores. When no curriculum matches, curriculum_found is false and saving is disabled.
// @Tags Grading
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} dto.GradingSheetDTO
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{participant_id}/sheet [get]
func (c *GradingController) GetSheet(ctx *gin.Context) {
	id, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	sheet, err := c.sheetService.GetSheet(id)
	if err != nil {
		log.Error().Err(err).Uint("participantID", id).Msg("GetSheet: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Participant not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, sheet)
}

// ToggleItem godoc
// @Summary Toggle one item's score
// @Description One tap cycles incomplete -> passed -> failed -> incomplete and returns the recomputed summary.
// @Tags Grading
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param item_id path int true "Item ID"
// @Success 200 {object} dto.ToggleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No sheet or unknown item"
// @Failure 409 {object} dto.ErrorResponse "Save in progress"
// @Router /participants/{participant_id}/items/{item_id}/toggle [post]
func (c *GradingController) ToggleItem(ctx *gin.Context) {
	participantID, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "item_id")
	if !ok {
		return
	}
	res, err := c.sheetService.ToggleItem(participantID, itemID)
	if err != nil {
		c.sheetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// AnnotateItem godoc
// @Summary Set an item's note
// @Description Sets the free-text annotation without changing the pass state. With as_time, input is normalized to M:SS.
// @Tags Grading
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param item_id path int true "Item ID"
// @Param annotation body dto.AnnotateRequestDTO true "Annotation"
// @Success 200 {object} dto.ItemScoreDTO
// @Failure 404 {object} dto.ErrorResponse "No sheet or unknown item"
// @Failure 409 {object} dto.ErrorResponse "Save in progress"
// @Router /participants/{participant_id}/items/{item_id}/notes [put]
func (c *GradingController) AnnotateItem(ctx *gin.Context) {
	participantID, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "item_id")
	if !ok {
		return
	}
	var req dto.AnnotateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	res, err := c.sheetService.AnnotateItem(participantID, itemID, req)
	if err != nil {
		c.sheetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// SaveParticipant godoc
// @Summary Save a participant's grades
// @Description Aggregates the sheet, persists scores and status, then renders and uploads the result document. Document failures do not roll back the saved scores.
// @Tags Grading
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param save body dto.SaveRequestDTO true "Final result and notes"
// @Success 200 {object} dto.GradeResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input, no curriculum, or save already in progress"
// @Router /participants/{participant_id}/save [post]
func (c *GradingController) SaveParticipant(ctx *gin.Context) {
	id, ok := pathID(ctx, "participant_id")
	if !ok {
		return
	}
	var req dto.SaveRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	res, err := c.gradeService.SaveParticipant(id, req)
	if err != nil {
		log.Error().Err(err).Uint("participantID", id).Msg("SaveParticipant: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to save participant", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GradeEvent godoc
// @Summary Grade every participant of an event
// @Description Runs the save pipeline for all participants concurrently. Failures are collected per participant; saved participants are never rolled back.
// @Tags Grading
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param overrides body dto.BulkGradeRequestDTO true "Per-participant final results"
// @Success 200 {object} dto.BulkGradeSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{event_id}/grade [post]
func (c *GradingController) GradeEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "event_id")
	if !ok {
		return
	}
	var req dto.BulkGradeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	sum, err := c.bulkService.GradeEvent(id, req)
	if err != nil {
		log.Error().Err(err).Uint("eventID", id).Msg("GradeEvent: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Failed to grade event", Details: []string{err.Error()}})
		return
	}
	if sum.FailedCount > 0 {
		log.Warn().Uint("eventID", id).Int("failed", sum.FailedCount).Int("total", sum.Total).
			Msg("GradeEvent: completed with failures")
	}
	ctx.JSON(http.StatusOK, sum)
}

func (c *GradingController) sheetError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSheetSaving):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "A save is in progress", Details: []string{err.Error()}})
	case errors.Is(err, gradingcore.ErrNoCurriculum):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No curriculum for this participant", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrUnknownItem):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown item", Details: []string{err.Error()}})
	default:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Grading operation failed", Details: []string{err.Error()}})
	}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
