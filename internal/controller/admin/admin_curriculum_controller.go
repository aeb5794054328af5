package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/service"
)

type AdminCurriculumController struct {
	curriculumService service.AdminCurriculumService
}

func NewAdminCurriculumController(curriculumService service.AdminCurriculumService) *AdminCurriculumController {
	return &AdminCurriculumController{curriculumService: curriculumService}
}

// CreateStyle godoc
// @Summary (Admin) Create a style with its rank ladder
// @Description Creates a martial arts style, its ordered ranks and the naming convention used to key rank tests.
// @Tags Admin - Curriculum
// @Accept json
// @Produce json
// @Param style body dto.StyleCreateDTO true "Style with ordered ranks"
// @Success 201 {object} dto.StyleResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/styles [post]
func (c *AdminCurriculumController) CreateStyle(ctx *gin.Context) {
	var req dto.StyleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateStyle: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.curriculumService.CreateStyle(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateStyle: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create style", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetStyle godoc
// @Summary (Admin) Get a style with its ranks
// @Tags Admin - Curriculum
// @Produce json
// @Param style_id path int true "Style ID"
// @Success 200 {object} dto.StyleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Style not found"
// @Router /admin/styles/{style_id} [get]
func (c *AdminCurriculumController) GetStyle(ctx *gin.Context) {
	id, ok := pathID(ctx, "style_id")
	if !ok {
		return
	}
	resp, err := c.curriculumService.GetStyle(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Style not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListStyles godoc
// @Summary (Admin) List styles
// @Tags Admin - Curriculum
// @Produce json
// @Success 200 {array} dto.StyleResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/styles [get]
func (c *AdminCurriculumController) ListStyles(ctx *gin.Context) {
	resp, err := c.curriculumService.ListStyles()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListStyles: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list styles", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateRankTest godoc
// @Summary (Admin) Create a rank test
// @Description Creates the categorized checklist graded at a testing event, keyed to one rank of one style.
// @Tags Admin - Curriculum
// @Accept json
// @Produce json
// @Param rank_test body dto.RankTestCreateDTO true "Rank test with categories and items"
// @Success 201 {object} dto.RankTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/rank-tests [post]
func (c *AdminCurriculumController) CreateRankTest(ctx *gin.Context) {
	var req dto.RankTestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateRankTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.curriculumService.CreateRankTest(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateRankTest: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create rank test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetRankTest godoc
// @Summary (Admin) Get a rank test with its items
// @Tags Admin - Curriculum
// @Produce json
// @Param test_id path int true "Rank test ID"
// @Success 200 {object} dto.RankTestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Rank test not found"
// @Router /admin/rank-tests/{test_id} [get]
func (c *AdminCurriculumController) GetRankTest(ctx *gin.Context) {
	id, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	resp, err := c.curriculumService.GetRankTest(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Rank test not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
