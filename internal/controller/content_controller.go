package controller

import (
	"errors"
	"strconv"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentController serves the read-only course hierarchy.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// ListUnits godoc
// @Summary List active units
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Unit}
// @Router /api/units [get]
func (c *ContentController) ListUnits(ctx *gin.Context) {
	units, err := c.ContentService.ListUnits(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, units)
}

// GetUnit godoc
// @Summary Get one unit with its full content tree
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit id"
// @Success 200 {object} util.Response{data=model.Unit}
// @Failure 404 {object} util.Response
// @Router /api/units/{id} [get]
func (c *ContentController) GetUnit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}

	unit, err := c.ContentService.GetUnit(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUnitNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, unit)
}

// ListThemes godoc
// @Summary List themes
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param unit_id query int false "Filter by unit"
// @Success 200 {object} util.Response{data=[]model.Theme}
// @Router /api/themes [get]
func (c *ContentController) ListThemes(ctx *gin.Context) {
	unitID := util.MustParseUint(ctx.Query("unit_id"))
	themes, err := c.ContentService.ListThemes(unitID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, themes)
}

// ListTopics godoc
// @Summary List topics
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param theme_id query int false "Filter by theme"
// @Param type query string false "Filter by topic type"
// @Success 200 {object} util.Response{data=[]model.Topic}
// @Router /api/topics [get]
func (c *ContentController) ListTopics(ctx *gin.Context) {
	themeID := util.MustParseUint(ctx.Query("theme_id"))
	topicType := model.TopicType(ctx.Query("type"))

	topics, err := c.ContentService.ListTopics(themeID, topicType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// GetTopic godoc
// @Summary Get one topic with its content blocks
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic id"
// @Success 200 {object} util.Response{data=model.Topic}
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [get]
func (c *ContentController) GetTopic(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	topic, err := c.ContentService.GetTopic(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, topic)
}

// ListExercises godoc
// @Summary List exercises
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param topic_id query int false "Filter by topic"
// @Param type query string false "Filter by exercise type" Enums(fill_blank, multiple_choice, true_false)
// @Success 200 {object} util.Response{data=[]model.Exercise}
// @Router /api/exercises [get]
func (c *ContentController) ListExercises(ctx *gin.Context) {
	topicID := util.MustParseUint(ctx.Query("topic_id"))
	exerciseType := model.ExerciseType(ctx.Query("type"))
	if exerciseType != "" && !exerciseType.Valid() {
		util.BadRequest(ctx, "unknown exercise type")
		return
	}

	exercises, err := c.ContentService.ListExercises(topicID, exerciseType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exercises)
}

// GetExercise godoc
// @Summary Get one exercise with questions and options
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise id"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [get]
func (c *ContentController) GetExercise(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	exercise, err := c.ContentService.GetExercise(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, exercise)
}
