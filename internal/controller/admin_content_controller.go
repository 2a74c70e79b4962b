package controller

import (
	"strconv"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
)

// AdminContentController is the authoring surface for teachers and admins.
type AdminContentController struct {
	ContentService *service.ContentService
	ExerciseRepo   exerciseWriter
}

// exerciseWriter is the slice of the exercise repository the authoring
// endpoints need.
type exerciseWriter interface {
	CreateExercise(exercise *model.Exercise) error
	UpdateExercise(exercise *model.Exercise) error
	DeleteExercise(id uint) error
	CreateQuestion(question *model.Question) error
	UpdateQuestion(question *model.Question) error
	DeleteQuestion(id uint) error
	CreateAnswer(answer *model.Answer) error
	UpdateAnswer(answer *model.Answer) error
	DeleteAnswer(id uint) error
	UpsertFillBlank(key *model.FillBlankAnswer) error
}

func NewAdminContentController(contentService *service.ContentService, exerciseRepo exerciseWriter) *AdminContentController {
	return &AdminContentController{ContentService: contentService, ExerciseRepo: exerciseRepo}
}

// CreateUnit godoc
// @Summary Create a unit
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Unit true "Unit"
// @Success 201 {object} util.Response{data=model.Unit}
// @Router /api/admin/units [post]
func (c *AdminContentController) CreateUnit(ctx *gin.Context) {
	var unit model.Unit
	if err := ctx.ShouldBindJSON(&unit); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateUnit(ctx.Request.Context(), &unit); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, unit)
}

// UpdateUnit godoc
// @Summary Update a unit
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit id"
// @Param body body model.Unit true "Unit"
// @Success 200 {object} util.Response{data=model.Unit}
// @Router /api/admin/units/{id} [put]
func (c *AdminContentController) UpdateUnit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}

	var unit model.Unit
	if err := ctx.ShouldBindJSON(&unit); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	unit.ID = uint(id)

	if err := c.ContentService.UpdateUnit(ctx.Request.Context(), &unit); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, unit)
}

// DeleteUnit godoc
// @Summary Delete a unit
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit id"
// @Success 200 {object} util.Response
// @Router /api/admin/units/{id} [delete]
func (c *AdminContentController) DeleteUnit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}
	if err := c.ContentService.DeleteUnit(ctx.Request.Context(), uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateTheme godoc
// @Summary Create a theme
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Theme true "Theme"
// @Success 201 {object} util.Response{data=model.Theme}
// @Router /api/admin/themes [post]
func (c *AdminContentController) CreateTheme(ctx *gin.Context) {
	var theme model.Theme
	if err := ctx.ShouldBindJSON(&theme); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateTheme(ctx.Request.Context(), &theme); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, theme)
}

// UpdateTheme godoc
// @Summary Update a theme
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Theme id"
// @Param body body model.Theme true "Theme"
// @Success 200 {object} util.Response{data=model.Theme}
// @Router /api/admin/themes/{id} [put]
func (c *AdminContentController) UpdateTheme(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid theme id")
		return
	}

	var theme model.Theme
	if err := ctx.ShouldBindJSON(&theme); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	theme.ID = uint(id)

	if err := c.ContentService.UpdateTheme(ctx.Request.Context(), &theme); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, theme)
}

// DeleteTheme godoc
// @Summary Delete a theme
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Theme id"
// @Param unit_id query int true "Owning unit id"
// @Success 200 {object} util.Response
// @Router /api/admin/themes/{id} [delete]
func (c *AdminContentController) DeleteTheme(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid theme id")
		return
	}
	unitID := util.MustParseUint(ctx.Query("unit_id"))

	theme := model.Theme{UnitID: unitID}
	theme.ID = uint(id)
	if err := c.ContentService.DeleteTheme(ctx.Request.Context(), &theme); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Topic true "Topic"
// @Success 201 {object} util.Response{data=model.Topic}
// @Router /api/admin/topics [post]
func (c *AdminContentController) CreateTopic(ctx *gin.Context) {
	var topic model.Topic
	if err := ctx.ShouldBindJSON(&topic); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateTopic(ctx.Request.Context(), &topic); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, topic)
}

// UpdateTopic godoc
// @Summary Update a topic
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic id"
// @Param body body model.Topic true "Topic"
// @Success 200 {object} util.Response{data=model.Topic}
// @Router /api/admin/topics/{id} [put]
func (c *AdminContentController) UpdateTopic(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	var topic model.Topic
	if err := ctx.ShouldBindJSON(&topic); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	topic.ID = uint(id)

	if err := c.ContentService.UpdateTopic(ctx.Request.Context(), &topic); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic id"
// @Param theme_id query int true "Owning theme id"
// @Success 200 {object} util.Response
// @Router /api/admin/topics/{id} [delete]
func (c *AdminContentController) DeleteTopic(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid topic id")
		return
	}
	themeID := util.MustParseUint(ctx.Query("theme_id"))

	topic := model.Topic{ThemeID: themeID}
	topic.ID = uint(id)
	if err := c.ContentService.DeleteTopic(ctx.Request.Context(), &topic); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateExercise godoc
// @Summary Create an exercise with questions and keys
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Exercise true "Exercise"
// @Success 201 {object} util.Response{data=model.Exercise}
// @Failure 400 {object} util.Response "Unknown exercise type"
// @Router /api/admin/exercises [post]
func (c *AdminContentController) CreateExercise(ctx *gin.Context) {
	var exercise model.Exercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !exercise.ExerciseType.Valid() {
		util.BadRequest(ctx, "unknown exercise type")
		return
	}
	if err := c.ExerciseRepo.CreateExercise(&exercise); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, exercise)
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise id"
// @Param body body model.Exercise true "Exercise"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Router /api/admin/exercises/{id} [put]
func (c *AdminContentController) UpdateExercise(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	var exercise model.Exercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !exercise.ExerciseType.Valid() {
		util.BadRequest(ctx, "unknown exercise type")
		return
	}
	exercise.ID = uint(id)

	if err := c.ExerciseRepo.UpdateExercise(&exercise); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise id"
// @Success 200 {object} util.Response
// @Router /api/admin/exercises/{id} [delete]
func (c *AdminContentController) DeleteExercise(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}
	if err := c.ExerciseRepo.DeleteExercise(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateQuestion godoc
// @Summary Add a question to an exercise
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Question true "Question"
// @Success 201 {object} util.Response{data=model.Question}
// @Router /api/admin/questions [post]
func (c *AdminContentController) CreateQuestion(ctx *gin.Context) {
	var question model.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExerciseRepo.CreateQuestion(&question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question id"
// @Param body body model.Question true "Question"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/admin/questions/{id} [put]
func (c *AdminContentController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var question model.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question.ID = uint(id)

	if err := c.ExerciseRepo.UpdateQuestion(&question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question id"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *AdminContentController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	if err := c.ExerciseRepo.DeleteQuestion(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateAnswer godoc
// @Summary Add an option to a question
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Answer true "Answer option"
// @Success 201 {object} util.Response{data=model.Answer}
// @Router /api/admin/answers [post]
func (c *AdminContentController) CreateAnswer(ctx *gin.Context) {
	var answer model.Answer
	if err := ctx.ShouldBindJSON(&answer); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExerciseRepo.CreateAnswer(&answer); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// UpdateAnswer godoc
// @Summary Update an option
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer id"
// @Param body body model.Answer true "Answer option"
// @Success 200 {object} util.Response{data=model.Answer}
// @Router /api/admin/answers/{id} [put]
func (c *AdminContentController) UpdateAnswer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid answer id")
		return
	}

	var answer model.Answer
	if err := ctx.ShouldBindJSON(&answer); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	answer.ID = uint(id)

	if err := c.ExerciseRepo.UpdateAnswer(&answer); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// DeleteAnswer godoc
// @Summary Delete an option
// @Tags admin-content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer id"
// @Success 200 {object} util.Response
// @Router /api/admin/answers/{id} [delete]
func (c *AdminContentController) DeleteAnswer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid answer id")
		return
	}
	if err := c.ExerciseRepo.DeleteAnswer(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UpsertFillBlankKey godoc
// @Summary Create or replace a fill-blank answer key
// @Tags admin-content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question id"
// @Param body body model.FillBlankAnswer true "Answer key"
// @Success 200 {object} util.Response{data=model.FillBlankAnswer}
// @Router /api/admin/questions/{id}/fill-blank [put]
func (c *AdminContentController) UpsertFillBlankKey(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var key model.FillBlankAnswer
	if err := ctx.ShouldBindJSON(&key); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	key.QuestionID = uint(id)

	if err := c.ExerciseRepo.UpsertFillBlank(&key); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, key)
}
