package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
)

// ExerciseController handles submission and review of graded exercises.
type ExerciseController struct {
	GradingService *service.GradingService
}

func NewExerciseController(gradingService *service.GradingService) *ExerciseController {
	return &ExerciseController{GradingService: gradingService}
}

// SubmitRequest carries the student's answers keyed by question id.
// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers   map[string]string `json:"answers" binding:"required"`
	TimeSpent int               `json:"time_spent"`
}

// Submit godoc
// @Summary Submit answers for grading
// @Description Grades the answers, stores the submission and updates unit progress
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise id"
// @Param body body SubmitRequest true "Answers keyed by question id"
// @Success 201 {object} util.Response{data=service.SubmissionResult}
// @Failure 400 {object} util.Response "Invalid payload or negative time_spent"
// @Failure 404 {object} util.Response "Unknown exercise"
// @Router /api/exercises/{id}/submit [post]
func (c *ExerciseController) Submit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.GradingService.Grade(claims.UserID, uint(id), req.Answers, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidTimeSpent):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrExerciseNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// ListSubmissions godoc
// @Summary List own submissions
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param exercise_id query int false "Filter by exercise"
// @Param unit_id query int false "Filter by unit"
// @Success 200 {object} util.Response{data=[]model.ExerciseSubmission}
// @Router /api/submissions [get]
func (c *ExerciseController) ListSubmissions(ctx *gin.Context) {
	exerciseID := util.MustParseUint(ctx.Query("exercise_id"))
	unitID := util.MustParseUint(ctx.Query("unit_id"))

	claims := util.GetUserFromContext(ctx)
	submissions, err := c.GradingService.ListSubmissions(claims.UserID, exerciseID, unitID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// GetSubmission godoc
// @Summary Get one submission with its responses
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission id"
// @Success 200 {object} util.Response{data=model.ExerciseSubmission}
// @Failure 403 {object} util.Response "Someone else's submission"
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id} [get]
func (c *ExerciseController) GetSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	submission, err := c.GradingService.GetSubmission(ctx.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Error(ctx, http.StatusForbidden, "not your submission")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}
