package controller

import (
	"errors"
	"strconv"

	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// List godoc
// @Summary List own unit progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudentProgress}
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	rows, err := c.ProgressService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// GetUnitProgress godoc
// @Summary Progress for one unit
// @Description Returns the caller's progress row for the unit, created at 0% on first read
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit id"
// @Success 200 {object} util.Response{data=model.StudentProgress}
// @Failure 404 {object} util.Response "Unknown unit"
// @Router /api/units/{id}/progress [get]
func (c *ProgressController) GetUnitProgress(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.Get(claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUnitNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// Recalculate godoc
// @Summary Recompute progress for one unit
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit id"
// @Success 200 {object} util.Response{data=model.StudentProgress}
// @Failure 404 {object} util.Response "Unknown unit"
// @Router /api/units/{id}/progress [post]
func (c *ProgressController) Recalculate(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.Update(claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUnitNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}
