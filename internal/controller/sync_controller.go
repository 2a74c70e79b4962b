package controller

import (
	"github.com/SaideLeon/nativespeak-api/internal/service"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
)

// SyncController mirrors the client's local state.
type SyncController struct {
	SyncService *service.SyncService
}

func NewSyncController(syncService *service.SyncService) *SyncController {
	return &SyncController{SyncService: syncService}
}

// Pull godoc
// @Summary Pull the stored client snapshot
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SyncPayload}
// @Router /api/sync [get]
func (c *SyncController) Pull(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	payload, err := c.SyncService.Pull(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payload)
}

// Push godoc
// @Summary Push the client snapshot
// @Description Replaces the stored snapshot; omitted sections are left untouched
// @Tags sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SyncPayload true "Client snapshot"
// @Success 200 {object} util.Response{data=service.SyncPayload}
// @Router /api/sync [post]
func (c *SyncController) Push(ctx *gin.Context) {
	var payload service.SyncPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.SyncService.Push(claims.UserID, &payload)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetProfile godoc
// @Summary Get the caller's learning profile
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/me/profile [get]
func (c *SyncController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	profile, err := c.SyncService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update the caller's learning profile
// @Tags sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateProfileInput true "Profile fields"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/me/profile [put]
func (c *SyncController) UpdateProfile(ctx *gin.Context) {
	var input service.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	profile, err := c.SyncService.UpdateProfile(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
