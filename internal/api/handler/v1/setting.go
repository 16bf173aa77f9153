package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/request"
	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/service"
)

type SettingService interface {
	GetSetting(ctx context.Context, key string) (domain.Setting, error)
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	UpsertSetting(ctx context.Context, setting domain.Setting) (domain.Setting, error)
}

type SettingHandler struct {
	svc SettingService
}

func NewSettingHandler(svc SettingService) *SettingHandler {
	return &SettingHandler{
		svc: svc,
	}
}

// HandleGetSetting godoc
//
// @Summary      Get a public setting by key
// @Tags         settings
// @Produce      json
// @Param        key  path       string  true  "setting key"
// @Success      200  {object}   domain.Setting
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/settings/{key} [get]
func (h *SettingHandler) HandleGetSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	setting, err := h.svc.GetSetting(ctx.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSettingKey):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidSettingKey))
		case errors.Is(err, service.ErrSettingNotFound):
			response.RenderErr(ctx, response.ErrNotFound("setting", "key", key))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, setting)
}

// HandleListSettings godoc
//
// @Summary      List all settings
// @Tags         settings
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.Setting
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/settings [get]
func (h *SettingHandler) HandleListSettings(ctx *gin.Context) {
	settings, err := h.svc.ListSettings(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleUpsertSetting godoc
//
// @Summary      Create or update a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        key      path       string                        true  "setting key"
// @Param        request  body       request.UpsertSettingRequest  true  "setting payload"
// @Success      200      {object}   domain.Setting
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/settings/{key} [put]
func (h *SettingHandler) HandleUpsertSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	var req request.UpsertSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	setting, err := h.svc.UpsertSetting(ctx.Request.Context(), domain.Setting{
		Key:         key,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSettingKey) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidSettingKey))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, setting)
}
