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

type ActivityService interface {
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	ListActivities(ctx context.Context, upcomingOnly bool) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	Register(ctx context.Context, userID, activityID uint) (domain.Participation, error)
	CancelRegistration(ctx context.Context, userID, activityID uint) (domain.Participation, error)
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleListActivities godoc
//
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Param        upcoming  query      bool  false  "only future activities"
// @Success      200       {array}    domain.Activity
// @Failure      500       {object}   response.Err
// @Router       /api/activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	upcomingOnly := ctx.Query("upcoming") == "true"

	activities, err := h.svc.ListActivities(ctx.Request.Context(), upcomingOnly)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
//
// @Summary      Get an activity by ID
// @Tags         activities
// @Produce      json
// @Param        id   path       int  true  "activity ID"
// @Success      200  {object}   domain.Activity
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.GetActivity(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleCreateActivity godoc
//
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        request  body       request.CreateActivityRequest  true  "activity payload"
// @Success      201      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/activities [post]
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.CreateActivity(ctx.Request.Context(), domain.Activity{
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ActivityType(req.Type),
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleUpdateActivity godoc
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        id       path       int                            true  "activity ID"
// @Param        request  body       request.UpdateActivityRequest  true  "activity payload"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateActivityRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.UpdateActivity(ctx.Request.Context(), domain.Activity{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ActivityType(req.Type),
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
//
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "activity ID"
// @Success      204  "no content"
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteActivity(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRegister godoc
//
// @Summary      Register the authenticated user for an activity
// @Tags         activities
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "activity ID"
// @Success      201  {object}   domain.Participation
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      409  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/activities/{id}/register [post]
func (h *ActivityHandler) HandleRegister(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participation, err := h.svc.Register(ctx.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyRegistered))
		case errors.Is(err, service.ErrActivityFull):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrActivityFull))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, participation)
}

// HandleCancelRegistration godoc
//
// @Summary      Cancel the authenticated user's registration
// @Tags         activities
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "activity ID"
// @Success      200  {object}   domain.Participation
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/activities/{id}/register [delete]
func (h *ActivityHandler) HandleCancelRegistration(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participation, err := h.svc.CancelRegistration(ctx.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrParticipationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participation", "activity_id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participation)
}
