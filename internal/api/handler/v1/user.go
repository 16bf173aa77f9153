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

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uint, name, email string, role domain.Role) (domain.User, error)
	PromoteToAdmin(ctx context.Context, id uint) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserParticipationService interface {
	GetUserParticipations(ctx context.Context, userID uint) ([]domain.UserParticipation, error)
}

type UserStatsService interface {
	GetUserStats(ctx context.Context, userID uint) (domain.UserStats, error)
}

type UserHandler struct {
	svc              UserService
	participationSvc UserParticipationService
	statsSvc         UserStatsService
}

func NewUserHandler(svc UserService, participationSvc UserParticipationService, statsSvc UserStatsService) *UserHandler {
	return &UserHandler{
		svc:              svc,
		participationSvc: participationSvc,
		statsSvc:         statsSvc,
	}
}

// HandleListUsers godoc
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.User
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/admin/users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "user ID"
// @Success      200  {object}   domain.User
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/admin/users/{id} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateUser godoc
//
// @Summary      Update a user's name, email or role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        id       path       int                        true  "user ID"
// @Param        request  body       request.UpdateUserRequest  true  "user payload"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/admin/users/{id} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateUserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), id, req.Name, req.Email, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandlePromoteUser godoc
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "user ID"
// @Success      200  {object}   domain.User
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/admin/users/{id}/promote [post]
func (h *UserHandler) HandlePromoteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.PromoteToAdmin(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "user ID"
// @Success      204  "no content"
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetParticipations godoc
//
// @Summary      List the authenticated user's activity participations
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.UserParticipation
// @Failure      401  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/user/participations [get]
func (h *UserHandler) HandleGetParticipations(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	participations, err := h.participationSvc.GetUserParticipations(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participations)
}

// HandleGetUserStats godoc
//
// @Summary      Get the authenticated user's dashboard stats
// @Tags         users
// @Produce      json
// @Security     BearerToken
// @Success      200  {object}   domain.UserStats
// @Failure      401  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/user/stats [get]
func (h *UserHandler) HandleGetUserStats(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	stats, err := h.statsSvc.GetUserStats(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
