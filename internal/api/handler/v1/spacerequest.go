package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/request"
	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/api/middleware"
	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/service"
)

type SpaceRequestService interface {
	CreateRequest(ctx context.Context, request domain.SpaceRequest) (domain.SpaceRequest, error)
	ListRequests(ctx context.Context) ([]domain.SpaceRequest, error)
	Resolve(ctx context.Context, id uint, status domain.SpaceRequestStatus) (domain.SpaceRequest, error)
}

type SpaceRequestHandler struct {
	svc SpaceRequestService
}

func NewSpaceRequestHandler(svc SpaceRequestService) *SpaceRequestHandler {
	return &SpaceRequestHandler{
		svc: svc,
	}
}

// HandleCreateRequest godoc
//
// @Summary      File a space or mentorship request
// @Tags         space-requests
// @Accept       json
// @Produce      json
// @Param        request  body       request.CreateSpaceRequestRequest  true  "request payload"
// @Success      201      {object}   domain.SpaceRequest
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/space-requests [post]
func (h *SpaceRequestHandler) HandleCreateRequest(ctx *gin.Context) {
	var req request.CreateSpaceRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	spaceRequest := domain.SpaceRequest{
		Name:    req.Name,
		Email:   req.Email,
		Type:    domain.SpaceRequestType(req.Type),
		Details: req.Details,
	}

	if value, exists := ctx.Get(middleware.ContextKeyUserID); exists {
		if userID, ok := value.(uint); ok {
			spaceRequest.UserID = &userID
		}
	}

	created, err := h.svc.CreateRequest(ctx.Request.Context(), spaceRequest)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListRequests godoc
//
// @Summary      List all space requests
// @Tags         space-requests
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.SpaceRequest
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/space-requests [get]
func (h *SpaceRequestHandler) HandleListRequests(ctx *gin.Context) {
	requests, err := h.svc.ListRequests(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// HandleResolveRequest godoc
//
// @Summary      Approve or reject a pending space request
// @Tags         space-requests
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        id       path       int                                 true  "space request ID"
// @Param        request  body       request.ResolveSpaceRequestRequest  true  "resolution payload"
// @Success      200      {object}   domain.SpaceRequest
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/space-requests/{id} [put]
func (h *SpaceRequestHandler) HandleResolveRequest(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ResolveSpaceRequestRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	resolved, err := h.svc.Resolve(ctx.Request.Context(), id, domain.SpaceRequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSpaceRequestNotFound):
			response.RenderErr(ctx, response.ErrNotFound("space request", "id", id))
		case errors.Is(err, service.ErrInvalidRequestStatus):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRequestStatus))
		case errors.Is(err, service.ErrRequestAlreadyResolved):
			response.RenderErr(ctx, response.ErrConflict(service.ErrRequestAlreadyResolved))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, resolved)
}
