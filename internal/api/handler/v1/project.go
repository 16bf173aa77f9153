package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/request"
	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/service"
)

type ProjectService interface {
	GetProject(ctx context.Context, id uint) (domain.Project, error)
	ListProjects(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	Register(ctx context.Context, userID, projectID uint) (domain.ProjectParticipation, error)
}

type ProjectHandler struct {
	svc ProjectService
}

func NewProjectHandler(svc ProjectService) *ProjectHandler {
	return &ProjectHandler{
		svc: svc,
	}
}

// HandleListProjects godoc
//
// @Summary      List projects, optionally filtered by status
// @Tags         projects
// @Produce      json
// @Param        status  query      string  false  "upcoming, ongoing or completed"
// @Success      200     {array}    domain.Project
// @Failure      400     {object}   response.Err
// @Failure      500     {object}   response.Err
// @Router       /api/projects [get]
func (h *ProjectHandler) HandleListProjects(ctx *gin.Context) {
	status := domain.ProjectStatus(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid project status")))

		return
	}

	projects, err := h.svc.ListProjects(ctx.Request.Context(), status)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// HandleGetProject godoc
//
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Param        id   path       int  true  "project ID"
// @Success      200  {object}   domain.Project
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) HandleGetProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	project, err := h.svc.GetProject(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, project)
}

// HandleCreateProject godoc
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        request  body       request.CreateProjectRequest  true  "project payload"
// @Success      201      {object}   domain.Project
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/projects [post]
func (h *ProjectHandler) HandleCreateProject(ctx *gin.Context) {
	var req request.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	project, err := h.svc.CreateProject(ctx.Request.Context(), domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Domain:      req.Domain,
		Status:      domain.ProjectStatus(req.Status),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// HandleUpdateProject godoc
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        id       path       int                           true  "project ID"
// @Param        request  body       request.UpdateProjectRequest  true  "project payload"
// @Success      200      {object}   domain.Project
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) HandleUpdateProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateProjectRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	project, err := h.svc.UpdateProject(ctx.Request.Context(), domain.Project{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Domain:      req.Domain,
		Status:      domain.ProjectStatus(req.Status),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			response.RenderErr(ctx, response.ErrNotFound("project", "id", id))
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidStatusChange))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, project)
}

// HandleDeleteProject godoc
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "project ID"
// @Success      204  "no content"
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) HandleDeleteProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteProject(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRegister godoc
//
// @Summary      Register the authenticated user as project participant
// @Tags         projects
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "project ID"
// @Success      201  {object}   domain.ProjectParticipation
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      409  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/projects/{id}/register [post]
func (h *ProjectHandler) HandleRegister(ctx *gin.Context) {
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
		case errors.Is(err, service.ErrProjectNotFound):
			response.RenderErr(ctx, response.ErrNotFound("project", "id", id))
		case errors.Is(err, service.ErrProjectAlreadyJoined):
			response.RenderErr(ctx, response.ErrConflict(service.ErrProjectAlreadyJoined))
		case errors.Is(err, service.ErrProjectCompleted):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrProjectCompleted))
		case errors.Is(err, service.ErrProjectNotOpen):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrProjectNotOpen))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, participation)
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid id parameter")
	}

	return uint(id), nil
}
