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

type GalleryService interface {
	AddItem(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error)
	ListItems(ctx context.Context) ([]domain.GalleryItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type GalleryHandler struct {
	svc GalleryService
}

func NewGalleryHandler(svc GalleryService) *GalleryHandler {
	return &GalleryHandler{
		svc: svc,
	}
}

// HandleListItems godoc
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {array}    domain.GalleryItem
// @Failure      500  {object}   response.Err
// @Router       /api/gallery [get]
func (h *GalleryHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleAddItem godoc
//
// @Summary      Add a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        request  body       request.CreateGalleryItemRequest  true  "gallery payload"
// @Success      201      {object}   domain.GalleryItem
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/gallery [post]
func (h *GalleryHandler) HandleAddItem(ctx *gin.Context) {
	var req request.CreateGalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), domain.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleDeleteItem godoc
//
// @Summary      Delete a gallery item
// @Tags         gallery
// @Produce      json
// @Security     BearerToken
// @Param        id   path       int  true  "gallery item ID"
// @Success      204  "no content"
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) HandleDeleteItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGalleryItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("gallery item", "id", id))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
