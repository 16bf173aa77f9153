package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/request"
	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
)

type ContactService interface {
	CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{
		svc: svc,
	}
}

// HandleCreateContact godoc
//
// @Summary      Submit a contact message
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request  body       request.CreateContactRequest  true  "contact payload"
// @Success      201      {object}   domain.Contact
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/contacts [post]
func (h *ContactHandler) HandleCreateContact(ctx *gin.Context) {
	var req request.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contact, err := h.svc.CreateContact(ctx.Request.Context(), domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, contact)
}

// HandleListContacts godoc
//
// @Summary      List all contact messages
// @Tags         contacts
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.Contact
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/contacts [get]
func (h *ContactHandler) HandleListContacts(ctx *gin.Context) {
	contacts, err := h.svc.ListContacts(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contacts)
}
