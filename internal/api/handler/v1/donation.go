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
)

type DonationService interface {
	CreateDonation(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
	}
}

// HandleCreateDonation godoc
//
// @Summary      Record a donation pledge
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request  body       request.CreateDonationRequest  true  "donation payload"
// @Success      201      {object}   domain.Donation
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/donations [post]
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	var req request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	donation := domain.Donation{
		Name:        req.Name,
		Email:       req.Email,
		Type:        domain.DonationType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
	}

	// Donations are open to anonymous visitors, but a logged-in donor
	// gets the donation attached to their account.
	if value, exists := ctx.Get(middleware.ContextKeyUserID); exists {
		if userID, ok := value.(uint); ok {
			donation.UserID = &userID
		}
	}

	created, err := h.svc.CreateDonation(ctx.Request.Context(), donation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDonationAmountRequired),
			errors.Is(err, domain.ErrDonationDetailsRequired),
			errors.Is(err, domain.ErrDonationInvalidType):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListDonations godoc
//
// @Summary      List all donations
// @Tags         donations
// @Produce      json
// @Security     BearerToken
// @Success      200  {array}    domain.Donation
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /api/donations [get]
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	donations, err := h.svc.ListDonations(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, donations)
}
