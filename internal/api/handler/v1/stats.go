package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
)

type StatsService interface {
	GetSiteStats(ctx context.Context) (domain.SiteStats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetSiteStats godoc
//
// @Summary      Get the public site counters
// @Tags         stats
// @Produce      json
// @Success      200  {object}   domain.SiteStats
// @Failure      500  {object}   response.Err
// @Router       /api/stats [get]
func (h *StatsHandler) HandleGetSiteStats(ctx *gin.Context) {
	stats, err := h.svc.GetSiteStats(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
