package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/response"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

type DonationHistoryService interface {
	GetByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error)
}

type DonationHistoryHandler struct {
	svc  DonationHistoryService
	uSvc UserService
}

func NewDonationHistoryHandler(svc DonationHistoryService, uSvc UserService) *DonationHistoryHandler {
	return &DonationHistoryHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetDonationHistory godoc
// @Summary      Donation ledger entries in a date range
// @Tags         donations-history
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200  {array}   domain.DonationHistory
// @Failure      400  {object}  response.Err
// @Router       /donations-history [get]
// @Security BearerAuth
func (h *DonationHistoryHandler) HandleGetDonationHistory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	start, end, respErr := parseDateRange(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.GetByDateRange(ctx.Request.Context(), user.Email, start, end)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDonationHistory -> h.svc.GetByDateRange -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}
