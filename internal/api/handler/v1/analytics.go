package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/response"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

type AnalyticsService interface {
	GetDailyTotals(ctx context.Context, actor string, start, end time.Time) ([]domain.DailyTotal, error)
	GetCategoryBreakdown(ctx context.Context, actor string) ([]domain.CategoryTotal, error)
	GetLeaderboard(ctx context.Context, actor string, limit int) ([]domain.LeaderboardEntry, error)
}

type AnalyticsHandler struct {
	svc  AnalyticsService
	uSvc UserService
}

func NewAnalyticsHandler(svc AnalyticsService, uSvc UserService) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetDailyTotals godoc
// @Summary      Donation totals per day
// @Tags         analytics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200  {array}   domain.DailyTotal
// @Failure      400  {object}  response.Err
// @Router       /analytics/daily [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleGetDailyTotals(ctx *gin.Context) {
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

	totals, err := h.svc.GetDailyTotals(ctx.Request.Context(), user.Email, start, end)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDailyTotals -> h.svc.GetDailyTotals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, totals)
}

// HandleGetCategoryBreakdown godoc
// @Summary      Donation totals per category
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   domain.CategoryTotal
// @Failure      401  {object}  response.Err
// @Router       /analytics/categories [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleGetCategoryBreakdown(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	breakdown, err := h.svc.GetCategoryBreakdown(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCategoryBreakdown -> h.svc.GetCategoryBreakdown -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, breakdown)
}

// HandleGetLeaderboard godoc
// @Summary      Top donators by lifetime donation
// @Tags         analytics
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries (default 10)"
// @Success      200  {array}   domain.LeaderboardEntry
// @Failure      400  {object}  response.Err
// @Router       /analytics/leaderboard [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleGetLeaderboard(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	limit := 0
	if limitParam := ctx.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %v", err)))
			return
		}
		limit = parsed
	}

	entries, err := h.svc.GetLeaderboard(ctx.Request.Context(), user.Email, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLeaderboard -> h.svc.GetLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
