package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/request"
	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/response"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/service"
)

type GameSessionService interface {
	RecordSession(ctx context.Context, actor string, donatorIDs []uint) ([]domain.GameSession, error)
	GetRecentSessions(ctx context.Context, actor string, limit int) ([]domain.SessionGroup, error)
}

type GameSessionHandler struct {
	svc  GameSessionService
	uSvc UserService
}

func NewGameSessionHandler(svc GameSessionService, uSvc UserService) *GameSessionHandler {
	return &GameSessionHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleRecordSession godoc
// @Summary      Record a play event for the given donators
// @Description  All participants share one session id and lose one remaining game each. The batch is atomic: a participant without remaining games fails the whole request.
// @Tags         game-sessions
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordSessionRequest  true  "Participating donator IDs"
// @Success      201    {array}   domain.GameSession
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Router       /game-sessions [post]
// @Security BearerAuth
func (h *GameSessionHandler) HandleRecordSession(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.RecordSessionRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sessions, err := h.svc.RecordSession(ctx.Request.Context(), user.Email, input.DonatorIDs)
	if err != nil {
		var noGames *service.NoGamesRemainingError
		if errors.As(err, &noGames) {
			response.RenderErr(ctx, response.ErrConflict(noGames))
			return
		}
		if errors.Is(err, service.ErrEmptyRoster) || errors.Is(err, service.ErrRosterTooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "roster", input.DonatorIDs))
			return
		}

		err = fmt.Errorf("v1.HandleRecordSession -> h.svc.RecordSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, sessions)
}

// HandleGetRecentSessions godoc
// @Summary      Recently played sessions
// @Description  Groups session rows by session id, most recent first. Participants are resolved at lookup time, so names and categories are current, not snapshots.
// @Tags         game-sessions
// @Produce      json
// @Param        limit  query     int  false  "Maximum distinct sessions (default 10)"
// @Success      200  {array}   domain.SessionGroup
// @Failure      400  {object}  response.Err
// @Router       /game-sessions/recent [get]
// @Security BearerAuth
func (h *GameSessionHandler) HandleGetRecentSessions(ctx *gin.Context) {
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

	groups, err := h.svc.GetRecentSessions(ctx.Request.Context(), user.Email, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRecentSessions -> h.svc.GetRecentSessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}
