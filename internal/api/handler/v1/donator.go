package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/request"
	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/response"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/service"
)

type DonatorService interface {
	ListDonators(ctx context.Context, actor string) ([]domain.Donator, error)
	GetDonator(ctx context.Context, actor string, id uint) (domain.Donator, error)
	CreateDonator(ctx context.Context, actor string, donator domain.Donator) (domain.Donator, error)
	UpdateDonator(ctx context.Context, actor string, donator domain.Donator) (domain.Donator, error)
	AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (domain.Donator, error)
	DeleteDonator(ctx context.Context, actor string, id uint) error
	GetDonationsByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationPoint, error)
}

type DonatorHandler struct {
	svc  DonatorService
	uSvc UserService
}

func NewDonatorHandler(svc DonatorService, uSvc UserService) *DonatorHandler {
	return &DonatorHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListDonators godoc
// @Summary      List the actor's donators with their categories
// @Tags         donators
// @Produce      json
// @Success      200  {array}   domain.Donator
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donators [get]
// @Security BearerAuth
func (h *DonatorHandler) HandleListDonators(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	donators, err := h.svc.ListDonators(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonators -> h.svc.ListDonators -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donators)
}

// HandleGetDonator godoc
// @Summary      Get one donator
// @Tags         donators
// @Produce      json
// @Param        donatorID  path      int  true  "Donator ID"
// @Success      200  {object}  domain.Donator
// @Failure      404  {object}  response.Err
// @Router       /donators/{donatorID} [get]
// @Security BearerAuth
func (h *DonatorHandler) HandleGetDonator(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("donatorID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid donator ID: %w", err)))
		return
	}

	donator, err := h.svc.GetDonator(ctx.Request.Context(), user.Email, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetDonator -> h.svc.GetDonator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donator)
}

// HandleCreateDonator godoc
// @Summary      Create a donator
// @Description  total_donation is derived from total_game and the category's current price.
// @Tags         donators
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDonatorRequest  true  "Donator details"
// @Success      201    {object}  domain.Donator
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /donators [post]
// @Security BearerAuth
func (h *DonatorHandler) HandleCreateDonator(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateDonatorRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateDonator(ctx.Request.Context(), user.Email, domain.Donator{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		TotalGame:  input.TotalGame,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", input.CategoryID))
			return
		}
		if errors.Is(err, service.ErrNegativeGames) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateDonator -> h.svc.CreateDonator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateDonator godoc
// @Summary      Update a donator
// @Description  Changing total_game recomputes total_donation from scratch at the category's current price.
// @Tags         donators
// @Accept       json
// @Produce      json
// @Param        donatorID  path      int  true  "Donator ID"
// @Param        input  body      request.UpdateDonatorRequest  true  "Donator details"
// @Success      200    {object}  domain.Donator
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /donators/{donatorID} [put]
// @Security BearerAuth
func (h *DonatorHandler) HandleUpdateDonator(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("donatorID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid donator ID: %w", err)))
		return
	}

	var input request.UpdateDonatorRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateDonator(ctx.Request.Context(), user.Email, domain.Donator{
		ID:         uint(id),
		Name:       input.Name,
		CategoryID: input.CategoryID,
		TotalGame:  input.TotalGame,
	})
	if err != nil {
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "ID", id))
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", input.CategoryID))
			return
		}
		if errors.Is(err, service.ErrNegativeGames) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateDonator -> h.svc.UpdateDonator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleAddGames godoc
// @Summary      Add playable games to a donator
// @Description  Raises total_game, recomputes total_donation and appends an add_games ledger entry atomically.
// @Tags         donators
// @Accept       json
// @Produce      json
// @Param        donatorID  path      int  true  "Donator ID"
// @Param        input  body      request.AddGamesRequest  true  "Games to add"
// @Success      200    {object}  domain.Donator
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /donators/{donatorID}/games [post]
// @Security BearerAuth
func (h *DonatorHandler) HandleAddGames(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("donatorID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid donator ID: %w", err)))
		return
	}

	var input request.AddGamesRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.AddGames(ctx.Request.Context(), user.Email, uint(id), input.GamesToAdd)
	if err != nil {
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "ID", id))
			return
		}
		if errors.Is(err, service.ErrInvalidGamesToAdd) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleAddGames -> h.svc.AddGames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteDonator godoc
// @Summary      Delete a donator
// @Tags         donators
// @Produce      json
// @Param        donatorID  path      int  true  "Donator ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /donators/{donatorID} [delete]
// @Security BearerAuth
func (h *DonatorHandler) HandleDeleteDonator(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("donatorID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid donator ID: %w", err)))
		return
	}

	if err := h.svc.DeleteDonator(ctx.Request.Context(), user.Email, uint(id)); err != nil {
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDonator -> h.svc.DeleteDonator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetDonationsByDateRange godoc
// @Summary      Donators created in a date range, reshaped for charts
// @Tags         donators
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200  {array}   domain.DonationPoint
// @Failure      400  {object}  response.Err
// @Router       /donators/range [get]
// @Security BearerAuth
func (h *DonatorHandler) HandleGetDonationsByDateRange(ctx *gin.Context) {
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

	points, err := h.svc.GetDonationsByDateRange(ctx.Request.Context(), user.Email, start, end)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDonationsByDateRange -> h.svc.GetDonationsByDateRange -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, points)
}
