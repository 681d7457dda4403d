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

type CurrentGameService interface {
	ListSlots(ctx context.Context, actor string) ([]domain.CurrentGameSlot, error)
	AssignSlot(ctx context.Context, actor string, donatorID uint, position int) (domain.CurrentGameSlot, error)
	UnassignSlot(ctx context.Context, actor string, slotID uint) error
	ClearSlots(ctx context.Context, actor string) error
}

type CurrentGameHandler struct {
	svc  CurrentGameService
	uSvc UserService
}

func NewCurrentGameHandler(svc CurrentGameService, uSvc UserService) *CurrentGameHandler {
	return &CurrentGameHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListSlots godoc
// @Summary      Get the current-game roster
// @Description  Up to four slots ordered by position; missing positions are empty.
// @Tags         current-game
// @Produce      json
// @Success      200  {array}   domain.CurrentGameSlot
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /current-game [get]
// @Security BearerAuth
func (h *CurrentGameHandler) HandleListSlots(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	slots, err := h.svc.ListSlots(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleListSlots -> h.svc.ListSlots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

// HandleAssignSlot godoc
// @Summary      Put a donator on the roster
// @Description  Assigning to an occupied position evicts its occupant; a donator already on the roster moves to the new position.
// @Tags         current-game
// @Accept       json
// @Produce      json
// @Param        input  body      request.AssignSlotRequest  true  "Donator and position"
// @Success      201    {object}  domain.CurrentGameSlot
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /current-game [post]
// @Security BearerAuth
func (h *CurrentGameHandler) HandleAssignSlot(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.AssignSlotRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.AssignSlot(ctx.Request.Context(), user.Email, input.DonatorID, input.Position)
	if err != nil {
		if errors.Is(err, service.ErrDonatorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donator", "ID", input.DonatorID))
			return
		}
		if errors.Is(err, service.ErrInvalidPosition) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleAssignSlot -> h.svc.AssignSlot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, slot)
}

// HandleUnassignSlot godoc
// @Summary      Remove one slot from the roster
// @Tags         current-game
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Router       /current-game/{slotID} [delete]
// @Security BearerAuth
func (h *CurrentGameHandler) HandleUnassignSlot(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("slotID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid slot ID: %w", err)))
		return
	}

	if err := h.svc.UnassignSlot(ctx.Request.Context(), user.Email, uint(id)); err != nil {
		err = fmt.Errorf("v1.HandleUnassignSlot -> h.svc.UnassignSlot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleClearSlots godoc
// @Summary      Clear the roster
// @Tags         current-game
// @Produce      json
// @Success      204
// @Failure      401  {object}  response.Err
// @Router       /current-game [delete]
// @Security BearerAuth
func (h *CurrentGameHandler) HandleClearSlots(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.ClearSlots(ctx.Request.Context(), user.Email); err != nil {
		err = fmt.Errorf("v1.HandleClearSlots -> h.svc.ClearSlots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
