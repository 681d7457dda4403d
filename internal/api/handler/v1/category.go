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

type CategoryService interface {
	ListCategories(ctx context.Context, actor string) ([]domain.Category, error)
	GetCategory(ctx context.Context, actor string, id uint) (domain.Category, error)
	CreateCategory(ctx context.Context, actor string, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, actor string, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, actor string, id uint) error
}

type CategoryHandler struct {
	svc  CategoryService
	uSvc UserService
}

func NewCategoryHandler(svc CategoryService, uSvc UserService) *CategoryHandler {
	return &CategoryHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListCategories godoc
// @Summary      List the actor's categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	categories, err := h.svc.ListCategories(ctx.Request.Context(), user.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetCategory godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        categoryID  path      int  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  response.Err
// @Router       /categories/{categoryID} [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("categoryID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid category ID: %w", err)))
		return
	}

	category, err := h.svc.GetCategory(ctx.Request.Context(), user.Email, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCategory -> h.svc.GetCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCategoryRequest  true  "Category details"
// @Success      201    {object}  domain.Category
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /categories [post]
// @Security BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCategory(ctx.Request.Context(), user.Email, domain.Category{
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrNegativePrice) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int  true  "Category ID"
// @Param        input  body      request.UpdateCategoryRequest  true  "Category details"
// @Success      200    {object}  domain.Category
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /categories/{categoryID} [put]
// @Security BearerAuth
func (h *CategoryHandler) HandleUpdateCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("categoryID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid category ID: %w", err)))
		return
	}

	var input request.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCategory(ctx.Request.Context(), user.Email, domain.Category{
		ID:    uint(id),
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", id))
			return
		}
		if errors.Is(err, service.ErrNegativePrice) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        categoryID  path      int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /categories/{categoryID} [delete]
// @Security BearerAuth
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("categoryID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid category ID: %w", err)))
		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), user.Email, uint(id)); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
