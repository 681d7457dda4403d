package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamheroes/stream-heroes-api/internal/api/handler/v1/response"
	"github.com/streamheroes/stream-heroes-api/internal/api/middleware"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

const dateLayout = "2006-01-02"

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the authenticated user once per request
// from the id the JWT middleware stored on the context. The user's
// email is the actor that scopes every record.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing authentication"))
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid authentication"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(fmt.Errorf("unknown user %v", userID))
	}

	return user, nil
}

// parseDateRange reads start/end query params (YYYY-MM-DD). The end
// date is inclusive: the range runs to the end of that day.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, *response.Err) {
	startParam := ctx.Query("start")
	endParam := ctx.Query("end")
	if startParam == "" || endParam == "" {
		return time.Time{}, time.Time{}, response.ErrBadRequest(errors.New("start and end query parameters are required"))
	}

	start, err := time.Parse(dateLayout, startParam)
	if err != nil {
		return time.Time{}, time.Time{}, response.ErrBadRequest(fmt.Errorf("invalid start date: %v", err))
	}

	end, err := time.Parse(dateLayout, endParam)
	if err != nil {
		return time.Time{}, time.Time{}, response.ErrBadRequest(fmt.Errorf("invalid end date: %v", err))
	}

	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
