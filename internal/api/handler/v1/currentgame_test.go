package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/service"
)

type stubCurrentGameService struct {
	slots     []domain.CurrentGameSlot
	assignErr error
	cleared   bool
}

func (s *stubCurrentGameService) ListSlots(_ context.Context, _ string) ([]domain.CurrentGameSlot, error) {
	return s.slots, nil
}

func (s *stubCurrentGameService) AssignSlot(_ context.Context, _ string, donatorID uint, position int) (domain.CurrentGameSlot, error) {
	if s.assignErr != nil {
		return domain.CurrentGameSlot{}, s.assignErr
	}
	return domain.CurrentGameSlot{ID: 1, DonatorID: donatorID, Position: position}, nil
}

func (s *stubCurrentGameService) UnassignSlot(_ context.Context, _ string, _ uint) error {
	return nil
}

func (s *stubCurrentGameService) ClearSlots(_ context.Context, _ string) error {
	s.cleared = true
	return nil
}

func newCurrentGameRouter(svc CurrentGameService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCurrentGameHandler(svc, &stubUserService{})

	group := router.Group("/api/v1", authAs(1))
	group.GET("/current-game", handler.HandleListSlots)
	group.POST("/current-game", handler.HandleAssignSlot)
	group.DELETE("/current-game", handler.HandleClearSlots)
	group.DELETE("/current-game/:slotID", handler.HandleUnassignSlot)

	return router
}

func TestHandleAssignSlot(t *testing.T) {
	t.Run("created on success", func(t *testing.T) {
		router := newCurrentGameRouter(&stubCurrentGameService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/current-game",
			strings.NewReader(`{"donator_id":7,"position":2}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"donator_id":7`)
		assert.Contains(t, w.Body.String(), `"position":2`)
	})

	t.Run("position out of range is a bad request", func(t *testing.T) {
		router := newCurrentGameRouter(&stubCurrentGameService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/current-game",
			strings.NewReader(`{"donator_id":7,"position":5}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown donator maps to not found", func(t *testing.T) {
		router := newCurrentGameRouter(&stubCurrentGameService{assignErr: service.ErrDonatorNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/current-game",
			strings.NewReader(`{"donator_id":99,"position":1}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListSlots(t *testing.T) {
	svc := &stubCurrentGameService{slots: []domain.CurrentGameSlot{
		{ID: 1, DonatorID: 7, Position: 1},
	}}
	router := newCurrentGameRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-game", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"donator_id":7`)
}

func TestHandleClearSlots(t *testing.T) {
	svc := &stubCurrentGameService{}
	router := newCurrentGameRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/current-game", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, svc.cleared)
}

func TestHandleUnassignSlot(t *testing.T) {
	router := newCurrentGameRouter(&stubCurrentGameService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/current-game/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/current-game/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
