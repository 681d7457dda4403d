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

	"github.com/streamheroes/stream-heroes-api/internal/api/middleware"
	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/service"
)

type stubUserService struct{}

func (s *stubUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	return domain.User{ID: id, Email: "streamer@example.com"}, nil
}

// authAs injects the user id the JWT middleware would have set.
func authAs(userID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, userID)
		ctx.Next()
	}
}

type stubGameSessionService struct {
	recordErr error
	sessions  []domain.GameSession
	groups    []domain.SessionGroup
	gotIDs    []uint
	gotLimit  int
}

func (s *stubGameSessionService) RecordSession(_ context.Context, _ string, donatorIDs []uint) ([]domain.GameSession, error) {
	s.gotIDs = donatorIDs
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	return s.sessions, nil
}

func (s *stubGameSessionService) GetRecentSessions(_ context.Context, _ string, limit int) ([]domain.SessionGroup, error) {
	s.gotLimit = limit
	return s.groups, nil
}

func newGameSessionRouter(svc GameSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewGameSessionHandler(svc, &stubUserService{})

	group := router.Group("/api/v1", authAs(1))
	group.POST("/game-sessions", handler.HandleRecordSession)
	group.GET("/game-sessions/recent", handler.HandleGetRecentSessions)

	return router
}

func TestHandleRecordSession(t *testing.T) {
	t.Run("created on success", func(t *testing.T) {
		svc := &stubGameSessionService{sessions: []domain.GameSession{
			{ID: 1, SessionID: "abc", DonatorID: 1},
			{ID: 2, SessionID: "abc", DonatorID: 2},
		}}
		router := newGameSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game-sessions",
			strings.NewReader(`{"donator_ids":[1,2]}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []uint{1, 2}, svc.gotIDs)
		assert.Contains(t, w.Body.String(), `"session_id":"abc"`)
	})

	t.Run("empty roster is a bad request", func(t *testing.T) {
		router := newGameSessionRouter(&stubGameSessionService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game-sessions",
			strings.NewReader(`{"donator_ids":[]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("a drained participant maps to conflict", func(t *testing.T) {
		svc := &stubGameSessionService{
			recordErr: &service.NoGamesRemainingError{DonatorID: 3, DonatorName: "Carol"},
		}
		router := newGameSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game-sessions",
			strings.NewReader(`{"donator_ids":[1,3]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Carol")
	})

	t.Run("unknown donator maps to not found", func(t *testing.T) {
		svc := &stubGameSessionService{recordErr: service.ErrDonatorNotFound}
		router := newGameSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game-sessions",
			strings.NewReader(`{"donator_ids":[99]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated requests are rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		handler := NewGameSessionHandler(&stubGameSessionService{}, &stubUserService{})
		router.POST("/api/v1/game-sessions", handler.HandleRecordSession)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game-sessions",
			strings.NewReader(`{"donator_ids":[1]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleGetRecentSessions(t *testing.T) {
	t.Run("passes the limit through", func(t *testing.T) {
		svc := &stubGameSessionService{groups: []domain.SessionGroup{{SessionID: "abc"}}}
		router := newGameSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game-sessions/recent?limit=5", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, svc.gotLimit)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		router := newGameSessionRouter(&stubGameSessionService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game-sessions/recent?limit=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
