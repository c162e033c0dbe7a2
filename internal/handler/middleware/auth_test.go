//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"citas-unidades/internal/handler/middleware"
	"citas-unidades/internal/pkg/jwt"
	"citas-unidades/internal/usecase"
	"citas-unidades/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRaw(router *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newAuthRouter(t *testing.T, jwtService *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	router := gin.New()
	router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID.String()})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	jwtService := jwt.NewService("test-signing-key", time.Hour)

	t.Run("success: valid bearer token passes and exposes the session", func(t *testing.T) {
		sessionID := uuid.New()
		token, err := jwtService.GenerateToken(sessionID)
		require.NoError(t, err)

		router := newAuthRouter(t, jwtService)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, sessionID.String(), body["session_id"])
	})

	t.Run("error: missing authorization header", func(t *testing.T) {
		router := newAuthRouter(t, jwtService)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("error: header without bearer scheme", func(t *testing.T) {
		router := newAuthRouter(t, jwtService)
		req, err := http.NewRequest(http.MethodGet, "/protected", nil)
		require.NoError(t, err)
		token, err := jwtService.GenerateToken(uuid.New())
		require.NoError(t, err)
		req.Header.Set("Authorization", token)

		rec := performRaw(router, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("error: garbage token", func(t *testing.T) {
		router := newAuthRouter(t, jwtService)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("error: token signed with another key", func(t *testing.T) {
		otherService := jwt.NewService("other-signing-key", time.Hour)
		token, err := otherService.GenerateToken(uuid.New())
		require.NoError(t, err)

		router := newAuthRouter(t, jwtService)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("error: expired token", func(t *testing.T) {
		expiredService := jwt.NewService("test-signing-key", -time.Minute)
		token, err := expiredService.GenerateToken(uuid.New())
		require.NoError(t, err)

		router := newAuthRouter(t, jwtService)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})
}

func TestGetSessionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unset context reports absence", func(t *testing.T) {
		c := &gin.Context{}
		id, ok := middleware.GetSessionID(c)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})
}
