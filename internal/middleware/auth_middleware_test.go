package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminasalon/backend/pkg/jwt"
)

func setupRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService, logger), func(c *gin.Context) {
		userCtx, _ := GetUserContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userCtx.UserID, "role": userCtx.Role})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	jwtService := jwt.NewService("access", "refresh", time.Hour, 24*time.Hour)
	router := setupRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_AUTH_HEADER")
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	jwtService := jwt.NewService("access", "refresh", time.Hour, 24*time.Hour)
	router := setupRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewService("access", "refresh", time.Hour, 24*time.Hour)
	router := setupRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expiredService := jwt.NewService("access", "refresh", -time.Minute, 24*time.Hour)
	token, err := expiredService.GenerateAccessToken("user-1", "a@b.c", "admin")
	require.NoError(t, err)

	router := setupRouter(jwt.NewService("access", "refresh", time.Hour, 24*time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewService("access", "refresh", time.Hour, 24*time.Hour)
	refresh, err := jwtService.GenerateRefreshToken("user-1", "a@b.c")
	require.NoError(t, err)

	router := setupRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("access", "refresh", time.Hour, 24*time.Hour)
	token, err := jwtService.GenerateAccessToken("user-1", "owner@luminasalon.example", "admin")
	require.NoError(t, err)

	router := setupRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only",
		func(c *gin.Context) {
			c.Set(UserContextKey, UserContext{UserID: "u1", Role: "viewer"})
		},
		RequireRole("admin"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
