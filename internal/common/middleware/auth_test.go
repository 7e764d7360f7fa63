package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"second-brain-api/internal/apps/auth/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(tokens service.TokenService, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	guard := RequireAuth(tokens)
	if optional {
		guard = OptionalAuth(tokens)
	}

	router.GET("/protected", guard, func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	token, err := tokens.IssueAccessToken(42)
	require.NoError(t, err)

	router := setupRouter(tokens, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42}`, w.Body.String())
}

func TestRequireAuth_Rejections(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	router := setupRouter(tokens, false)

	otherTokens := service.NewTokenService("other-secret", time.Hour)
	misSigned, err := otherTokens.IssueAccessToken(42)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"no token after scheme", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"mis-signed token", "Bearer " + misSigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	router := setupRouter(tokens, true)

	// anonymous without a token
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())

	// anonymous with an invalid token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer junk")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())

	// authenticated with a valid token
	token, err := tokens.IssueAccessToken(7)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7}`, w.Body.String())
}
