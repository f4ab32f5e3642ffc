package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/auth"
	"github.com/JuanDavidBarr/TalentoPlus/internal/config"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"
	"github.com/JuanDavidBarr/TalentoPlus/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		Issuer:          "TalentoPlusAPI",
		Audience:        "TalentoPlusClients",
		ExpirationHours: 24,
	}
}

func protectedRouter(cfg config.JWTConfig) (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var seenID uint
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		seenID = c.GetUint("employee_id")
		c.Status(http.StatusOK)
	})
	return r, &seenID
}

func issueTestToken(t *testing.T, cfg config.JWTConfig) string {
	t.Helper()
	issuer := auth.NewTokenIssuer(cfg)
	token, _, err := issuer.Issue(&employee.Employee{
		ID:             42,
		FirstName:      "Laura",
		LastName:       "Gomez",
		DocumentNumber: "1020304050",
		Email:          "laura.gomez@example.com",
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()

	t.Run("valid bearer token passes and exposes the employee id", func(t *testing.T) {
		r, seenID := protectedRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, cfg))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), *seenID)
	})

	t.Run("token from cookie also works", func(t *testing.T) {
		r, seenID := protectedRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: issueTestToken(t, cfg)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), *seenID)
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := protectedRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		otherCfg := cfg
		otherCfg.Secret = "a-completely-different-secret-key!!"
		r, _ := protectedRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, otherCfg))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong audience", func(t *testing.T) {
		otherCfg := cfg
		otherCfg.Audience = "SomeOtherClients"
		r, _ := protectedRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, otherCfg))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token reports the expiry", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "42",
			"iss": cfg.Issuer,
			"aud": cfg.Audience,
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(-1 * time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, err)

		r, _ := protectedRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})
}
