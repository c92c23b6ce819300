package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtally/internal/config"
)

func signToken(t *testing.T, secret, issuer, businessID string, expiry time.Duration) string {
	t.Helper()
	claims := AccessClaims{
		BusinessID: businessID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authTestRouter(cfg *config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) {
		businessID, err := GetBusinessID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"business_id": businessID})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "taxtally"}
	r := authTestRouter(cfg)

	businessID := uuid.New()
	token := signToken(t, cfg.Secret, cfg.Issuer, businessID.String(), time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), businessID.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret"}
	r := authTestRouter(cfg)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "taxtally"}
	r := authTestRouter(cfg)

	token := signToken(t, cfg.Secret, cfg.Issuer, uuid.New().String(), -time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "taxtally"}
	r := authTestRouter(cfg)

	token := signToken(t, "other-secret", cfg.Issuer, uuid.New().String(), time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingBusinessClaim(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "taxtally"}
	r := authTestRouter(cfg)

	token := signToken(t, cfg.Secret, cfg.Issuer, "", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
