package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taxtally/internal/config"
	"taxtally/internal/domain"
)

const (
	ContextKeyBusinessID = "business_id"
	ContextKeySubject    = "subject"
)

// AccessClaims are the claims carried by access tokens issued by the
// identity service. Tokens are verified here, never minted.
type AccessClaims struct {
	BusinessID string `json:"business_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware returns Gin middleware that validates bearer tokens and
// injects the business scope into the request context.
func AuthMiddleware(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := parseAccessToken(tokenStr, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		businessID, err := uuid.Parse(claims.BusinessID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "token carries no business scope"},
			})
			return
		}

		c.Set(ContextKeyBusinessID, businessID)
		c.Set(ContextKeySubject, claims.Subject)
		c.Next()
	}
}

func parseAccessToken(tokenStr string, cfg *config.JWTConfig) (*AccessClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// GetBusinessID extracts the business ID from the Gin context.
func GetBusinessID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyBusinessID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}
