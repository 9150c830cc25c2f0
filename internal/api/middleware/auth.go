package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/config"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "user_id"

// Auth validates the bearer token and stores the acting user's id in the
// request context. The auth provider issues HMAC-signed tokens whose `sub`
// claim is the user's UUID; this layer never holds any further session
// state; handlers pass the id explicitly into every service call.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromRequest(c, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(UserIDKey, userID)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by Auth
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// ParseUserToken validates a raw token string and extracts the user id.
// Exposed for the websocket endpoint, which receives the token as a query
// parameter because browsers cannot set headers on websocket upgrades.
func ParseUserToken(raw, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidBearerToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, apperrors.ErrInvalidBearerToken
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidBearerToken
	}
	return userID, nil
}

func userIDFromRequest(c *gin.Context, secret string) (uuid.UUID, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return uuid.Nil, apperrors.ErrMissingBearerToken
	}
	return ParseUserToken(strings.TrimPrefix(header, "Bearer "), secret)
}
