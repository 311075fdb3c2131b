package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/auth"
)

const (
	UserIDKey    = "user_id"
	SessionIDKey = "session_id"
)

type TokenParser interface {
	ParseToken(tokenStr string) (*auth.Claims, error)
}

// SessionChecker reports whether a signed-in session is still live.
type SessionChecker interface {
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

// JWTAuthMiddleware authenticates Bearer tokens. When sessions is non-nil the
// token must also name a live session, so logging out revokes it.
func JWTAuthMiddleware(tokens TokenParser, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}

		if sessions != nil {
			active, err := sessions.SessionActive(c.Request.Context(), claims.SessionID)
			if err != nil {
				log.WithError(err).Error("❌ Failed to check session")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
				return
			}
			if !active {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended, please sign in again"})
				return
			}
		}

		c.Set(UserIDKey, userID)
		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}
