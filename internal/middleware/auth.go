package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"estatehub/internal/domain"
	"estatehub/internal/pkg/jwt"
	"estatehub/internal/pkg/response"
	"estatehub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxUser   = "user"
)

// JWTAuth validates the bearer token and stores user_id and role in the context.
// Browsers cannot set headers on websocket handshakes, so upgrades may pass
// the token as ?token= instead.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" && websocket.IsWebSocketUpgrade(c.Request) {
			if token := c.Query("token"); token != "" {
				authHeader = "Bearer " + token
			}
		}
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ActiveUser loads the authenticated user and rejects blocked accounts.
// The role from the database replaces the one in the token, so a demotion
// takes effect without waiting for the token to expire.
func ActiveUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(ctxUserID)
		if userID == 0 {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && user == nil) {
			response.Abort(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		if err != nil {
			response.Internal(c, err, "Failed to load user")
			c.Abort()
			return
		}
		if user.IsBlocked {
			response.Abort(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "Your account has been blocked")
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxRole, string(user.Role))
		c.Next()
	}
}

// CurrentUser returns the user stored by ActiveUser, if any.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
