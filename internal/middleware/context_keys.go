package middleware

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and userRoleKey store the authenticated caller in the request context.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the authenticated user's role.
// Tokens without a role claim are treated as viewers.
func GetUserRoleFromContext(c *gin.Context) domain.Role {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return domain.RoleViewer
	}
	return role
}
