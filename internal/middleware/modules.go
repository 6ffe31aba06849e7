package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/modules"
	"github.com/gin-gonic/gin"
)

// RequireModule answers 404 for every route of a disabled module.
func RequireModule(registry *modules.Registry, id modules.ID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !registry.IsEnabled(id) {
			GetLoggerFromCtx(c.Request.Context()).Debug("Module disabled", slog.String("module", string(id)))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.Next()
	}
}
