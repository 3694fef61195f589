package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports connectivity of a best-effort backend.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// Health reports process liveness plus redis connectivity. Redis being
// down degrades the unread badge, not the API, so the status stays ok.
func Health(cache HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"redis":  cache.Healthy(c.Request.Context()),
		})
	}
}
