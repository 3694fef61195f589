package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atspam_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	tokensMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atspam_queue_tokens_minted_total",
			Help: "Queue tokens minted by approvals.",
		},
	)

	notificationsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atspam_notifications_dropped_total",
			Help: "Notification events dropped because the queue was full.",
		},
	)
)

// GinMiddleware counts every handled request.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

func TokenMinted() { tokensMinted.Inc() }

func NotificationDropped() { notificationsDropped.Inc() }
