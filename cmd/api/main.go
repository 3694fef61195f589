package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rsetcampus/atspam-api/internal/config"
	dbpkg "github.com/rsetcampus/atspam-api/internal/db"
	"github.com/rsetcampus/atspam-api/internal/handlers"
	"github.com/rsetcampus/atspam-api/internal/metrics"
	"github.com/rsetcampus/atspam-api/internal/middleware"
	"github.com/rsetcampus/atspam-api/internal/notify"
	"github.com/rsetcampus/atspam-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(metrics.GinMiddleware())

	limiter := middleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
	r.Use(limiter.GinMiddleware())

	unreadCache := notify.NewUnreadCache(cfg.RedisAddr)

	r.GET("/health", handlers.Health(unreadCache))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, unreadCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
