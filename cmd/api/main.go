package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/garageops/workshop-api/internal/cache"
	"github.com/garageops/workshop-api/internal/config"
	dbpkg "github.com/garageops/workshop-api/internal/db"
	"github.com/garageops/workshop-api/internal/middleware"
	"github.com/garageops/workshop-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	db := dbpkg.NewDB(cfg)

	cacheClient, err := cache.NewClient(cfg)
	if err != nil {
		// the API works without the lookup cache, just slower
		logrus.WithError(err).Warn("redis unavailable, lookup cache disabled")
		cacheClient = nil
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cacheClient, cfg)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
