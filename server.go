package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hotel_analytics/api"
	"github.com/mmdatafocus/hotel_analytics/config"
	"github.com/mmdatafocus/hotel_analytics/middlewares"
	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/mmdatafocus/hotel_analytics/models/reports"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultPort = "8080"

// dbSnapshotLoader reads through the global connection, which is only set
// once ConnectDatabaseWithRetry succeeds.
type dbSnapshotLoader struct{}

func (dbSnapshotLoader) LoadSnapshot(ctx context.Context, scope models.SnapshotScope) (*models.Snapshot, error) {
	return models.NewSnapshotStore(config.GetDB()).LoadSnapshot(ctx, scope)
}

// appState is flipped by main while the router is already serving.
type appState struct {
	// ready is set once the database is connected and migrated.
	ready   atomic.Bool
	limiter atomic.Pointer[middlewares.RateLimiter]
}

// readinessGate answers 503 for app endpoints until the database is connected
// and migrations have finished or been skipped.
func readinessGate(state *appState) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.URL.Path {
		case "/healthz":
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		case "/metrics":
			c.Next()
			return
		}
		if !state.ready.Load() {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	// production requires an explicit allowlist; everything else allows all
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			cfg.AllowOriginFunc = func(string) bool { return false }
		} else {
			cfg.AllowOrigins = utils.SplitAndTrim(allowedOrigins)
		}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AddAllowMethods("GET", "OPTIONS")
	cfg.AddAllowHeaders("Origin", "Content-Type", "Authorization", middlewares.CorrelationIdHeader)
	cfg.AddExposeHeaders("Content-Length", "Content-Disposition", middlewares.CorrelationIdHeader)
	cfg.AllowCredentials = !cfg.AllowAllOrigins
	return cfg
}

// optionalRateLimit applies the limiter once main has attached one.
func optionalRateLimit(state *appState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl := state.limiter.Load(); rl != nil {
			rl.Handle(c)
			return
		}
		c.Next()
	}
}

// connectRateLimiter attaches a redis-backed limiter, giving up after 30s.
func connectRateLimiter(ctx context.Context, logger *logrus.Logger, state *appState) {
	redisCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	rdb := config.ConnectRedisWithRetry(redisCtx)
	if rdb == nil {
		logger.WithFields(logrus.Fields{"field": "rate_limit"}).Warn("redis not ready; rate limiting disabled")
		return
	}
	state.limiter.Store(middlewares.NewRateLimiterFromEnv(rdb))
}

func newRouter(logger *logrus.Logger, svc api.ReportService, state *appState) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestContextMiddleware())
	r.Use(readinessGate(state))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(cors.New(corsConfig()))

	r.Use(optionalRateLimit(state))
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	api.RegisterReportRoutes(r.Group("/api/reports"), svc, logger)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	state := &appState{}
	engine := reports.NewEngine(dbSnapshotLoader{}, logger)
	r := newRouter(logger, engine, state)

	// Listen before connecting the database; the readiness gate returns 503 meanwhile.
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// Optional rate limiting:
	// - RATE_LIMIT_ENABLED=true
	// - RATE_LIMIT_WINDOW_SECONDS=60
	// - RATE_LIMIT_MAX_REQUESTS=600
	if config.BoolFromEnv("RATE_LIMIT_ENABLED") {
		go connectRateLimiter(sigCtx, logger, state)
	}

	config.ConnectDatabaseWithRetry()

	db := config.GetDB()
	sqlDB := sqlPool(logger, db)
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()
	// AutoMigrate runs DDL; SKIP_MIGRATIONS=true leaves it to a separate job.
	if !config.BoolFromEnv("SKIP_MIGRATIONS") {
		if err := models.MigrateTable(db); err != nil {
			config.LogError(logger, "server.go", "main", "MigrateTable", nil, err)
		}
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}
	state.ready.Store(true)

	logger.WithFields(logrus.Fields{
		"info": "Connection Established",
	}).Info("serving reports on http://localhost:", port, "/api/reports")
	log.Println("Server started successfully")

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}

// sqlPool returns the pool behind db, or nil when gorm cannot expose one.
func sqlPool(logger *logrus.Logger, db *gorm.DB) *sql.DB {
	sqlDB, err := db.DB()
	if err != nil {
		config.LogError(logger, "server.go", "main", "db.DB", nil, err)
		return nil
	}
	return sqlDB
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}
