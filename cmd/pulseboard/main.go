package main

import (
	"context"
	"time"

	"pulseboard/internal/analytics"
	"pulseboard/internal/handlers"
	"pulseboard/internal/metrics"
	"pulseboard/internal/scheduler"
	"pulseboard/pkg/auth"
	"pulseboard/pkg/config"
	"pulseboard/pkg/database"
	"pulseboard/pkg/logging"
	"pulseboard/pkg/monitoring"
	"pulseboard/pkg/server"
	"pulseboard/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("pulseboard")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Pulseboard (Social Analytics API)")

	dbURL := config.RequireEnv("DATABASE_URL")
	jwtSecret := config.RequireEnv("JWT_SECRET")

	dbConfig := database.DefaultConfig()
	dbConfig.URL = dbURL
	db := database.MustConnect(dbConfig, logger)
	defer func() { _ = db.Close() }()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("pulseboard", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("pulseboard", version.Version, version.GitCommit)

	healthChecker.AddCheck("postgres", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": dbURL,
		"JWT_SECRET":   jwtSecret,
	}))

	serviceMetrics := metrics.New(metricsCollector)
	engine := analytics.NewEngine(db, logger, serviceMetrics)
	handlers.Init(engine, logger)

	// Background gauge snapshots
	snapshotInterval := time.Duration(config.GetEnvInt("SNAPSHOT_INTERVAL_MINUTES", 5)) * time.Minute
	worker := scheduler.NewSnapshotWorker(engine, serviceMetrics, logger, snapshotInterval)
	snapshotCtx, stopSnapshots := context.WithCancel(context.Background())
	defer stopSnapshots()
	go worker.Start(snapshotCtx)

	// Setup router with unified monitoring
	router := server.SetupServiceRouter(logger, "pulseboard", healthChecker, metricsCollector)

	api := router.Group("/api/v1")
	api.Use(auth.JWTAuthMiddleware([]byte(jwtSecret)))
	{
		api.GET("/analytics/platform-usage", handlers.GetPlatformUsage)
		api.GET("/analytics/user-engagement", handlers.GetUserEngagement)
		api.GET("/analytics/trends", handlers.GetTemporalTrends)
		api.GET("/analytics/users/:user_id/activity", handlers.GetUserActivity)
		api.GET("/analytics/content", handlers.GetContentAnalysis)
		api.GET("/analytics/predictions", handlers.GetPredictions)
		api.GET("/analytics/dashboard", handlers.GetDashboard)
	}

	serverConfig := server.DefaultConfig("pulseboard", "18080")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
