package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"assetdesk/cmd"
	"assetdesk/internal/container"
	"assetdesk/internal/database"
	"assetdesk/internal/logger"
	"assetdesk/internal/middleware"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	zlog := logger.NewLogger()
	defer zlog.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		zlog.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		zlog.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("Connected to the database")

	app := container.NewAppContainer(db)
	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(zlog))
	router.Use(metrics.Middleware())

	app.LoginHandler.RegisterRoutes(router)

	api := router.Group("/api")
	api.Use(security.JWTMiddleware())
	app.AssetHandler.RegisterRoutes(api)
	app.AssignmentHandler.RegisterRoutes(api)
	app.MoveHandler.RegisterRoutes(api)
	app.LicenseHandler.RegisterRoutes(api)
	app.ConsumableHandler.RegisterRoutes(api)
	app.MaintenanceHandler.RegisterRoutes(api)
	app.CategoryHandler.RegisterRoutes(api)
	app.LocationHandler.RegisterRoutes(api)
	app.SupplierHandler.RegisterRoutes(api)
	app.UserHandler.RegisterRoutes(api)
	app.ReportsHandler.RegisterRoutes(api)
	app.AuditLogHandler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		zlog.Fatal("server terminated", zap.Error(err))
	}
}
