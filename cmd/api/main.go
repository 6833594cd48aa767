package main

import (
	"log"

	"robloxscout/internal/config"
	"robloxscout/internal/handler"
	"robloxscout/internal/middleware"
	"robloxscout/internal/notify"
	"robloxscout/internal/roblox"

	_ "robloxscout/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title        Roblox Scout API
// @version      1.0
// @description  Looks up a Roblox profile, extracts social handles and URLs from the bio, and forwards a summary to a webhook.
// @BasePath     /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load(logger)

	client := roblox.NewClient(cfg.RobloxCookie, cfg.ConnectionsTimeout, logger)
	webhook := notify.NewWebhook(cfg.WebhookURL, logger)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	healthHandler := handler.NewHealthHandler()
	lookupHandler := handler.NewLookupHandler(client, webhook, logger)

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api").Use(middleware.RateLimit())
	{
		api.GET("/lookup", lookupHandler.Lookup)
		api.POST("/lookup", lookupHandler.Lookup)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
