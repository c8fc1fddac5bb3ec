package controller

import (
	"time"

	"ggplay-backend/conf"
	"ggplay-backend/controller/handler"
	"ggplay-backend/controller/respond"
	"ggplay-backend/docs"
	"ggplay-backend/service/auth_service"
	"ggplay-backend/service/build_service"
	"ggplay-backend/service/metaverse_service"
	"ggplay-backend/service/project_service"
	"ggplay-backend/service/subscription_service"
	"ggplay-backend/service/upload_service"
	"ggplay-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

// Services service instances the router wires handlers onto
type Services struct {
	Tokens        *auth_service.TokenService
	Auth          *auth_service.AuthService
	Lifecycle     *metaverse_service.LifecycleService
	Builds        *build_service.BuildService
	Subscriptions *subscription_service.SubscriptionService
	Projects      *project_service.ProjectService
	Uploads       *upload_service.UploadService
}

// SetupRouter setup builder API router
func SetupRouter(stor storage.Storage, services Services) *gin.Engine {
	// Set Swagger host from config
	docs.SwaggerInfo.Host = conf.Cfg.SwaggerBaseUrl

	// Create Gin engine
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins, can be configured to specific domains
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * 3600, // 12 hours
	}))

	// Add timing middleware
	r.Use(respond.TimingMiddleware())

	// Create handlers
	authHandler := handler.NewAuthHandler(services.Auth)
	metaverseHandler := handler.NewMetaverseHandler(services.Lifecycle)
	buildHandler := handler.NewBuildHandler(services.Builds)
	subscriptionHandler := handler.NewSubscriptionHandler(services.Subscriptions)
	projectHandler := handler.NewProjectHandler(services.Projects)
	uploadHandler := handler.NewUploadHandler(services.Uploads)

	authRequired := handler.AuthMiddleware(services.Tokens)

	// Per-IP limits on the expensive public routes, 60 uploads and 30
	// builds per five minutes
	uploadLimiter := respond.RateLimitMiddleware(rate.Every(5*time.Minute/60), 60)
	buildLimiter := respond.RateLimitMiddleware(rate.Every(5*time.Minute/30), 30)

	// API v1 route group
	v1 := r.Group("/api/v1")
	{
		// Account routes
		auth := v1.Group("/auth")
		{
			// Register account
			auth.POST("/signup", authHandler.Signup)

			// Log in
			auth.POST("/login", authHandler.Login)

			// Current user profile
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// Instance lifecycle routes
		metaverses := v1.Group("/metaverses", authRequired)
		{
			// Create instance
			metaverses.POST("", metaverseHandler.Create)

			// List instances
			metaverses.GET("", metaverseHandler.List)

			// Get instance
			metaverses.GET("/:id", metaverseHandler.Get)

			// Lifecycle transitions
			metaverses.POST("/start/:id", metaverseHandler.Start)
			metaverses.POST("/stop/:id", metaverseHandler.Stop)
			metaverses.POST("/restart/:id", metaverseHandler.Restart)

			// Delete instance
			metaverses.DELETE("/delete/:id", metaverseHandler.Delete)
		}

		// Build pipeline routes
		build := v1.Group("/build", buildLimiter)
		{
			// Queue build
			build.POST("", buildHandler.Create)

			// Poll build status
			build.GET("/:id", buildHandler.Get)
		}

		// Subscription routes
		subscription := v1.Group("/subscription", authRequired)
		{
			// Current subscription
			subscription.GET("", subscriptionHandler.Get)

			// Top up hours
			subscription.POST("/buy-hours", subscriptionHandler.BuyHours)

			// Change plan
			subscription.POST("/upgrade", subscriptionHandler.Upgrade)
		}

		// Project routes
		v1.POST("/project", projectHandler.Upsert)

		// Asset routes
		v1.POST("/upload/:kind", uploadLimiter, uploadHandler.Upload)
		v1.GET("/assets/:id", uploadHandler.GetAsset)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "builder",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Serve uploaded files directly when backed by local storage
	if local, ok := stor.(*storage.LocalStorage); ok {
		r.Static("/uploads", local.BasePath())
	}

	return r
}
