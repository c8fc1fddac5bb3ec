package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/conf"
	"ggplay-backend/controller"
	"ggplay-backend/database"
	"ggplay-backend/model/dao"
	"ggplay-backend/service/auth_service"
	"ggplay-backend/service/build_service"
	"ggplay-backend/service/metaverse_service"
	"ggplay-backend/service/project_service"
	"ggplay-backend/service/subscription_service"
	"ggplay-backend/service/upload_service"
	"ggplay-backend/storage"
)

var ENV string

func init() {
	flag.StringVar(&ENV, "env", "loc", "Environment: loc/dev/prod")
}

// @title           gg.play Builder API
// @version         1.0
// @description     Backend for the gg.play metaverse builder: accounts, instances, builds, subscriptions and asset uploads.

// @host      localhost:5000
// @BasePath  /api/v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	// Initialize all components
	tracker, srv, cleanup := initAll()
	defer cleanup()

	// Start HTTP API service (in goroutine)
	go startServer(srv)
	log.Println("Builder API service started successfully")

	// Wait for shutdown signal
	waitForShutdown()

	log.Println("Shutting down builder service...")

	// Stop usage tracking loops
	tracker.StopAll()

	// Gracefully shutdown HTTP service
	shutdownServer(srv)

	log.Println("Server exited")
}

// initEnv initialize environment
func initEnv() {
	if ENV == "loc" {
		conf.SystemEnvironmentEnum = conf.LocalEnvironmentEnum
	} else if ENV == "dev" {
		conf.SystemEnvironmentEnum = conf.DevEnvironmentEnum
	} else if ENV == "prod" {
		conf.SystemEnvironmentEnum = conf.ProdEnvironmentEnum
	}
	fmt.Printf("Environment: %s\n", ENV)
}

// initAll initialize all components
func initAll() (*metaverse_service.UsageTracker, *http.Server, func()) {
	// Parse command line parameters
	flag.Parse()

	// Set environment
	initEnv()

	// Initialize configuration
	if err := conf.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	log.Printf("Configuration loaded: env=%s, port=%s", ENV, conf.Cfg.Port)

	// Initialize database
	dbConfig := &database.MySQLConfig{
		DSN:          conf.Cfg.Database.Dsn,
		MaxOpenConns: conf.Cfg.Database.MaxOpenConns,
		MaxIdleConns: conf.Cfg.Database.MaxIdleConns,
	}
	if err := database.InitDatabase(dbConfig); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (optional, won't fail if disabled or unavailable)
	if err := database.InitRedis(); err != nil {
		log.Printf("Redis initialization failed (cache will be disabled): %v", err)
	}

	// Initialize storage
	stor, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Printf("Storage initialized: type=%s", conf.Cfg.Storage.Type)

	// Seed demo data if enabled
	if conf.Cfg.Demo.Seed {
		if err := database.SeedDemoData(); err != nil {
			log.Printf("Failed to seed demo data: %v", err)
		}
	}

	// Create services
	sched := common.NewRealScheduler()

	metaverseDAO := dao.NewMetaverseDAO()
	tracker := metaverse_service.NewUsageTracker(metaverseDAO, sched,
		time.Duration(conf.Cfg.Usage.TickSeconds)*time.Second)
	lifecycle := metaverse_service.NewLifecycleService(metaverseDAO, tracker, sched,
		metaverse_service.LifecycleOptions{
			StartDelay:       time.Duration(conf.Cfg.Lifecycle.StartDelayMs) * time.Millisecond,
			StopDelay:        time.Duration(conf.Cfg.Lifecycle.StopDelayMs) * time.Millisecond,
			RestartStepDelay: time.Duration(conf.Cfg.Lifecycle.RestartStepDelayMs) * time.Millisecond,
			ErrorRate:        conf.Cfg.Lifecycle.ErrorRate,
		})

	buildService := build_service.NewBuildService(dao.NewProjectDAO(), dao.NewBuildJobDAO(), sched,
		build_service.BuildOptions{
			ProcessingDelay: time.Duration(conf.Cfg.Build.ProcessingDelayMs) * time.Millisecond,
			DoneDelay:       time.Duration(conf.Cfg.Build.DoneDelayMs) * time.Millisecond,
		})

	tokenService := auth_service.NewTokenService(conf.Cfg.Auth.JwtSecret,
		time.Duration(conf.Cfg.Auth.TokenTTLHours)*time.Hour)
	authService := auth_service.NewAuthService(dao.NewUserDAO(), tokenService)

	services := controller.Services{
		Tokens:        tokenService,
		Auth:          authService,
		Lifecycle:     lifecycle,
		Builds:        buildService,
		Subscriptions: subscription_service.NewSubscriptionService(dao.NewSubscriptionDAO()),
		Projects:      project_service.NewProjectService(dao.NewProjectDAO()),
		Uploads:       upload_service.NewUploadService(dao.NewAssetDAO(), stor, conf.Cfg.Upload.MaxFileSize),
	}

	// Setup builder API router
	router := controller.SetupRouter(stor, services)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + conf.Cfg.Port,
		Handler: router,
	}

	// Return tracker instance and cleanup function
	cleanup := func() {
		if err := database.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
		if err := database.CloseRedis(); err != nil {
			log.Printf("Failed to close Redis: %v", err)
		}
	}

	return tracker, srv, cleanup
}

// startServer start HTTP server
func startServer(srv *http.Server) {
	log.Printf("Builder API service starting on port %s...", conf.Cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// waitForShutdown wait for shutdown signal
func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}

// shutdownServer gracefully shutdown server
func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
