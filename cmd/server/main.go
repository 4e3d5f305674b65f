package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "vehicle-rental-backend/internal/api/http"
	"vehicle-rental-backend/internal/agreement"
	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/repository/postgres"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema
	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		cfg.JWT.ResetTokenExpiry,
	)

	firebaseAuth, err := security.InitFirebaseAuth(context.Background(), cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize Firebase auth", "error", err)
		log.Fatalf("Failed to initialize Firebase auth: %v", err)
	}
	if firebaseAuth != nil {
		logger.Info("Firebase auth enabled")
	}

	// Initialize Asset Storage
	assets, err := storage.NewLocalAssetStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize asset storage", "error", err)
		log.Fatalf("Failed to initialize asset storage: %v", err)
	}
	logger.Info("Asset storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Agreement Renderer
	renderer, err := agreement.NewRenderer(agreement.Company{
		Name:    cfg.Company.Name,
		Phone:   cfg.Company.Phone,
		Address: cfg.Company.Address,
		LogoURL: cfg.Company.LogoURL,
	})
	if err != nil {
		logger.Error("Failed to initialize agreement renderer", "error", err)
		log.Fatalf("Failed to initialize agreement renderer: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, assets)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.VehicleRepository, assets, emailSvc, cfg.Email.From)
	dashboardSvc := service.NewDashboardService(store.RentalRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		AuthSvc:      authSvc,
		VehicleSvc:   vehicleSvc,
		RentalSvc:    rentalSvc,
		DashboardSvc: dashboardSvc,
		Renderer:     renderer,
		Assets:       assets,
		Tokens:       tokenManager,
		FirebaseAuth: firebaseAuth,
		MaxBodySize:  cfg.Storage.MaxFileSize * 1024 * 1024,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
