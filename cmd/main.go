package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/oralvis/oralvis-server/docs"
	"github.com/oralvis/oralvis-server/internal/database"
	"github.com/oralvis/oralvis-server/internal/handlers"
	"github.com/oralvis/oralvis-server/internal/jwt"
	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/middlewares"
	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/repositories"
	"github.com/oralvis/oralvis-server/internal/services"
	"github.com/oralvis/oralvis-server/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title OralVis API
// @version 1.0.0
// @description Clinical scan workflow service: technicians upload dental scan images, dentists review and delete them
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, object storage, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string, minioUseSSL bool,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "oralvis")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Object storage config
	minioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	minioBucket = getEnv("MINIO_BUCKET", "oralvis")
	if minioUseSSL, err = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, object storage, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string, minioUseSSL bool,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "err", err)
		return err
	}

	// Create schema and seed accounts on first boot
	if err := database.EnsureMigrated(ctx, db); err != nil {
		logger.Log.Errorw("database migration failed", "err", err)
		return err
	}

	// Connect to object storage
	store, err := storage.NewMinIO(storage.Config{
		Endpoint:  minioEndpoint,
		AccessKey: minioAccessKey,
		SecretKey: minioSecretKey,
		Bucket:    minioBucket,
		UseSSL:    minioUseSSL,
	})
	if err != nil {
		logger.Log.Errorw("object storage connection error", "err", err)
		return err
	}

	// Initialize JWT service
	tokenTTL := time.Duration(jwtExpSecond) * time.Second
	tokener := jwt.New(jwtSecretKey, tokenTTL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	scanReadRepo := repositories.NewScanReadRepository(db)
	scanWriteRepo := repositories.NewScanWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, tokener)
	scanService := services.NewScanService(scanWriteRepo, scanReadRepo, store)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService, tokenTTL)
	verifyHandler := handlers.NewVerifyHandler()
	logoutHandler := handlers.NewLogoutHandler()
	uploadHandler := handlers.NewUploadHandler(scanService)
	scansHandler := handlers.NewScansHandler(scanService)
	deleteScanHandler := handlers.NewDeleteScanHandler(scanService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", loginHandler)

		// Any authenticated account
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Get("/verify", verifyHandler)
			r.Post("/logout", logoutHandler)
		})

		// Technician routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener, models.RoleTechnician))
			r.Post("/upload", uploadHandler)
		})

		// Dentist routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener, models.RoleDentist))
			r.Get("/scans", scansHandler)
			r.Delete("/scans/{id}", deleteScanHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
