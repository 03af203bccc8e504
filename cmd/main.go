package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/invest-ledger/internal/config"
	"github.com/sbilibin2017/invest-ledger/internal/dashboard"
	"github.com/sbilibin2017/invest-ledger/internal/handlers"
	"github.com/sbilibin2017/invest-ledger/internal/jwt"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/middlewares"
	"github.com/sbilibin2017/invest-ledger/internal/repositories"
	"github.com/sbilibin2017/invest-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "invest-ledger"

// @title invest-ledger API
// @version 1.0.0
// @description Account ledger and live dashboard of the investment platform
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting %s version %s, commit %s, build %s\n", serviceName, buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routerDeps are the collaborators the HTTP routes are served by.
type routerDeps struct {
	registerer handlers.Registerer
	loginer    handlers.Loginer
	depositor  handlers.DepositWriter
	withdrawer handlers.WithdrawWriter
	claimer    handlers.ProfitClaimer
	accounts   handlers.AccountReader
	holds      handlers.DepositHolder
	audit      handlers.AuditReader
	feed       dashboard.AccountSubscriber
	tokener    middlewares.Tokener
}

// newRouter mounts every route of the service.
func newRouter(cfg *config.Config, deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	upgrader := handlers.NewUpgrader(cfg.AllowedOrigins)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(deps.registerer))
		r.Post("/login", handlers.NewLoginHandler(deps.loginer))
		r.Get("/wallet/methods", handlers.NewPaymentMethodsHandler(cfg.AgentNumbers))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(deps.tokener))

			r.Post("/wallet/deposit", handlers.NewDepositHandler(deps.depositor))
			r.Post("/wallet/deposit/holds", handlers.NewCreateDepositHoldHandler(deps.holds))
			r.Post("/wallet/deposit/holds/{id}/confirm", handlers.NewConfirmDepositHoldHandler(deps.holds))
			r.Delete("/wallet/deposit/holds/{id}", handlers.NewCancelDepositHoldHandler(deps.holds))
			r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(deps.withdrawer))
			r.Post("/wallet/claim", handlers.NewClaimHandler(deps.claimer))
			r.Get("/wallet/requests", handlers.NewRequestsHandler(deps.audit))

			r.Get("/dashboard", handlers.NewDashboardHandler(deps.accounts))
			r.Get("/dashboard/stream", handlers.NewDashboardStreamHandler(deps.feed, upgrader))

			r.Get("/history/deposits", handlers.NewDepositHistoryHandler(deps.accounts))
			r.Get("/history/withdrawals", handlers.NewWithdrawHistoryHandler(deps.accounts))
			r.Get("/history/recent", handlers.NewRecentActivityHandler(deps.accounts))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for the withdraw approval workflow
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	loc, err := time.LoadLocation(cfg.LedgerTimezone)
	if err != nil {
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	feedRepo := repositories.NewAccountFeedRepository(rdb, accountRepo)
	holdRepo := repositories.NewDepositHoldRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	ledgerService := services.NewLedgerService(accountRepo, feedRepo, kafkaWriter,
		services.WithLocation(loc),
		services.WithMaxAttempts(cfg.LedgerMaxAttempts),
	)
	holdService := services.NewDepositHoldService(holdRepo, ledgerService, cfg.DepositHold)

	r := newRouter(cfg, routerDeps{
		registerer: authService,
		loginer:    authService,
		depositor:  ledgerService,
		withdrawer: ledgerService,
		claimer:    ledgerService,
		accounts:   ledgerService,
		holds:      holdService,
		audit:      auditRepo,
		feed:       feedRepo,
		tokener:    tokens,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
