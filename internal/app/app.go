package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"portfolio-ai/backend/internal/api"
	"portfolio-ai/backend/internal/config"
	"portfolio-ai/backend/internal/database"
	"portfolio-ai/backend/internal/llm"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/responder"
	"portfolio-ai/backend/internal/service"
	"portfolio-ai/backend/internal/storage"
)

const (
	durableKeyPrefix   = "portfolio:durable:"
	ephemeralKeyPrefix = "portfolio:session:"
	shutdownTimeout    = 10 * time.Second
)

// App holds the wired application and the connections it owns.
// DB and Redis are nil when no backend needs them.
type App struct {
	DB     *sql.DB
	Redis  *redis.Client
	Stores *storage.Stores
	Server *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		serverErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// NewApp opens the configured backends and wires every service and handler.
// A backend that cannot be reached does not fail startup: the storage layer
// falls back to process memory and logs it.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{}

	if cfg.DurableBackend == config.BackendSQLite {
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		app.DB = db
	}

	if cfg.UsesRedis() {
		app.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	var durableSub, ephemeralSub storage.Substrate
	switch cfg.DurableBackend {
	case config.BackendSQLite:
		durableSub = storage.NewSQLiteSubstrate(app.DB)
	case config.BackendRedis:
		durableSub = storage.NewRedisSubstrate(app.Redis, durableKeyPrefix, 0)
	}
	if cfg.EphemeralBackend == config.BackendRedis {
		ephemeralSub = storage.NewRedisSubstrate(app.Redis, ephemeralKeyPrefix, cfg.SessionTTL)
	}

	app.Stores = storage.NewStores(
		storage.NewProvider(ctx, "durable", durableSub, 0),
		storage.NewProvider(ctx, "ephemeral", ephemeralSub, cfg.SessionTTL),
	)

	local := llm.NewLocalProvider(responder.New(nil), cfg.ChatModelName, cfg.ResponseDelay)
	chatProvider := local
	if cfg.ChatProvider == config.ProviderRemote {
		chatProvider = llm.WithRetry(
			llm.NewRemoteProvider(cfg.RemoteChatURL, cfg.RemoteTimeout),
			cfg.RemoteAttempts,
			cfg.RemoteRetryDelay,
		)
		slog.Info("Using remote reply provider", "url", cfg.RemoteChatURL, "attempts", cfg.RemoteAttempts)
	}

	policy := quota.NewPolicy(cfg.MaxGuestMessages, cfg.QuotaWindow)

	authService := service.NewAuthService(app.Stores, policy, bcrypt.DefaultCost)
	if err := authService.EnsureDemoAccount(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to seed demo account: %w", err)
	}

	chatService := service.NewChatService(app.Stores, chatProvider, policy, authService, cfg.MaxMessageLength)
	emailService := service.NewEmailService(app.Stores, authService)

	router := api.NewRouter(api.Handlers{
		Chat:      api.NewChatHandler(chatService, emailService),
		Auth:      api.NewAuthHandler(authService),
		Site:      api.NewSiteHandler(service.NewPreferencesService(app.Stores), service.NewFormService(app.Stores), emailService, app.Stores),
		Reply:     api.NewReplyHandler(local),
		Analytics: api.NewAnalyticsHandler(service.NewAnalyticsService(app.Stores, authService)),
	}, cfg.CORSAllowedOrigins)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return app, nil
}

// Close releases the connections opened by NewApp.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	})))
}

func parseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
