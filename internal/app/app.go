package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/schemehub/schemehub/internal/ai"
	"github.com/schemehub/schemehub/internal/auth"
	"github.com/schemehub/schemehub/internal/bookmarks"
	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/chatbot"
	"github.com/schemehub/schemehub/internal/config"
	"github.com/schemehub/schemehub/internal/httpserver"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
	"github.com/schemehub/schemehub/internal/redis"
	"github.com/schemehub/schemehub/internal/scheduler"
	redisstore "github.com/schemehub/schemehub/internal/store/redis"
	"github.com/schemehub/schemehub/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Catalog
	reloader    *scheduler.CatalogReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Persistence over Redis
	store := redisstore.NewStore(redisClient)
	bookmarkSvc := bookmarks.NewService(store)

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		loggerClient.Errorf("Failed to configure token issuer: %v", err)
		os.Exit(1)
	}

	// Scheme catalog with periodic + manual reload
	cat := catalog.New()
	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewCatalogReloader(
		cfg.SchemeFile,
		cat,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Chatbot: catalog matching always works; the model rewrite is optional
	// and strictly best effort.
	var model chatbot.Answerer
	if cfg.GeminiAPIKey != "" {
		gemini, gerr := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ChatTimeout)
		if gerr != nil {
			loggerClient.Warn("gemini client unavailable, chatbot will answer from raw catalog context",
				logger.Error(gerr))
		} else {
			model = gemini
			loggerClient.Info("gemini model enabled for chatbot",
				logger.String("model", cfg.GeminiModel))
		}
	} else {
		loggerClient.Info("no gemini api key configured, chatbot answers from raw catalog context")
	}
	bot := chatbot.NewResponder(cat, model, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,

		DefaultLang: cfg.DefaultLang,

		Catalog:       cat,
		ReloadTrigger: reloadTrigger,
		Chatbot:       bot,

		Users:     store,
		Bookmarks: bookmarkSvc,
		Tokens:    tokens,

		RedisClient: redisClient,

		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     cat,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting SchemeHub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("SchemeHub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the catalog and start periodic refresh. A failed initial load is
	// logged inside Start; the server still comes up and answers 503 on
	// scheme routes until a reload succeeds.
	a.reloader.Start(ctx)
	a.logger.Info("catalog reloader started",
		logger.String("file", a.cfg.SchemeFile),
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ SchemeHub stopped cleanly")
	return nil
}
