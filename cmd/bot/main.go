package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thesaurusrex/internal/config"
	"thesaurusrex/internal/dictionary"
	"thesaurusrex/internal/handler"
	"thesaurusrex/internal/service"
	"thesaurusrex/internal/storage"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	connectAttempts    = 30
	compactionInterval = 24 * time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Thesaurus Rex bot")

	if err := cfg.ValidateBot(); err != nil {
		logger.Fatal("Invalid bot configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	store, err := storage.Open(cfg, connectAttempts, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	// Initialize lookup
	var lookup dictionary.Lookuper = dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	if cfg.Dictionary.CacheSize > 0 {
		lookup = dictionary.NewCachedLookuper(lookup, cfg.Dictionary.CacheSize, cfg.Dictionary.CacheTTL)
	}

	// Initialize services
	authService := service.NewAuthService(store.KV, cfg.BotPassword)
	prefsService := service.NewPreferencesService(store.KV, logger)
	bookmarkService := service.NewBookmarkService(store.KV, logger)
	maintenanceService := service.NewMaintenanceService(store.KV, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, authService, prefsService, bookmarkService, lookup, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if maintenanceService.Supported() {
		go runCompactionJob(ctx, maintenanceService, logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown: stop updates, then let queued writes land
	bot.Stop()
	cancel()
	h.Close()

	logger.Info("Bot stopped gracefully")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl
	return zapCfg.Build()
}

// runCompactionJob compacts the store at startup and then periodically
func runCompactionJob(ctx context.Context, maintenanceService *service.MaintenanceService, logger *zap.Logger) {
	if err := maintenanceService.Compact(ctx); err != nil {
		logger.Error("Failed to run initial compaction", zap.Error(err))
	}

	ticker := time.NewTicker(compactionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Compaction job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled compaction")
			if err := maintenanceService.Compact(ctx); err != nil {
				logger.Error("Failed to run scheduled compaction", zap.Error(err))
			}
		}
	}
}
