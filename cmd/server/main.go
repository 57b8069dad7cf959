package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/config"
	"github.com/adityawrm/mindbloom-backend/internal/database"
	"github.com/adityawrm/mindbloom-backend/internal/gemini"
	"github.com/adityawrm/mindbloom-backend/internal/handlers"
	"github.com/adityawrm/mindbloom-backend/internal/logger"
	"github.com/adityawrm/mindbloom-backend/internal/middleware"
	"github.com/adityawrm/mindbloom-backend/internal/routes"
	"github.com/adityawrm/mindbloom-backend/internal/services"
	"github.com/adityawrm/mindbloom-backend/internal/settings"
	"github.com/adityawrm/mindbloom-backend/internal/store"
	"github.com/adityawrm/mindbloom-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zlog.Sync()

	var encKey []byte
	if cfg.EncryptionKey != "" {
		encKey, err = utils.ParseEncryptionKey(cfg.EncryptionKey)
		if err != nil {
			zlog.Warn("Invalid ENCRYPTION_KEY, storing API key overrides unencrypted", zap.Error(err))
			encKey = nil
		}
	} else {
		zlog.Warn("ENCRYPTION_KEY not set, storing API key overrides unencrypted")
	}

	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		zlog.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()
	zlog.Info("Connected to Redis")

	kv := store.NewRedisKV(rdb)
	entryStore := store.NewEntryStore(kv, zlog)
	reportStore := store.NewReportStore(kv, zlog)

	settingsMgr := settings.NewManager(kv, encKey, cfg.Gemini.APIKey, zlog)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	settingsMgr.Load(ctx)
	settingsMgr.StartRelay(ctx, settings.NewRedisRelay(rdb, zlog))

	ai := gemini.NewClient(cfg.Gemini, settingsMgr, zlog)

	entrySvc := services.NewEntryService(entryStore, ai, zlog)
	reportSvc := services.NewReportService(reportStore, ai, zlog)
	statsSvc := services.NewStatsService(entryStore, reportStore)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.RateLimit(rdb, cfg.Limiter))

	routes.Setup(r, routes.Handlers{
		Journal:  handlers.NewJournalHandler(entrySvc, ai, zlog),
		Reports:  handlers.NewReportHandler(reportSvc, settingsMgr, zlog),
		Settings: handlers.NewSettingsHandler(settingsMgr, zlog),
		Stats:    handlers.NewStatsHandler(statsSvc),
		Events:   handlers.NewEventsHandler(settingsMgr, zlog),
		Health:   handlers.Health(rdb),
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("Server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}
