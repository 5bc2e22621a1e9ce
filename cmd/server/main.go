package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/agent"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/analytics"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/api"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/cache"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/classifier"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/donation"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/faq"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env before the config layer reads the environment
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize analytics sink
	var sink analytics.Sink
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory analytics sink")
		sink = analytics.NewMemorySink()
	} else {
		logger.Info("Using PostgreSQL analytics sink")
		sink, err = analytics.NewPostgresSink(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to initialize analytics sink", zap.Error(err))
		}
	}
	defer sink.Close()

	// Initialize response cache
	responseCache, err := cache.NewRistrettoCache(cache.RistrettoConfig{
		NumCounters: cfg.Cache.NumCounters,
		MaxCost:     cfg.Cache.MaxCost,
	})
	if err != nil {
		logger.Fatal("Failed to initialize response cache", zap.Error(err))
	}
	defer responseCache.Close()

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// Initialize model client
	client := llm.NewOpenAIClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
		logger,
	)

	// Content store and collaborators
	verseStore := scripture.NewStore(cfg.Content.VersesPath, logger)
	recommender := scripture.NewRecommender(verseStore, client, responseCache, ttl, logger)
	faqLookup := faq.NewStaticLookup(cfg.Content.FAQsPath, 0.6, logger)

	// Pipeline components
	pipeline := agent.NewPipeline(
		classifier.NewEscalationClassifier(client, responseCache, ttl, logger),
		classifier.NewIntentClassifier(),
		classifier.NewPrayerRouter(client, logger),
		faqLookup,
		agent.NewFAQEnhancer(client, responseCache, ttl, logger),
		agent.NewToneNormalizer(client, responseCache, verseStore, ttl,
			cfg.Pipeline.RetryAttempts,
			time.Duration(cfg.Pipeline.RetryBaseDelay)*time.Second,
			logger),
		agent.NewTranslator(client, logger),
		recommender,
		cfg.Pipeline.PivotLanguage,
		logger,
	)

	donations := donation.NewService(client, verseStore, cfg.Content.ImpactStoriesPath, logger)

	handler := api.NewHandler(pipeline, donations, sink, logger)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting gracefully")
}
