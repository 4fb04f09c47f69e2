package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/newsroom-engine/internal/config"
	"github.com/jwebster45206/newsroom-engine/internal/handlers"
	"github.com/jwebster45206/newsroom-engine/internal/logger"
	"github.com/jwebster45206/newsroom-engine/internal/middleware"
	"github.com/jwebster45206/newsroom-engine/internal/services"
	"github.com/jwebster45206/newsroom-engine/internal/simulator"
	"github.com/jwebster45206/newsroom-engine/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Newsroom Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"model_name", cfg.ModelName)

	llmService := services.NewGeminiService(cfg.GeminiAPIKey, cfg.ModelName, log)

	store := storage.NewRedisHistoryStore(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer storageCancel()
	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established")

	sim := simulator.New(llmService, cfg.ModelName, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, log))
	mux.Handle("/v1/articles/random", handlers.NewRandomArticleHandler(sim, log))
	mux.Handle("/v1/simulate", handlers.NewSimulateHandler(sim, store, log))
	mux.Handle("/v1/reactions", handlers.NewReactionHandler(sim, log))

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     middleware.Logger(mux),
		ReadTimeout: 15 * time.Second,
		// Generation calls can spend the full retry budget, so the
		// write timeout stays generous.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()
	log.Info("Server listening", "addr", server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	if err := store.Close(); err != nil {
		log.Error("Failed to close storage", "error", err)
	}
	log.Info("Server exited")
}
