package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"document-parser/internal/config"
	"document-parser/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	cfg := container.GetConfig()
	appLogger := container.GetLogger()

	// Handlers
	homeHandler := handler.NewHomeHandler()
	documentHandler := handler.NewDocumentHandler(
		container.GetDocumentService(),
		appLogger,
	)
	middleware := handler.NewMiddleware(appLogger, cfg.GetRequestTimeout())

	// Router
	router := handler.NewRouter(
		homeHandler,
		documentHandler,
		middleware,
		cfg.GetCORSAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		appLogger.Info("Server listening",
			"address", server.Addr,
			"extractor", container.Extractor.Name(),
			"request_timeout", cfg.GetRequestTimeout().String(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	appLogger.Info("Server exited")
}
