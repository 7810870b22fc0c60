package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"todoapi/config"
	"todoapi/pkg/logger"
	"todoapi/server"
	"todoapi/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run() error {
	// Load environment
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Println("✓ Configuration loaded and validated")
	cfg.PrintSummary()

	// Route application logs through the rotating file logger
	appLog := logger.New(cfg.Server.LogFile)
	logger.SetDefault(appLog)
	defer appLog.Close()

	// Open the shared users store; the service is useless without it, so
	// any failure here terminates the process.
	users, err := store.OpenUsersStore(filepath.Join(cfg.Database.DataDir, "users.db"))
	if err != nil {
		return fmt.Errorf("failed to initialize users database: %w", err)
	}
	defer users.Close()
	log.Println("✓ Users database connected")

	// Per-user stores are provisioned on demand by the registry
	registry := store.NewRegistry(cfg.Database.DataDir)

	// Create server
	srv, err := server.NewServer(cfg, users, registry)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Printf("Received signal: %v. Shutting down gracefully...", sig)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("✓ Server shutdown complete")
	return nil
}
