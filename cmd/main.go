// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington-high/activities/internal/handler"
	"github.com/mergington-high/activities/internal/registry"
	"github.com/mergington-high/activities/internal/service"
)

func main() {
	// ── 1. Seed the in-memory registry ───────────────────────────────────
	// State lives for the life of the process; a restart resets it.
	reg := registry.New(registry.DefaultCatalog())
	log.Println("✓ Registry seeded with default catalog")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	svc := service.NewActivityService(reg)

	// ── 3. Build the router ───────────────────────────────────────────────
	staticDir := getEnv("STATIC_DIR", "./web/static")
	r := handler.NewRouter(svc, staticDir)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
