package bikeflow

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var server *http.Server

// StartServer exposes the renderer-facing API. The renderer polls
// GET /api/frame once per display frame and posts control changes; every
// control change runs the full derivation chain before the next frame.
func StartServer(app *App) {
	r := chi.NewRouter()
	origins := app.Cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", app.handleHealth)
	r.Get("/api/frame", app.handleFrame)
	r.Get("/api/stations", app.handleStations)
	r.Post("/api/controls", app.handleControls)
	r.Post("/api/select", app.handleSelect)
	r.Post("/api/back", app.handleBack)
	r.Post("/api/rotate", app.handleRotate)
	r.Post("/api/pin", app.handlePin)
	r.Post("/api/release", app.handleRelease)

	addr := fmt.Sprintf(":%d", app.Cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the
// server with a timeout.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
