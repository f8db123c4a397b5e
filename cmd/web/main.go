package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seanharvey/people-starter/internal/config"
	"github.com/seanharvey/people-starter/internal/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// 1. Load configuration.
	cfg := config.MustLoad()
	log.Printf("config: env=%s web=%s api=%s", cfg.Env, cfg.Web.Addr, cfg.Web.APIBaseURL)

	// 2. Build the web app.
	app, err := web.New(cfg)
	if err != nil {
		log.Fatalf("failed to create web app: %v", err)
	}

	// 3. Start the dev asset watcher (no-op outside dev mode).
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	go func() {
		if err := app.Watch(watchCtx); err != nil {
			log.Printf("asset watcher stopped: %v", err)
		}
	}()

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:         cfg.Web.Addr,
		Handler:      app.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // the live reload websocket stays open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("web app listening on %s", cfg.Web.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}

	log.Println("web app stopped")
}
