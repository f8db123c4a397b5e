package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/seanharvey/people-starter/internal/config"
	"github.com/seanharvey/people-starter/internal/handlers"
)

// New creates a fully-configured chi router with all routes, middleware,
// and handlers wired together.
func New(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	// The web app runs on a different port and calls this server by
	// absolute URL, so every route permits requests from any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// ── Handlers ────────────────────────────────────────────
	rootH := handlers.NewRootHandler()
	peopleH := handlers.NewPeopleHandler()

	// ── Routes ──────────────────────────────────────────────
	r.Get("/", rootH.Hello)
	r.Route("/people", peopleH.Routes)

	return r
}

// requestLogger is a simple middleware that logs each HTTP request with a
// generated request ID, method, path, status code, and duration. Request
// bodies and query contents are never logged.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = 200
		}
		log.Printf("%s %s %s %d %s",
			id,
			r.Method,
			r.URL.Path,
			status,
			time.Since(start).Round(time.Millisecond),
		)
	})
}
