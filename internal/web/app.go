// Package web implements the browser-facing app: a small server-rendered
// front end that fetches the person list from the API server and renders
// one card per person.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seanharvey/people-starter/internal/config"
	"github.com/seanharvey/people-starter/internal/types"
	"github.com/seanharvey/people-starter/internal/web/ui"
)

const (
	avatarA = "/static/avatar-a.svg"
	avatarB = "/static/avatar-b.svg"

	// fallback shown on a card when a person has no favourite food.
	unknownFood = "Unknown"
)

// App serves the web front end. It holds no per-request state: every page
// view performs exactly one GET against the API and renders the result.
type App struct {
	cfg      *config.Config
	client   *http.Client
	tmpl     *template.Template
	static   fs.FS
	reloader *LiveReloader

	// diskAssets is true when UI files are served from disk (dev mode
	// with the ui directory present), which also enables live reload.
	diskAssets bool
}

// New creates the web app. In dev mode, if the configured UI directory
// exists on disk, assets are served from it and live reload is enabled;
// otherwise the embedded copies are used.
func New(cfg *config.Config) (*App, error) {
	var fsys fs.FS = ui.Files
	diskAssets := false

	if cfg.IsDev() {
		if info, err := os.Stat(cfg.Web.UIDir); err == nil && info.IsDir() {
			fsys = os.DirFS(cfg.Web.UIDir)
			diskAssets = true
		}
	}

	tmpl, err := template.ParseFS(fsys, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	static, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	app := &App{
		cfg:        cfg,
		client:     &http.Client{Timeout: 5 * time.Second},
		tmpl:       tmpl,
		static:     static,
		diskAssets: diskAssets,
	}
	if diskAssets {
		app.reloader = NewLiveReloader()
	}

	return app, nil
}

// Handler returns the web app's HTTP handler.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", a.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(a.static))))
	if a.reloader != nil {
		r.Get("/livereload", a.reloader.Handler)
	}

	return r
}

// Watch starts the dev asset watcher, broadcasting a reload to connected
// browsers whenever a UI file changes. It is a no-op unless assets are
// served from disk. Blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	if a.reloader == nil {
		return nil
	}
	return watchDir(ctx, a.cfg.Web.UIDir, a.reloader.Broadcast)
}

// pageData is the template payload for the index page.
type pageData struct {
	Cards      []personCard
	LiveReload bool
}

// personCard is the view model for one rendered card.
type personCard struct {
	Name   string
	Age    int
	Food   string
	Avatar string
}

// Index fetches the person list and renders the card grid. The fetch is
// bound to the request context, so a client that navigates away cancels
// the in-flight call.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	list, err := a.fetchPeople(r.Context())
	if err != nil {
		log.Printf("fetch people: %v", err)
		http.Error(w, "people api unreachable", http.StatusBadGateway)
		return
	}

	data := pageData{
		Cards:      buildCards(list),
		LiveReload: a.reloader != nil,
	}

	// Render to a buffer first so a template error cannot leave a
	// half-written page behind a 200 status.
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		log.Printf("render index: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// fetchPeople performs the single GET against the API's listing endpoint.
func (a *App) fetchPeople(ctx context.Context) ([]types.Person, error) {
	url := a.cfg.Web.APIBaseURL + "/people"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	var list []types.Person
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}

	return list, nil
}

// buildCards maps the person list to card view models, preserving order.
// Avatars alternate by index parity starting with avatar A at index 0;
// a missing favourite food falls back to the Unknown label.
func buildCards(list []types.Person) []personCard {
	cards := make([]personCard, 0, len(list))

	for i, p := range list {
		card := personCard{
			Name:   p.Name,
			Age:    p.Age,
			Food:   unknownFood,
			Avatar: avatarA,
		}
		if p.FavouriteFood != nil {
			card.Food = *p.FavouriteFood
		}
		if i%2 == 1 {
			card.Avatar = avatarB
		}
		cards = append(cards, card)
	}

	return cards
}
