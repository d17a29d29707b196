// Package server serves the built site over HTTP together with the
// glossary APIs and, in watch mode, live reload.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rfcpress/rfcpress/internal/db"
	"github.com/rfcpress/rfcpress/internal/glossary"
	"github.com/rfcpress/rfcpress/internal/misslog"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the built site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the static site and the glossary API.
type Server struct {
	cfg        Config
	db         *db.DB
	idx        *glossary.Index
	misses     *misslog.Store
	reload     *ReloadHub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. The reload hub is optional; pass nil when not
// running in watch mode.
func New(cfg Config, database *db.DB, idx *glossary.Index, reload *ReloadHub) *Server {
	s := &Server{
		cfg:    cfg,
		db:     database,
		idx:    idx,
		misses: misslog.NewStore(database),
		reload: reload,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	glossary.RegisterRoutes(r, s.idx, s.misses)
	misslog.RegisterRoutes(r, s.misses)

	if s.reload != nil {
		r.Get("/livereload", s.reload.Handler())
	}

	// Everything else is the built site.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Misses returns the glossary miss store.
func (s *Server) Misses() *misslog.Store { return s.misses }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("rfcpress serving %s on http://localhost%s", s.cfg.SiteDir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
