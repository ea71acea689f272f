// Package server hosts a documentation dataset directory over HTTP: the raw
// JSON resources under /data/ (the exact layout the fetcher consumes) and a
// resolved read-only API under /api/ for viewer frontends.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/singleflight"

	"docnav/internal/docs"
	"docnav/internal/fetch"
	"docnav/internal/render"
	"docnav/internal/rpc"
	"docnav/internal/search"
)

type Config struct {
	Port     int
	DataDir  string // site root containing the data/ subdirectory
	AllowAll bool   // allow all CORS origins (dev mode)
}

type Server struct {
	cfg        Config
	fetcher    fetch.Fetcher
	loader     *docs.Loader
	router     chi.Router
	httpServer *http.Server

	// Resolved datasets, one per requested version for the process lifetime.
	dataMu    sync.RWMutex
	data      map[string]*docs.VersionData
	loadGroup singleflight.Group
}

func New(cfg Config) *Server {
	fetcher := fetch.NewDir(cfg.DataDir)
	s := &Server{
		cfg:     cfg,
		fetcher: fetcher,
		loader:  docs.NewLoader(fetcher),
		data:    make(map[string]*docs.VersionData),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/data/*", http.FileServer(http.Dir(s.cfg.DataDir)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/versions", s.handleVersions)
		r.Get("/{version}/tree", s.handleTree)
		r.Get("/{version}/search", s.handleSearch)
		r.Get("/{version}/items/{id}", s.handleItem)
	})

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	slog.Info("serving dataset", "addr", addr, "dir", s.cfg.DataDir)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// versionData resolves one version's dataset, memoizing per version.
// Concurrent requests for the same version share a single resolution run.
func (s *Server) versionData(ctx context.Context, version string) (*docs.VersionData, error) {
	s.dataMu.RLock()
	data, ok := s.data[version]
	s.dataMu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := s.loadGroup.Do(version, func() (any, error) {
		loaded, err := s.loader.LoadVersionData(ctx, version)
		if err != nil {
			return nil, err
		}
		s.dataMu.Lock()
		s.data[version] = loaded
		s.dataMu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*docs.VersionData), nil
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := docs.LoadVersions(r.Context(), s.fetcher)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rpc.VersionsResponse{Versions: versions})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	data, err := s.versionData(r.Context(), version)
	if err != nil {
		writeResolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rpc.TreeResponse{
		Version:        version,
		Items:          data.Items,
		Tree:           data.Tree,
		StandaloneDocs: data.StandaloneDocs,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	query := r.URL.Query().Get("q")

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	data, err := s.versionData(r.Context(), version)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	matches := search.Search(data.Items, query)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]rpc.SearchResult, len(matches))
	for i, m := range matches {
		results[i] = rpc.SearchResult{
			URI:     fmt.Sprintf("docview://%s/%s", version, m.Item.ID),
			ID:      m.Item.ID,
			Title:   m.Item.Title,
			Snippet: m.Snippet,
			Tags:    m.Item.Tags,
		}
	}
	writeJSON(w, http.StatusOK, rpc.SearchResponse{Results: results})
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	id := chi.URLParam(r, "id")

	data, err := s.versionData(r.Context(), version)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	for _, item := range data.Items {
		if item.ID == id {
			writeJSON(w, http.StatusOK, rpc.DocResponse{
				URI:      fmt.Sprintf("docview://%s/%s", version, id),
				Markdown: render.ItemMarkdown(item),
			})
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("item %s not found in version %s", id, version))
}

func writeResolveError(w http.ResponseWriter, err error) {
	var resErr *docs.ResolutionError
	if errors.As(err, &resErr) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
