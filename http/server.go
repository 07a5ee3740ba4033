// Package http provides the serve layer: static site file serving plus
// the JSON search endpoint that mirrors filter state in the URL query
// string.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
)

// Cached search responses expire quickly; the index only changes on
// rebuild, so the TTL just bounds memory.
const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Server is the HTTP server for a generated site.
type Server struct {
	router   chi.Router
	searcher uscon.Searcher
	toc      *uscon.TOC
	siteDir  string
	cache    *gocache.Cache
	limiter  *ClientLimiter
	logger   *slog.Logger
}

// NewServer creates and configures the server. The searcher answers
// /api/search, the TOC is served on /api/toc, and everything else is
// static files from siteDir.
func NewServer(searcher uscon.Searcher, toc *uscon.TOC, siteDir string, logger *slog.Logger) *Server {
	s := &Server{
		searcher: searcher,
		toc:      toc,
		siteDir:  siteDir,
		cache:    gocache.New(cacheTTL, cacheCleanup),
		limiter:  NewClientLimiter(20, 40),
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(s.limiter.Middleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/toc", s.handleTOC)
	r.Get("/", s.handlePage)
	r.Handle("/*", http.FileServer(http.Dir(s.siteDir)))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// SearchResponse is the /api/search payload. Query is the canonical
// encoding of the applied filter state, suitable for writing back into
// the location bar.
type SearchResponse struct {
	Query   string               `json:"query"`
	Total   int                  `json:"total"`
	Matches []*uscon.IndexRecord `json:"matches"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	state, err := uscon.ParseFilterState(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	// The canonical encoding doubles as the cache key.
	key := state.EncodeQuery()
	if cached, ok := s.cache.Get(key); ok {
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	matches, err := s.searcher.Search(r.Context(), state)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := &SearchResponse{
		Query:   key,
		Total:   len(matches),
		Matches: matches,
	}
	s.cache.Set(key, resp, gocache.DefaultExpiration)
	s.writeJSON(w, http.StatusOK, resp)
}

// handlePage serves the generated page. When the query string carries
// filter state, entry nodes that fall outside the filter get the hidden
// attribute, so the URL alone reproduces any filtered view.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	state, err := uscon.ParseFilterState(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.siteDir, uscon.SitePageFile))
	if os.IsNotExist(err) {
		s.writeError(w, uscon.Errorf(uscon.ENOTFOUND, "site page not generated"))
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if state.IsZero() {
		_, _ = w.Write(data)
		return
	}

	page, err := goquery.ParsePage(string(data))
	if err != nil {
		s.writeError(w, err)
		return
	}
	html, _, err := page.Apply(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.toc)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := uscon.ErrorCode(err)
	if code == uscon.EINTERNAL {
		s.logger.Error("internal error", "err", err)
	}
	s.writeJSON(w, statusFor(code), errorResponse{Error: uscon.ErrorMessage(err)})
}

// statusFor maps application error codes to HTTP status codes.
func statusFor(code string) int {
	switch code {
	case uscon.EINVALID:
		return http.StatusBadRequest
	case uscon.ENOTFOUND:
		return http.StatusNotFound
	case uscon.ECONFLICT:
		return http.StatusConflict
	case uscon.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(begin),
		)
	})
}
