package spaserve

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/metrics"
)

// CacheControl selects the Cache-Control policy for served files.
type CacheControl int

const (
	// CacheControlNone disables caching. Useful during development.
	CacheControlNone CacheControl = iota

	// CacheControlProduction caches fingerprinted files for a year and
	// everything else for an hour with revalidation.
	CacheControlProduction
)

const tracerName = "navkit"

// DefaultIndex is the app shell served for client routes.
const DefaultIndex = "index.html"

// Response kinds recorded in metrics.
const (
	kindFile     = "file"
	kindFallback = "fallback"
	kindNotFound = "not_found"
)

// Config configures a Server.
type Config struct {
	// Dir is the directory holding the build output. Ignored when FS is set.
	Dir string

	// FS is the file system to serve from.
	FS fs.FS

	// Index is the app shell document. Default: "index.html".
	Index string

	// BasePath mounts the application under a path prefix, matching the
	// routing options' base path.
	BasePath string

	// CacheControl sets the caching policy for files other than the index.
	CacheControl CacheControl

	// Headers are added to every file response.
	Headers map[string]string

	Logger  *slog.Logger
	Metrics *metrics.Collectors

	// Tracer starts a span per request. Default: the global provider's
	// "navkit" tracer.
	Tracer trace.Tracer
}

// Server is an http.Handler serving an SPA with history-mode fallback.
type Server struct {
	fsys     fs.FS
	index    string
	base     string
	cache    CacheControl
	headers  map[string]string
	logger   *slog.Logger
	metrics  *metrics.Collectors
	tracer   trace.Tracer
	handler  http.Handler
}

// New creates a Server. It fails when no file system is configured or the
// index document is missing.
func New(cfg Config) (*Server, error) {
	fsys := cfg.FS
	if fsys == nil {
		if cfg.Dir == "" {
			return nil, errors.New("N402").WithSuggestion("Set serve.dir in navkit.json or pass --dir")
		}
		fsys = os.DirFS(cfg.Dir)
	}

	s := &Server{
		fsys:    fsys,
		index:   cfg.Index,
		base:    normalizeBase(cfg.BasePath),
		cache:   cfg.CacheControl,
		headers: cfg.Headers,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		tracer:  cfg.Tracer,
	}
	if s.index == "" {
		s.index = DefaultIndex
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "spaserve")
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	if _, ok := relPath(s.index); !ok {
		return nil, errors.New("N402").WithDetail(fmt.Sprintf("invalid index document %q", s.index))
	}
	if info, err := fs.Stat(fsys, s.index); err != nil || info.IsDir() {
		return nil, errors.New("N402").
			WithDetail("index document " + s.index + " not found").
			Wrap(err)
	}

	s.handler = s.routes()
	return s, nil
}

// Handler returns the server's chi router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.traceRequests)
	r.Use(s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/*", s.serve)
	r.Head("/*", s.serve)
	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// serve answers GET and HEAD requests under the base path.
func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	rel, ok := stripBase(s.base, r.URL.Path)
	if !ok {
		s.notFound(w, r)
		return
	}
	if rel == "" {
		s.serveIndex(w, r, kindFile)
		return
	}

	clean, ok := relPath(rel)
	if !ok {
		s.notFound(w, r)
		return
	}

	if f, info, ok := s.open(clean); ok {
		defer f.Close()
		s.applyCacheHeaders(w, clean)
		s.serveContent(w, r, clean, info, f, kindFile)
		return
	}

	if isAsset(clean) {
		s.notFound(w, r)
		return
	}
	s.serveIndex(w, r, kindFallback)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request, kind string) {
	f, info, ok := s.open(s.index)
	if !ok {
		s.logger.Error("index document unavailable", "index", s.index)
		s.notFound(w, r)
		return
	}
	defer f.Close()

	// The shell must revalidate so new deployments are picked up.
	w.Header().Set("Cache-Control", "no-cache")
	s.serveContent(w, r, s.index, info, f, kind)
}

func (s *Server) serveContent(w http.ResponseWriter, r *http.Request, name string, info fs.FileInfo, f fs.File, kind string) {
	for key, value := range s.headers {
		w.Header().Set(key, value)
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			s.logger.Error("read failed", "file", name, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		content = bytes.NewReader(data)
	}

	s.record(r, kind)
	http.ServeContent(w, r, name, info.ModTime(), content)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.record(r, kindNotFound)
	http.NotFound(w, r)
}

// open returns the regular file at name.
func (s *Server) open(name string) (fs.File, fs.FileInfo, bool) {
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, nil, false
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, nil, false
	}
	return f, info, true
}

// applyCacheHeaders applies cache control headers based on the configuration.
func (s *Server) applyCacheHeaders(w http.ResponseWriter, filePath string) {
	switch s.cache {
	case CacheControlNone:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

	case CacheControlProduction:
		if isFingerprinted(filePath) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
		}
	}
}
