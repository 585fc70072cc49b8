// Package api exposes extraction over HTTP.
//
// The server is deliberately small: one extraction endpoint plus health and
// version probes. Results are cached by project directory and request
// options so repeated extractions of an unchanged build are cheap.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gradletree/gradletree/pkg/buildinfo"
	"github.com/gradletree/gradletree/pkg/cache"
	"github.com/gradletree/gradletree/pkg/errors"
	"github.com/gradletree/gradletree/pkg/model"
)

// ExtractRequest is the body of POST /api/extract.
type ExtractRequest struct {
	// ProjectDir is the Gradle project root on the server's filesystem.
	ProjectDir string `json:"projectDir"`

	// Configurations filters extraction to the named configurations.
	Configurations []string `json:"configurations,omitempty"`

	// Offline disables remote POM fetching for this request.
	Offline bool `json:"offline,omitempty"`
}

// ExtractFunc runs an extraction for a request. Implementations typically
// invoke the project's Gradle and assemble the tree model.
type ExtractFunc func(ctx context.Context, req ExtractRequest) (*model.TreeModel, error)

// Options configures a Server. Zero values select defaults: a NullCache,
// the standard keyer, 1h result TTL, the default logger.
type Options struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// Server is the HTTP API.
type Server struct {
	extract ExtractFunc
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	log     *log.Logger
}

// NewServer creates a Server around an extraction function.
func NewServer(extract ExtractFunc, opts Options) *Server {
	s := &Server{
		extract: extract,
		cache:   opts.Cache,
		keyer:   opts.Keyer,
		ttl:     opts.TTL,
		log:     opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.ttl == 0 {
		s.ttl = time.Hour
	}
	if s.log == nil {
		s.log = log.Default()
	}
	return s
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/api/extract", s.handleExtract)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if err := errors.ValidateProjectDir(req.ProjectDir); err != nil {
		writeError(w, err)
		return
	}
	for _, name := range req.Configurations {
		if err := errors.ValidateConfigurationName(name); err != nil {
			writeError(w, err)
			return
		}
	}

	ctx := r.Context()
	key := s.keyer.ModelKey(req.ProjectDir, cache.ModelKeyOpts{
		Configurations: req.Configurations,
		Offline:        req.Offline,
	})

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		s.log.Debug("extract served from cache", "dir", req.ProjectDir)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	m, err := s.extract(ctx, req)
	if err != nil {
		s.log.Error("extraction failed", "dir", req.ProjectDir, "err", err)
		writeError(w, err)
		return
	}

	data, err := json.Marshal(m)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode model"))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Debug("result cache write failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}

// statusFor maps error codes onto HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidCoordinate,
		errors.ErrCodeInvalidConfiguration, errors.ErrCodeInvalidSnapshot,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound,
		errors.ErrCodeProjectNotFound, errors.ErrCodePomNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeGradleUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
