package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/readview"
	"golang.org/x/time/rate"
)

// maxRequestBodySize limits POST body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// Ensure Server implements http.Handler at compile time.
var _ http.Handler = (*Server)(nil)

// Server exposes the reading-view JSON API:
//
//	POST /api/ingest   {url}        -> {id, title}
//	GET  /api/content?id=<id>       -> {id, url, title, content, chapters, fetchedAt}
//	GET  /api/health                -> {status}
type Server struct {
	mux    *http.ServeMux
	reader readview.ReaderService
	auth   readview.Authorizer
	logger *slog.Logger

	// Optional token bucket applied to ingestion requests.
	ingestLimiter *rate.Limiter
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAuthorizer gates all API endpoints behind the given Authorizer.
// Without it every caller is allowed.
func WithAuthorizer(auth readview.Authorizer) ServerOption {
	return func(s *Server) {
		s.auth = auth
	}
}

// WithIngestRateLimit applies a token-bucket limit to ingestion
// requests. Reads are never limited.
func WithIngestRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		s.ingestLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a Server around the given ReaderService.
func NewServer(reader readview.ReaderService, opts ...ServerOption) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		reader: reader,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Both the /api-prefixed and the bare paths are served; older
	// clients use the bare form.
	s.mux.HandleFunc("/api/ingest", s.handleIngest)
	s.mux.HandleFunc("/api/content", s.handleContent)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/ingest", s.handleIngest)
	s.mux.HandleFunc("/content", s.handleContent)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	s.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(begin),
	)
}

// authorize consults the configured Authorizer with the bearer token
// from the request. A nil Authorizer allows everything.
func (s *Server) authorize(r *http.Request) error {
	if s.auth == nil {
		return nil
	}
	credential := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return s.auth.Authorize(r.Context(), credential)
}

// handleIngest accepts {url}, runs the ingestion pipeline, and
// responds with the stored article's id and title.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, readview.Errorf(readview.EINVALID, "method not allowed"), http.StatusMethodNotAllowed)
		return
	}
	if err := s.authorize(r); err != nil {
		s.writeError(w, err, 0)
		return
	}
	if s.ingestLimiter != nil && !s.ingestLimiter.Allow() {
		s.writeError(w, readview.Errorf(readview.EINVALID, "too many ingestion requests"), http.StatusTooManyRequests)
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, readview.Errorf(readview.EINVALID, "invalid request body"), 0)
		return
	}
	if body.URL == "" {
		s.writeError(w, readview.Errorf(readview.EINVALID, "url is required"), 0)
		return
	}

	article, err := s.reader.Ingest(r.Context(), body.URL)
	if err != nil {
		s.writeError(w, err, 0)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    article.ID,
		"title": article.Title,
	})
}

// handleContent returns the renderable view of a stored article.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, readview.Errorf(readview.EINVALID, "method not allowed"), http.StatusMethodNotAllowed)
		return
	}
	if err := s.authorize(r); err != nil {
		s.writeError(w, err, 0)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		s.writeError(w, readview.Errorf(readview.EINVALID, "id is required"), 0)
		return
	}

	view, err := s.reader.Read(r.Context(), id)
	if err != nil {
		s.writeError(w, err, 0)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleHealth is a liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// codeStatus maps application error codes to HTTP status codes.
var codeStatus = map[string]int{
	readview.EINVALID:      http.StatusBadRequest,
	readview.ENOTFOUND:     http.StatusNotFound,
	readview.EUNAUTHORIZED: http.StatusUnauthorized,
	readview.EUPSTREAM:     http.StatusBadGateway,
	readview.EINTERNAL:     http.StatusInternalServerError,
}

// writeError maps an error to an HTTP response. An upstream
// StatusError mirrors the upstream status code. An explicit non-zero
// status overrides the code mapping. Internal errors are logged in
// full and reported generically.
func (s *Server) writeError(w http.ResponseWriter, err error, status int) {
	var se *readview.StatusError
	if errors.As(err, &se) {
		writeJSON(w, se.StatusCode, map[string]string{"error": se.Error()})
		return
	}

	code := readview.ErrorCode(err)
	message := readview.ErrorMessage(err)
	if code == readview.EINTERNAL {
		s.logger.Error("internal error", "error", err)
		message = "Internal error."
	}

	if status == 0 {
		status = codeStatus[code]
		if status == 0 {
			status = http.StatusInternalServerError
		}
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// writeJSON marshals v as JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing to do.
		_ = err
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
