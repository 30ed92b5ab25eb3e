// Package server exposes the listing-to-DOT pipeline over HTTP.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/depdot/pkg/buildinfo"
	"github.com/matzehuels/depdot/pkg/cache"
	"github.com/matzehuels/depdot/pkg/config"
	"github.com/matzehuels/depdot/pkg/errors"
	"github.com/matzehuels/depdot/pkg/listing"
	"github.com/matzehuels/depdot/pkg/render"
)

// maxListingBytes bounds the request body to keep the layout engine
// from chewing on unbounded input.
const maxListingBytes = 4 << 20

// Server handles listing conversion and rendering requests.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
}

// New creates a server. A nil cache disables artifact caching.
func New(logger *log.Logger, store cache.Cache) *Server {
	if store == nil {
		store = cache.NewNullCache()
	}
	return &Server{logger: logger, cache: store}
}

// Handler returns the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/dot", s.handleDOT)
		r.Post("/render", s.handleRender)
	})

	return r
}

// handleHealthz reports liveness and the build version.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleDOT converts a listing in the request body into a DOT document.
func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	dot, err := s.buildDOT(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write(dot)
}

// handleRender converts a listing and renders it through the layout
// engine. The format query parameter selects svg or png.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = "svg"
	}
	format, err := render.ParseFormat(formatParam)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	dot, err := s.buildDOT(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == render.FormatDOT {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.Write(dot)
		return
	}

	ctx := r.Context()
	key := cache.ArtifactKey(dot, string(format))
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Cache lookup failed", "error", err)
	} else if ok {
		writeArtifact(w, format, data)
		return
	}

	artifact, err := render.Render(ctx, dot, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cache.Set(ctx, key, artifact, 0); err != nil {
		s.logger.Warn("Cache store failed", "error", err)
	}
	writeArtifact(w, format, artifact)
}

// buildDOT reads the listing from the request body and converts it.
// The label and rankdir query parameters override the defaults.
func (s *Server) buildDOT(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxListingBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceFailed, err, "read request body")
	}

	entries, err := listing.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	profile := config.Default()
	if label := r.URL.Query().Get("label"); label != "" {
		profile.Label = label
	}
	if rankdir := r.URL.Query().Get("rankdir"); rankdir != "" {
		profile.RankDir = rankdir
	}

	graph := listing.Build(entries, profile.BuildOptions())
	return graph.Marshal()
}

// writeArtifact writes a rendered artifact with its content type.
func writeArtifact(w http.ResponseWriter, format render.Format, data []byte) {
	switch format {
	case render.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	case render.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	}
	w.Write(data)
}

// writeError maps a pipeline error onto an HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeMalformedLine, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeRenderFailed:
		status = http.StatusUnprocessableEntity
	}

	s.logger.Error("Request failed",
		"request_id", requestIDFromContext(r.Context()),
		"status", status,
		"error", err,
	)
	writeJSON(w, status, map[string]string{
		"error":   string(code),
		"message": errors.UserMessage(err),
	})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Default().Error("Response encode failed", "error", err)
	}
}
