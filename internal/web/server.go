// Package web serves the catalog as a browser image grid.
package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

// PlaceholderImage is shown for cards without an image URL
const PlaceholderImage = "https://via.placeholder.com/150x210?text=No+Image"

// Server renders views of an immutable catalog
type Server struct {
	records []card.Record
	logger  *zap.Logger
	tpl     *template.Template
	router  *chi.Mux
}

// NewServer creates the HTTP server for cat
func NewServer(cat *catalog.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		records: cat.Records(),
		logger:  logger,
		tpl:     template.Must(template.New("page").Funcs(funcs).Parse(pageTpl)),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handlePage)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", s.handleCards)
		r.Get("/archetypes", s.handleArchetypes)
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using zap
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// ParseInputs reads view inputs from query parameters.
// Unknown type or sort values fall back to their defaults.
func ParseInputs(q url.Values) catalog.Inputs {
	in := catalog.DefaultInputs()
	in.Search = q.Get("q")
	in.Archetype = q.Get("archetype")

	if c, err := card.ParseCategory(q.Get("type")); err == nil {
		in.Category = c
	}
	if d, err := catalog.ParseDirection(q.Get("sort")); err == nil {
		in.Direction = d
	}
	in.Staples = q.Get("staples") == "1"

	return in
}

// Query encodes inputs back into query parameters
func Query(in catalog.Inputs) url.Values {
	q := url.Values{}
	if in.Search != "" {
		q.Set("q", in.Search)
	}
	if in.Archetype != "" {
		q.Set("archetype", in.Archetype)
	}
	if in.Category != "" && in.Category != card.CategoryAll {
		q.Set("type", string(in.Category))
	}
	if in.Direction == catalog.Ascending {
		q.Set("sort", in.Direction.String())
	}
	if in.Staples {
		q.Set("staples", "1")
	}
	return q
}

type cardsResponse struct {
	Cards     []card.Record  `json:"cards"`
	Total     int            `json:"total"`
	Shown     int            `json:"shown"`
	Inputs    catalog.Inputs `json:"inputs"`
	Direction string         `json:"sort"`
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	in := ParseInputs(r.URL.Query())
	view := catalog.ComputeView(s.records, in)
	respondJSON(w, http.StatusOK, cardsResponse{
		Cards:     view.Cards,
		Total:     len(s.records),
		Shown:     len(view.Cards),
		Inputs:    in,
		Direction: in.Direction.String(),
	})
}

func (s *Server) handleArchetypes(w http.ResponseWriter, r *http.Request) {
	archetypes := catalog.Facet(s.records)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"archetypes": archetypes,
		"total":      len(archetypes),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
