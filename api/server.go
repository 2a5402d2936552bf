package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"graphite-theme/content"
	"graphite-theme/theme"
)

var (
	// MetricRequestsTotal counts API requests by route and status code.
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphitetheme_requests_total",
		Help: "Total preview server requests by route and status",
	}, []string{"route", "code"})

	// MetricTokens reports the number of palette entries being served.
	MetricTokens = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphitetheme_tokens",
		Help: "Number of color tokens in the served palette",
	})
)

// Server exposes the palette preview API.
type Server struct {
	manager *theme.Manager
	handler *theme.Handler
	root    string
}

// NewServer creates a server over manager. root is the directory content scans run against.
func NewServer(manager *theme.Manager, root string) *Server {
	MetricTokens.Set(float64(len(manager.Names())))
	return &Server{
		manager: manager,
		handler: theme.NewHandler(manager),
		root:    root,
	}
}

// Register mounts every route on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", instrument("health", s.handleHealth))
	mux.HandleFunc("/api/palette", instrument("palette", s.handler.HandlePalette))
	mux.HandleFunc("/api/tokens", instrument("tokens", s.handler.HandleTokens))
	mux.HandleFunc("/api/resolve", instrument("resolve", s.handler.HandleResolve))
	mux.HandleFunc("/api/content", instrument("content", s.handleContent))
	mux.HandleFunc("/", instrument("swatches", s.handler.HandleSwatches))
	mux.Handle("/metrics", promhttp.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	writeJSON(w, http.StatusOK, resp)
}

type contentResponse struct {
	Patterns []string       `json:"patterns"`
	Files    []string       `json:"files"`
	Counts   map[string]int `json:"counts"`
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	patterns := s.manager.Config().Content
	files, err := content.Scan(r.Context(), s.root, patterns)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, contentResponse{
		Patterns: patterns,
		Files:    files,
		Counts:   content.CountByExtension(files),
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			MetricRequestsTotal.WithLabelValues(route, strconv.Itoa(http.StatusMethodNotAllowed)).Inc()
			return
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		MetricRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON error: %v", err)
	}
}
