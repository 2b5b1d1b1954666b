// Package api exposes fixture generation over HTTP for CI use.
//
// The service is deliberately small: one endpoint streams a generated .gr
// file, one reports health. It shares the generation engine with the CLI,
// so both surfaces produce identical output for identical parameters.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/grfixtures/grgen/pkg/gen"
	"github.com/grfixtures/grgen/pkg/gr"
)

// maxNodes bounds custom requests so a stray query can't pin the server.
const maxNodes = 1_000_000

// Server handles HTTP fixture generation.
type Server struct {
	logger *log.Logger
}

// NewServer creates a server logging through the given logger.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{logger: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/v1/graph", s.handleGraph)
	return r
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleGraph generates a graph and streams it as a .gr body.
//
// Either ?preset=<name> or custom parameters (?nodes=, ?edges_per_node=,
// ?max_weight=) select the spec; ?seed= opts into deterministic output.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	size, err := sizeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var opts []gen.Option
	if seedStr := r.URL.Query().Get("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid seed: %q", seedStr), http.StatusBadRequest)
			return
		}
		opts = append(opts, gen.WithSeed(seed))
	}

	g, err := size.Generator(opts...).Graph(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", size.Filename))
	if err := gr.Write(w, g, size.Spec.Comment); err != nil {
		// Headers are already out; all we can do is log.
		s.logger.Errorf("stream graph: %v", err)
	}
}

// sizeFromQuery resolves the requested size from preset or custom params.
func sizeFromQuery(r *http.Request) (gen.Size, error) {
	q := r.URL.Query()

	if name := q.Get("preset"); name != "" {
		return gen.Preset(name)
	}

	nodes, err := strconv.Atoi(q.Get("nodes"))
	if err != nil {
		return gen.Size{}, fmt.Errorf("invalid nodes: %q", q.Get("nodes"))
	}
	if nodes > maxNodes {
		return gen.Size{}, fmt.Errorf("nodes %d exceeds limit %d", nodes, maxNodes)
	}

	edgesPerNode := 5.0
	if v := q.Get("edges_per_node"); v != "" {
		if edgesPerNode, err = strconv.ParseFloat(v, 64); err != nil {
			return gen.Size{}, fmt.Errorf("invalid edges_per_node: %q", v)
		}
	}

	maxWeight := 100
	if v := q.Get("max_weight"); v != "" {
		if maxWeight, err = strconv.Atoi(v); err != nil {
			return gen.Size{}, fmt.Errorf("invalid max_weight: %q", v)
		}
	}

	size := gen.Size{
		Name: "custom",
		Spec: gr.Spec{
			Nodes:        nodes,
			EdgesPerNode: edgesPerNode,
			MaxWeight:    maxWeight,
			Comment:      "Custom test graph",
		},
		Filename: "custom_graph.gr",
	}
	return size, size.Spec.Validate()
}

// requestID tags every response with a fresh UUID in X-Request-ID,
// keeping an inbound ID when the caller already set one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debugf("%s %s", r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}
