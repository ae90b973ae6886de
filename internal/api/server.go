package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/moehq/moe/internal/config"
	"github.com/moehq/moe/internal/db"
	"github.com/moehq/moe/internal/db/mongodb"
	"github.com/moehq/moe/internal/optimal"
)

// APIResponse is the standard envelope for error payloads
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server represents the HTTP API server
type Server struct {
	router *gin.Engine
	solver optimal.Solver
	conn   db.Conn
}

// NewServer assembles the application from configuration: ambient
// middleware, static assets, the optional shared MongoDB connection with
// its per-request binding, and the route table. Runs once at process
// start; any error aborts startup, no partial state is kept.
func NewServer(cfg *config.Config, solver optimal.Solver) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		solver: solver,
	}

	router.Use(RequestID())
	router.Use(CORS(cfg.Server.CORSOrigin))
	router.Use(AccessLog())
	router.Use(RateLimit(rate.Limit(100), 200))

	if cfg.Server.StaticDir != "" {
		router.Static("/static", cfg.Server.StaticDir)
	}

	// The binder middleware is registered only when mongo is enabled, so
	// handlers never observe a present-but-nil binding.
	if cfg.MongoDB.UseMongo() {
		uri, err := cfg.MongoDB.URI()
		if err != nil {
			return nil, err
		}

		conn, err := mongodb.Open(context.Background(), &db.Config{
			URI:      uri,
			Database: cfg.MongoDB.Database,
		}, cfg.Debug.ToolbarEnabled())
		if err != nil {
			return nil, err
		}

		s.conn = conn
		// The sub-database handle is derived once here and captured by the
		// middleware closure; every request observes the same handle.
		router.Use(DatabaseBinder(conn.Database(cfg.MongoDB.Database)))
	}

	if err := s.registerRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

// Conn returns the shared connection, or nil when mongo is disabled
func (s *Server) Conn() db.Conn {
	return s.conn
}

// Router exposes the underlying engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// registerRoutes wires the fixed route table to its handlers. Startup
// fails fast on a duplicate name or a name with no handler.
func (s *Server) registerRoutes() error {
	handlers := map[string]struct {
		method  string
		handler gin.HandlerFunc
	}{
		"home":                      {http.MethodGet, s.home},
		"docs":                      {http.MethodGet, s.docs},
		"about":                     {http.MethodGet, s.about},
		"gp_ei":                     {http.MethodPost, s.gpEI},
		"gp_ei_pretty":              {http.MethodGet, s.gpEIPretty},
		"gp_mean_var":               {http.MethodPost, s.gpMeanVar},
		"gp_mean_var_pretty":        {http.MethodGet, s.gpMeanVarPretty},
		"gp_next_points_epi":        {http.MethodPost, s.gpNextPointsEPI},
		"gp_next_points_epi_pretty": {http.MethodGet, s.gpNextPointsEPIPretty},
	}

	seen := make(map[string]bool, len(routeTable))
	for _, rt := range routeTable {
		if seen[rt.name] {
			return fmt.Errorf("duplicate route name %q", rt.name)
		}
		seen[rt.name] = true

		h, ok := handlers[rt.name]
		if !ok {
			return fmt.Errorf("no handler registered for route %q", rt.name)
		}
		s.router.Handle(h.method, rt.path, h.handler)
	}

	return nil
}

func (s *Server) errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   message,
	})
}
