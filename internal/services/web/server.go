package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/amlsafe/landing/internal/particlefield/raster"
	"github.com/amlsafe/landing/internal/platform/timeouts"
	webapp "github.com/amlsafe/landing/internal/services/web/app"
	module "github.com/amlsafe/landing/internal/services/web/module"
	"github.com/amlsafe/landing/internal/services/web/modules"
	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
	"github.com/amlsafe/landing/internal/services/web/platform/observability"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
	"github.com/amlsafe/landing/internal/services/web/routepath"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Content supplies page copy per language.
	Content pagerender.ContentSource
	// Posters renders the particle background. Nil disables the poster.
	Posters *raster.PosterCache
	// WasmDir holds the compiled browser client. Empty serves the page
	// without it.
	WasmDir string
	// Metrics collects request and poster metrics. Nil disables /metrics.
	Metrics *observability.Metrics
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type healthResponse struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := modules.Dependencies{
		Content: cfg.Content,
		WasmDir: cfg.WasmDir,
	}
	if cfg.Posters != nil {
		deps.Posters = cfg.Posters
	}
	if cfg.Metrics != nil {
		deps.PosterObserver = cfg.Metrics
	}
	mods := modules.DefaultModules(deps)
	h, err := webapp.BuildRootHandler(webapp.Config{Modules: mods})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth(mods))
	rootMux.HandleFunc(routepath.Health, httpx.MethodNotAllowed(http.MethodGet))
	if cfg.Metrics != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
		rootMux.HandleFunc(routepath.Metrics, httpx.MethodNotAllowed(http.MethodGet))
	}
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(),
		cfg.Metrics.Middleware(),
		observability.RequestLogger(log.Default()),
	), nil
}

func handleHealth(mods []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := healthResponse{Status: "ok", Modules: make(map[string]bool, len(mods))}
		for _, m := range mods {
			healthy := true
			if reporter, ok := m.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			resp.Modules[m.ID()] = healthy
		}
		status := http.StatusOK
		if !webapp.Healthy(mods) {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		if err := httpx.WriteJSON(w, status, resp); err != nil {
			log.Printf("write health response err=%v", err)
		}
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
