// Package web parses web command flags and composes the landing page server.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/amlsafe/landing/internal/content"
	"github.com/amlsafe/landing/internal/particlefield/raster"
	entrypoint "github.com/amlsafe/landing/internal/platform/cmd"
	"github.com/amlsafe/landing/internal/services/web"
	"github.com/amlsafe/landing/internal/services/web/platform/observability"
	"github.com/amlsafe/landing/internal/services/web/platform/pagerender"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr           string `env:"AMLSAFE_WEB_HTTP_ADDR"           envDefault:"localhost:8080"`
	ContentDir         string `env:"AMLSAFE_WEB_CONTENT_DIR"`
	WasmDir            string `env:"AMLSAFE_WEB_WASM_DIR"`
	PosterSeed         uint64 `env:"AMLSAFE_WEB_POSTER_SEED"         envDefault:"1337"`
	PosterWarmup       int    `env:"AMLSAFE_WEB_POSTER_WARMUP"       envDefault:"120"`
	PosterCacheEntries int    `env:"AMLSAFE_WEB_POSTER_CACHE_SIZE"   envDefault:"64"`
	PosterMaxRenders   int    `env:"AMLSAFE_WEB_POSTER_MAX_RENDERS"  envDefault:"2"`
	MetricsEnabled     bool   `env:"AMLSAFE_WEB_METRICS_ENABLED"     envDefault:"true"`
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.PosterWarmup < 0 {
		errs = append(errs, fmt.Errorf("poster warmup must not be negative, got %d", c.PosterWarmup))
	}
	if c.PosterCacheEntries <= 0 {
		errs = append(errs, fmt.Errorf("poster cache size must be positive, got %d", c.PosterCacheEntries))
	}
	if c.PosterMaxRenders <= 0 {
		errs = append(errs, fmt.Errorf("poster max renders must be positive, got %d", c.PosterMaxRenders))
	}
	return errors.Join(errs...)
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory of locale YAML overrides, watched for changes")
	fs.StringVar(&cfg.WasmDir, "wasm-dir", cfg.WasmDir, "directory holding landing.wasm and wasm_exec.js")
	fs.Uint64Var(&cfg.PosterSeed, "poster-seed", cfg.PosterSeed, "particle seed for background posters")
	fs.IntVar(&cfg.PosterWarmup, "poster-warmup", cfg.PosterWarmup, "frames advanced before a poster is captured")
	fs.IntVar(&cfg.PosterCacheEntries, "poster-cache-size", cfg.PosterCacheEntries, "number of encoded posters kept in memory")
	fs.IntVar(&cfg.PosterMaxRenders, "poster-max-renders", cfg.PosterMaxRenders, "posters rendered concurrently before requests are refused")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "expose Prometheus metrics on /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the landing page server and serves it alongside the content
// watcher until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := content.NewStore(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		posters := raster.NewPosterCache(raster.PosterOptions{
			Seed:         cfg.PosterSeed,
			Warmup:       cfg.PosterWarmup,
			CacheEntries: cfg.PosterCacheEntries,
			MaxRenders:   cfg.PosterMaxRenders,
		})
		if err := posters.Warm(ctx, [2]int{pagerender.DefaultPosterWidth, pagerender.DefaultPosterHeight}); err != nil {
			log.Printf("warm poster cache err=%v", err)
		}

		var metrics *observability.Metrics
		if cfg.MetricsEnabled {
			metrics = observability.NewMetrics()
		}

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Content:  store,
			Posters:  posters,
			WasmDir:  cfg.WasmDir,
			Metrics:  metrics,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return server.ListenAndServe(gctx)
		})
		g.Go(func() error {
			return store.Watch(gctx)
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
