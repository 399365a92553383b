// Package particles parses the desktop preview command and builds its field.
package particles

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/amlsafe/landing/internal/particlefield"
	entrypoint "github.com/amlsafe/landing/internal/platform/cmd"
)

// Config holds desktop preview configuration.
type Config struct {
	Width  int    `env:"AMLSAFE_PARTICLES_WIDTH"  envDefault:"1280"`
	Height int    `env:"AMLSAFE_PARTICLES_HEIGHT" envDefault:"720"`
	TPS    int    `env:"AMLSAFE_PARTICLES_TPS"    envDefault:"60"`
	Seed   uint64 `env:"AMLSAFE_PARTICLES_SEED"`
}

// Validate rejects window settings ebiten cannot open.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("ticks per second must be positive, got %d", c.TPS))
	}
	return errors.Join(errs...)
}

// Loop drives a field until ctx is done or the window closes.
type Loop func(ctx context.Context, cfg Config, field *particlefield.Field) error

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "animation ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "particle seed; 0 picks a random layout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewField builds the field for the configured window.
func NewField(cfg Config) *particlefield.Field {
	var opts []particlefield.Option
	if cfg.Seed != 0 {
		opts = append(opts, particlefield.WithSeed(cfg.Seed))
	}
	return particlefield.New(float64(cfg.Width), float64(cfg.Height), opts...)
}

// Run builds the field and hands it to loop.
func Run(ctx context.Context, cfg Config, loop Loop) error {
	if loop == nil {
		return errors.New("particle loop is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceParticles, func(ctx context.Context) error {
		if err := loop(ctx, cfg, NewField(cfg)); err != nil {
			return fmt.Errorf("run particles: %w", err)
		}
		return nil
	})
}
