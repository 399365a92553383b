package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ContentDir != "" || cfg.WasmDir != "" {
		t.Fatalf("expected no content or wasm dir, got %q and %q", cfg.ContentDir, cfg.WasmDir)
	}
	if cfg.PosterCacheEntries != 64 {
		t.Fatalf("expected default poster cache size, got %d", cfg.PosterCacheEntries)
	}
	if cfg.PosterMaxRenders != 2 {
		t.Fatalf("expected default poster max renders, got %d", cfg.PosterMaxRenders)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("AMLSAFE_WEB_HTTP_ADDR", "env-addr")
	t.Setenv("AMLSAFE_WEB_CONTENT_DIR", "/env/content")
	t.Setenv("AMLSAFE_WEB_POSTER_SEED", "7")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	args := []string{
		"-http-addr", "flag-addr",
		"-wasm-dir", "/flag/wasm",
		"-poster-warmup", "0",
		"-metrics=false",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ContentDir != "/env/content" {
		t.Fatalf("expected env content dir, got %q", cfg.ContentDir)
	}
	if cfg.WasmDir != "/flag/wasm" {
		t.Fatalf("expected flag wasm dir, got %q", cfg.WasmDir)
	}
	if cfg.PosterSeed != 7 {
		t.Fatalf("expected env poster seed, got %d", cfg.PosterSeed)
	}
	if cfg.PosterWarmup != 0 {
		t.Fatalf("expected flag poster warmup, got %d", cfg.PosterWarmup)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled by flag")
	}
}

func TestParseConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("AMLSAFE_WEB_POSTER_CACHE_SIZE", "0")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for zero poster cache size")
	}
}

func TestParseConfigRejectsZeroMaxRenders(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-poster-max-renders", "0"}); err == nil {
		t.Fatal("expected error for zero poster max renders")
	}
}

func TestParseConfigRejectsInvalidFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-poster-warmup", "-3"}); err == nil {
		t.Fatal("expected error for negative poster warmup")
	}
}
