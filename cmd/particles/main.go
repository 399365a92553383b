// Package main opens a desktop window running the landing page particle
// field, for tuning the animation without a browser.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	particlescmd "github.com/amlsafe/landing/internal/cmd/particles"
	"github.com/amlsafe/landing/internal/particlefield"
	"github.com/amlsafe/landing/internal/particlefield/ebitenfield"
	entrypoint "github.com/amlsafe/landing/internal/platform/cmd"
	"github.com/amlsafe/landing/internal/platform/config"
)

func main() {
	cfg, err := particlescmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceParticles))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := particlescmd.Run(ctx, cfg, runWindow); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}

func runWindow(ctx context.Context, cfg particlescmd.Config, field *particlefield.Field) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("AMLSafe particle field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	log.Printf("particles window width=%d height=%d count=%d tps=%d", cfg.Width, cfg.Height, field.Len(), cfg.TPS)
	if err := ebiten.RunGame(ebitenfield.NewGame(ctx, field)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
