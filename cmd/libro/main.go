package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/patrickprogramme/recetario/internal/app"
	"github.com/patrickprogramme/recetario/internal/bootstrap"
	applog "github.com/patrickprogramme/recetario/internal/log"
	"github.com/patrickprogramme/recetario/internal/ui"
)

// libro régénère le livre PDF depuis la collection déjà extraite.
func main() {
	cfgPath := bootstrap.ConfigPathNextToBinary()
	cfg, err := bootstrap.LoadConfig(cfgPath)
	if err != nil {
		boot := applog.Base()
		boot.Fatal().Err(err).Str("config", cfgPath).Msg("configuration")
	}

	applog.Configure(applog.Config{Level: cfg.LogLevel, Service: "libro"})
	logger := applog.WithComponent("main")
	logger.Info().Str("collection", cfg.CollectionPath()).Msg("génération du livre")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, ui.NewTerminal(), applog.Base())
	if err := a.RenderOnly(ctx); err != nil {
		logger.Fatal().Err(err).Msg("échec de la génération")
	}
}
