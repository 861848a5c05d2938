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

func main() {
	cfgPath := bootstrap.ConfigPathNextToBinary()
	cfg, err := bootstrap.LoadConfig(cfgPath)
	if err != nil {
		boot := applog.Base()
		boot.Fatal().Err(err).Str("config", cfgPath).Msg("configuration")
	}

	applog.Configure(applog.Config{Level: cfg.LogLevel, Service: "recetario"})
	logger := applog.WithComponent("main")
	logger.Info().Str("config", cfg.FilePath()).Str("channel", cfg.ChannelURL).Msg("démarrage")

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, ui.NewTerminal(), applog.Base())
	if err := a.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("échec de l'exécution")
	}
}
