package yt

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/recetario/internal/config"
	applog "github.com/patrickprogramme/recetario/internal/log"
)

const (
	defaultVersionTimeout = 5 * time.Second
	defaultExtractTimeout = 2 * time.Minute
	defaultListTimeout    = 10 * time.Minute
)

// InitYtDlp initialise le client YtDlp, vérifie le binaire et récupère la version.
// Retourne le client concret (il implémente Interface) et la version.
func InitYtDlp(ctx context.Context, cfg *config.Config) (*YtDlp, string, error) {
	logger := applog.WithComponent("yt-dlp")

	// résout aussi cfg.YtDlp.ResolvedPath
	warnings, err := cfg.ValidateYtDlpPresence()
	if err != nil {
		return nil, "", err
	}
	for _, w := range warnings {
		logger.Debug().Msg(w)
	}

	ytDlpcfg := NewYtDlpConfig(cfg.YtDlp.ShowWarnings)
	ytDlpcfg.ExtractTimeout = cfg.YtDlp.ExtractTimeout
	ytDlpcfg.ListTimeout = cfg.YtDlp.ListTimeout
	dl := NewYtDlp(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, *ytDlpcfg)
	dl.Log = logger

	// vérifier la présence du binaire
	if err := dl.CheckBinary(); err != nil {
		return nil, "", fmt.Errorf("yt-dlp introuvable : %w", err)
	}

	// récupérer la version (avec timeout)
	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()
	version, err := dl.GetVersion(vctx)
	if err != nil {
		return dl, "", fmt.Errorf("échec récupération version yt-dlp : %w", err)
	}

	return dl, version, nil
}
