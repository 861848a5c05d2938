package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/patrickprogramme/recetario/internal/updater"
)

// YtDlpUpdateCheck signale une version plus récente de yt-dlp. Jamais bloquant.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) {
	uctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := updater.CheckYtDlpUpdate(uctx, version)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: vérification de mise à jour impossible : %v", err))
		return
	}
	if res.IsUpToDate {
		a.log.Debug().Str("version", version).Msg("yt-dlp à jour")
		return
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("ℹ️  yt-dlp %s disponible (installé : %s) : %s",
		res.LatestRelease.TagName, version, res.GetUpdateLink(runtime.GOOS)))
}
