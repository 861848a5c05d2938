package updater

import (
	"context"
	"strings"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string            // version récupérée localement
	LatestRelease  *YtDlpReleaseInfo // info complète de la release distante
	IsUpToDate     bool              // true si CurrentVersion == LatestRelease.TagName
}

// Check compare la version locale et la dernière release.
func (c *Checker) Check(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := c.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     strings.TrimSpace(localVer) == latest.TagName,
	}, nil
}

// CheckYtDlpUpdate utilise le Checker par défaut.
func CheckYtDlpUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	return NewChecker().Check(ctx, localVer)
}

// GetUpdateLink retourne le lien de téléchargement pour le système donné
// (valeurs de runtime.GOOS), ou la page de la release à défaut.
func (u UpdateCheck) GetUpdateLink(system string) string {
	var asset YtDlpAsset
	switch system {
	case "windows":
		asset = u.LatestRelease.WindowsRelease
	case "darwin":
		asset = u.LatestRelease.MacRelease
	default:
		asset = u.LatestRelease.LinuxRelease
	}
	if asset.BrowserDownloadURL == "" {
		return u.LatestRelease.HTMLURL
	}
	return asset.BrowserDownloadURL
}
