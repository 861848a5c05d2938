package updater

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickprogramme/recetario/internal/fetch"
)

const (
	LatestReleaseURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"
	defaultTimeout   = 15 * time.Second
)

var ErrNoAsset = errors.New("aucun exécutable reconnu dans la release")

// Checker interroge l'API GitHub des releases de yt-dlp.
type Checker struct {
	Fetcher *fetch.Fetcher
	URL     string
}

// NewChecker retourne un Checker pointant sur l'API publique.
func NewChecker() *Checker {
	return &Checker{Fetcher: fetch.NewFetcher(defaultTimeout), URL: LatestReleaseURL}
}

// LatestRelease récupère et résume la dernière release publiée.
func (c *Checker) LatestRelease(ctx context.Context) (*YtDlpReleaseInfo, error) {
	raw, err := fetch.FetchJSON[rawRelease](ctx, c.Fetcher, c.URL)
	if err != nil {
		return nil, fmt.Errorf("release GitHub : %w", err)
	}

	info := &YtDlpReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		HTMLURL:     raw.HTMLURL,
	}
	for _, a := range raw.Assets {
		asset := YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		switch a.Name {
		case "yt-dlp.exe":
			info.WindowsRelease = asset
		case "yt-dlp":
			info.LinuxRelease = asset
		case "yt-dlp_macos":
			info.MacRelease = asset
		}
	}

	if info.WindowsRelease.BrowserDownloadURL == "" &&
		info.LinuxRelease.BrowserDownloadURL == "" &&
		info.MacRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("%w (%s)", ErrNoAsset, info.TagName)
	}
	return info, nil
}
