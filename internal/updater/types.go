package updater

import (
	"time"
)

// YtDlpAsset représente un exécutable publié pour une plateforme.
type YtDlpAsset struct {
	Name               string
	BrowserDownloadURL string
	ContentType        string
}

// YtDlpReleaseInfo contient les métadonnées de la release
// et les assets reconnus par plateforme.
type YtDlpReleaseInfo struct {
	TagName        string
	Name           string
	PublishedAt    time.Time
	HTMLURL        string
	WindowsRelease YtDlpAsset
	LinuxRelease   YtDlpAsset
	MacRelease     YtDlpAsset
}

// rawRelease : sous-ensemble de la réponse de l'API GitHub.
type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		ContentType        string `json:"content_type"`
	} `json:"assets"`
}
