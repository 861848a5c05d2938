package yt

import "time"

// Mode de listing passé à BuildArgs
type Mode int

const (
	ModeVideo Mode = iota // -j : métadonnées complètes d'une vidéo
	ModeFlat              // -J --flat-playlist : liste plate d'une chaîne
)

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur

	ExtractTimeout time.Duration // délai par vidéo
	ListTimeout    time.Duration // délai pour le listing complet de la chaîne
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		SkipDownload:   true,
		NoWarnings:     !showWarning,
		NoProgress:     true,
		NoUpdate:       true,
		NoConfig:       true, // valeur par défaut : ignorer les fichiers de config extérieurs (plus prévisible)
		ExtractTimeout: defaultExtractTimeout,
		ListTimeout:    defaultListTimeout,
	}
}

// BuildArgs construit une slice des arguments à passer à yt-dlp.
func (c *YtDlpConfig) BuildArgs(url string, mode Mode) []string {
	args := make([]string, 0, 9)
	// mettre --no-config en tête pour éviter que des configs locales/modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	switch mode {
	case ModeFlat:
		args = append(args, "-J", "--flat-playlist")
	default:
		args = append(args, "-j")
	}
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	args = append(args, url)
	return args
}
