package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/patrickprogramme/recetario/internal/book"
	"github.com/patrickprogramme/recetario/internal/bootstrap"
	"github.com/patrickprogramme/recetario/internal/builder"
	"github.com/patrickprogramme/recetario/internal/channel"
	"github.com/patrickprogramme/recetario/internal/config"
	"github.com/patrickprogramme/recetario/internal/fetch"
	"github.com/patrickprogramme/recetario/internal/store"
	"github.com/patrickprogramme/recetario/internal/ui"
	"github.com/patrickprogramme/recetario/internal/yt"
	"github.com/patrickprogramme/recetario/pkg/model"
)

const defaultUpdateTimeout = 15 * time.Second

// Sources regroupe les accès réseau du pipeline. Les champs nil sont
// initialisés dans Run : YtDlp fournit la liste et les métadonnées, HTTP
// les miniatures.
type Sources struct {
	YtDlp  yt.Interface
	Lister channel.Lister
	Meta   builder.MetadataSource
	Thumbs builder.ThumbnailFetcher
}

// App orchestre les différentes dépendances (UI, yt-dlp, FS...)
type App struct {
	cfg *config.Config
	ui  ui.Interface
	src Sources
	now func() time.Time
	log zerolog.Logger
}

// New construit l'application ; yt-dlp est initialisé au premier Run.
func New(cfg *config.Config, uiClient ui.Interface, logger zerolog.Logger) *App {
	return NewWithSources(cfg, uiClient, logger, Sources{})
}

// NewWithSources permet d'injecter des sources factices (tests).
func NewWithSources(cfg *config.Config, uiClient ui.Interface, logger zerolog.Logger, src Sources) *App {
	return &App{
		cfg: cfg,
		ui:  uiClient,
		src: src,
		now: time.Now,
		log: logger,
	}
}

// Run exécute le flux complet : énumération, construction, sauvegarde, livre.
// Une chaîne vide ou sans recette exploitable n'est pas une erreur.
func (a *App) Run(ctx context.Context) error {
	if err := a.initSources(ctx); err != nil {
		return err
	}

	if _, err := a.Extract(ctx); err != nil {
		if errors.Is(err, channel.ErrNoVideos) || errors.Is(err, builder.ErrNoRecipes) {
			a.ui.PrintInfo(ctx, fmt.Sprintf("⚠️  %v : rien à mettre en page.", err))
			return nil
		}
		return err
	}
	return a.RenderOnly(ctx)
}

func (a *App) initSources(ctx context.Context) error {
	if a.src.YtDlp == nil && (a.src.Lister == nil || a.src.Meta == nil) {
		dl, version, err := yt.InitYtDlp(ctx, a.cfg)
		if err != nil {
			return fmt.Errorf("yt init: %w", err)
		}
		a.log.Info().Str("version", version).Str("path", dl.Path).Msg("yt-dlp prêt")

		if a.cfg.YtDlp.AutoUpdateCheck {
			a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version)
		}
		a.src.YtDlp = dl
	}
	if a.src.Lister == nil {
		a.src.Lister = a.src.YtDlp
	}
	if a.src.Meta == nil {
		a.src.Meta = a.src.YtDlp
	}
	if a.src.Thumbs == nil {
		a.src.Thumbs = fetch.NewFetcher(a.cfg.ThumbnailTimeout)
	}
	return nil
}

// Extract énumère la chaîne, construit les recettes puis les persiste en une fois.
// Rien n'est écrit si la construction est interrompue.
func (a *App) Extract(ctx context.Context) ([]model.Recipe, error) {
	a.ui.PrintInfo(ctx, fmt.Sprintf("🔎 Chaîne : %s", a.cfg.ChannelURL))
	if !yt.IsChannelURL(a.cfg.ChannelURL) {
		a.log.Warn().Str("url", a.cfg.ChannelURL).Msg("l'URL ne ressemble pas à une chaîne YouTube")
	}

	enum := channel.New(a.src.Lister, a.log.With().Str("component", "channel").Logger())
	refs, err := enum.Enumerate(ctx, a.cfg.ChannelURL)
	if err != nil {
		return nil, err
	}

	if err := bootstrap.EnsureOutputLayout(filepath.Dir(a.cfg.CollectionPath()), a.cfg.ThumbnailDir()); err != nil {
		return nil, fmt.Errorf("dossiers de sortie : %w", err)
	}

	b := builder.New(a.src.Meta, a.src.Thumbs, builder.Options{
		ThumbnailDir:    a.cfg.ThumbnailDir(),
		RequestInterval: a.cfg.RequestInterval,
	}, a.log.With().Str("component", "builder").Logger())
	recipes, err := b.Build(ctx, refs)
	if err != nil {
		return nil, err
	}

	if err := store.Save(a.cfg.CollectionPath(), recipes); err != nil {
		return nil, fmt.Errorf("sauvegarde de la collection : %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("💾 %d recettes sur %d vidéos enregistrées dans %s",
		len(recipes), len(refs), a.cfg.CollectionPath()))
	return recipes, nil
}

// RenderOnly génère le livre depuis la collection déjà persistée.
func (a *App) RenderOnly(ctx context.Context) error {
	opts := book.OptionsFromConfig(a.cfg)
	opts.Now = a.now
	gen := book.NewGenerator(opts, a.log.With().Str("component", "book").Logger())

	res, err := gen.Generate(ctx)
	if err != nil {
		if book.IsEmpty(err) {
			a.ui.PrintInfo(ctx, "⚠️  Collection vide : aucun livre généré.")
			return nil
		}
		return err
	}
	return a.finish(ctx, res)
}

func (a *App) finish(ctx context.Context, res *book.Result) error {
	path := res.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("✅ Livre écrit (%d recettes, %d pages) :\n%s", res.Recipes, res.Pages, path))

	if a.cfg.CopyPDFPath {
		if err := a.ui.CopyToClipboard(ctx, path); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: %v", err))
		}
	}

	if a.cfg.WaitForExit {
		if err := a.ui.WaitForExit(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}
