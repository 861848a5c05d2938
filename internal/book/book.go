// Package book met en page la collection persistée sous forme de livre PDF.
package book

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/patrickprogramme/recetario/internal/config"
	"github.com/patrickprogramme/recetario/internal/fsutil"
	"github.com/patrickprogramme/recetario/internal/store"
)

// Stage identifie l'étape de génération en échec.
type Stage string

const (
	StageLoad   Stage = "load"
	StageRender Stage = "render"
	StageWrite  Stage = "write"
)

// StageError : la génération s'est arrêtée à Stage, aucun document produit.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("génération du livre (%s) : %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Options décrit les entrées et la sortie d'une génération.
type Options struct {
	CollectionPath string
	ThumbnailDir   string
	OutputDir      string
	BaseName       string
	ChannelName    string
	Text           config.DocumentConfig
	Now            func() time.Time // horloge injectable, time.Now par défaut
}

// OptionsFromConfig dérive les options de la configuration chargée.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CollectionPath: cfg.CollectionPath(),
		ThumbnailDir:   cfg.ThumbnailDir(),
		OutputDir:      cfg.DocumentDir,
		BaseName:       cfg.DocumentBaseName,
		ChannelName:    cfg.ChannelName,
		Text:           cfg.Document,
	}
}

// Result résume un document écrit.
type Result struct {
	Path    string
	Pages   int
	Recipes int
}

type Generator struct {
	opts   Options
	styles map[string]Style
	log    zerolog.Logger
}

func NewGenerator(opts Options, logger zerolog.Logger) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{opts: opts, styles: DefaultStyles(), log: logger}
}

// OutputPath : <OutputDir>/<BaseName>_<YYYYMMDD>.pdf
func (g *Generator) OutputPath(now time.Time) string {
	name := fmt.Sprintf("%s_%s.pdf", g.opts.BaseName, now.Format("20060102"))
	return filepath.Join(g.opts.OutputDir, name)
}

// Generate reconstruit le document complet. La collection et les miniatures
// ne sont jamais modifiées ; un échec ne laisse aucun fichier partiel.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	now := g.opts.Now()

	recipes, err := store.Load(g.opts.CollectionPath)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	if len(recipes) == 0 {
		return nil, &StageError{Stage: StageLoad, Err: store.ErrEmptyCollection}
	}
	g.log.Info().Int("recetas", len(recipes)).Str("path", g.opts.CollectionPath).Msg("collection chargée")

	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	sorted := SortByTitle(recipes)
	layout := Layout{
		Text:         g.opts.Text,
		ChannelName:  g.opts.ChannelName,
		ThumbnailDir: g.opts.ThumbnailDir,
		Now:          now,
		Log:          g.log,
	}
	g.log.Info().Msg("ajout de la couverture et de l'index")
	g.log.Info().Msgf("ajout de %d pages de recettes", len(sorted))
	story := layout.Story(sorted)

	engine := NewPDFEngine(g.styles, DocInfo{
		Title:   g.opts.Text.CoverTitle,
		Author:  g.opts.Text.Author,
		Subject: g.opts.ChannelName,
		Created: now,
	})
	var buf bytes.Buffer
	pages, err := engine.Render(&buf, story)
	if err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageWrite, Err: err}
	}
	path := g.OutputPath(now)
	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return nil, &StageError{Stage: StageWrite, Err: err}
	}

	g.log.Info().Str("pdf", path).Int("pages", pages).Msg("livre écrit")
	return &Result{Path: path, Pages: pages, Recipes: len(sorted)}, nil
}

// IsEmpty indique une collection vide : rien à mettre en page.
func IsEmpty(err error) bool {
	return errors.Is(err, store.ErrEmptyCollection)
}
