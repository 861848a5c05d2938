// Package builder construit les recettes à partir des vidéos énumérées.
package builder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/patrickprogramme/recetario/internal/fsutil"
	"github.com/patrickprogramme/recetario/pkg/model"
)

// ErrNoRecipes : aucune vidéo n'a pu être transformée en recette.
var ErrNoRecipes = errors.New("aucune recette construite")

// MetadataSource fournit les métadonnées détaillées d'une vidéo.
type MetadataSource interface {
	VideoMeta(ctx context.Context, id string) (*model.VideoMeta, error)
}

// ThumbnailFetcher télécharge une miniature.
type ThumbnailFetcher interface {
	FetchThumbnail(ctx context.Context, url string) ([]byte, error)
}

type Options struct {
	ThumbnailDir    string
	RequestInterval time.Duration // 0 = pas de pause entre deux vidéos
}

type Builder struct {
	meta     MetadataSource
	thumbs   ThumbnailFetcher
	thumbDir string
	limiter  *rate.Limiter
	log      zerolog.Logger
}

func New(meta MetadataSource, thumbs ThumbnailFetcher, opts Options, logger zerolog.Logger) *Builder {
	b := &Builder{
		meta:     meta,
		thumbs:   thumbs,
		thumbDir: opts.ThumbnailDir,
		log:      logger,
	}
	if opts.RequestInterval > 0 {
		b.limiter = rate.NewLimiter(rate.Every(opts.RequestInterval), 1)
	}
	return b
}

// Build traite les vidéos une par une, dans l'ordre.
// Une vidéo en échec est signalée puis ignorée sans consommer de numéro.
// Une annulation du contexte interrompt tout et renvoie l'erreur.
func (b *Builder) Build(ctx context.Context, refs []model.VideoRef) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0, len(refs))

	for i, ref := range refs {
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		l := b.log.With().Str("id", ref.ID).Logger()
		l.Info().Msgf("[%d/%d] extraction", i+1, len(refs))

		meta, err := b.meta.VideoMeta(ctx, ref.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.Warn().Err(err).Msg("vidéo ignorée")
			continue
		}

		r := model.NewRecipe(len(recipes)+1, ref.ID, meta)
		if r.ThumbnailURL != "" {
			local, err := b.saveThumbnail(ctx, r)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				l.Warn().Err(err).Str("thumbnail", r.ThumbnailURL).Msg("miniature indisponible")
			}
			r.ThumbnailLocal = local
		}

		recipes = append(recipes, r)
		l.Info().Int("numero", r.Number).Str("titulo", r.Title).Msg("recette ajoutée")
	}

	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

func (b *Builder) saveThumbnail(ctx context.Context, r model.Recipe) (string, error) {
	data, err := b.thumbs.FetchThumbnail(ctx, r.ThumbnailURL)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("miniature vide")
	}

	path := filepath.Join(b.thumbDir, ThumbnailName(r.Number, data))
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ThumbnailName : receta_007.png ; l'extension est déduite du contenu.
func ThumbnailName(number int, data []byte) string {
	return fmt.Sprintf("receta_%03d.%s", number, SniffExt(data))
}

// SniffExt devine l'extension d'image à partir des premiers octets (jpg par défaut).
func SniffExt(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpg"
	}
}
