// Package channel énumère les vidéos d'une chaîne à partir de son listing plat.
package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/patrickprogramme/recetario/pkg/model"
)

// ErrNoVideos signale une chaîne sans aucune vidéo exploitable.
var ErrNoVideos = errors.New("aucune vidéo trouvée sur la chaîne")

// Lister fournit l'arbre plat d'une chaîne (onglets et vidéos).
type Lister interface {
	ChannelTree(ctx context.Context, channelURL string) (model.Node, error)
}

// ListError enveloppe un échec du listing de la chaîne.
type ListError struct {
	URL string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("listing de la chaîne %s : %v", e.URL, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// Enumerator transforme une URL de chaîne en liste ordonnée de vidéos uniques.
type Enumerator struct {
	lister Lister
	log    zerolog.Logger
}

func New(lister Lister, logger zerolog.Logger) *Enumerator {
	return &Enumerator{lister: lister, log: logger}
}

// Enumerate liste la chaîne puis aplatit le résultat.
func (e *Enumerator) Enumerate(ctx context.Context, channelURL string) ([]model.VideoRef, error) {
	e.log.Info().Str("url", channelURL).Msg("listing de la chaîne")

	root, err := e.lister.ChannelTree(ctx, channelURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ListError{URL: channelURL, Err: err}
	}

	for _, child := range root.Children {
		if child.Kind != model.NodeGroup {
			continue
		}
		e.log.Info().
			Str("tab", child.Title).
			Int("entries", len(child.Children)).
			Msg("onglet traité")
	}

	refs := Flatten(root)
	if len(refs) == 0 {
		return nil, ErrNoVideos
	}
	e.log.Info().Int("videos", len(refs)).Msg("vidéos uniques trouvées")
	return refs, nil
}

// Flatten parcourt un seul niveau d'imbrication : les vidéos à la racine sont
// prises telles quelles, les groupes apportent leurs vidéos directes et les
// groupes plus profonds sont ignorés. Le premier ID rencontré l'emporte.
func Flatten(root model.Node) []model.VideoRef {
	var refs []model.VideoRef
	seen := make(map[string]struct{})

	add := func(n model.Node) {
		if n.Kind != model.NodeVideo || n.ID == "" {
			return
		}
		if _, dup := seen[n.ID]; dup {
			return
		}
		seen[n.ID] = struct{}{}
		refs = append(refs, model.VideoRef{ID: n.ID, Title: n.Title})
	}

	// une racine feuille est un groupe d'une seule vidéo
	if root.Kind == model.NodeVideo {
		add(root)
		return refs
	}

	for _, child := range root.Children {
		switch child.Kind {
		case model.NodeVideo:
			add(child)
		case model.NodeGroup:
			for _, leaf := range child.Children {
				add(leaf)
			}
		}
	}
	return refs
}
