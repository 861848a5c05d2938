package yt

import (
	"context"

	"github.com/patrickprogramme/recetario/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)

	// ChannelTree liste une chaîne en mode plat (aucune vidéo résolue).
	ChannelTree(ctx context.Context, channelURL string) (model.Node, error)
	// VideoMeta récupère les métadonnées détaillées d'une vidéo.
	VideoMeta(ctx context.Context, id string) (*model.VideoMeta, error)
}

var _ Interface = (*YtDlp)(nil)
