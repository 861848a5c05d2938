package yt

import (
	"encoding/json"
	"fmt"

	"github.com/patrickprogramme/recetario/pkg/model"
)

// ParseVideo transforme le JSON brut de `yt-dlp -j` en model.VideoMeta.
func ParseVideo(raw []byte) (*model.VideoMeta, error) {
	var y ytdlpVideo
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.VideoMeta{
		ID:          y.ID,
		Title:       y.Title,
		Description: y.Description,
		Duration:    y.Duration,
		UploadDate:  y.UploadDate,
		Thumbnail:   y.Thumbnail,
	}

	// pas de champ thumbnail : on prend la plus grande de la liste
	if meta.Thumbnail == nil || *meta.Thumbnail == "" {
		if best := bestThumbnail(y.Thumbnails); best != "" {
			meta.Thumbnail = &best
		}
	}
	return meta, nil
}

// bestThumbnail retourne l'URL de la miniature de plus haute résolution.
// À résolution égale (ou inconnue), la dernière de la liste gagne : yt-dlp les
// trie par préférence croissante.
func bestThumbnail(thumbs []ytdlpThumbnail) string {
	var best ytdlpThumbnail
	for _, t := range thumbs {
		if t.URL == "" {
			continue
		}
		if t.Width*t.Height >= best.Width*best.Height {
			best = t
		}
	}
	return best.URL
}

// ParseChannel transforme le JSON brut de `yt-dlp -J --flat-playlist` en arbre.
// Une URL de vidéo donne une racine feuille, que channel.Flatten traite comme
// un groupe d'une seule vidéo.
func ParseChannel(raw []byte) (model.Node, error) {
	var root ytdlpEntry
	if err := json.Unmarshal(raw, &root); err != nil {
		return model.Node{}, fmt.Errorf("unmarshal ytdlp playlist: %w", err)
	}
	return toNode(&root), nil
}

func toNode(e *ytdlpEntry) model.Node {
	if !e.isGroup() {
		return model.Video(e.ID, e.Title)
	}
	g := model.Group(e.Title)
	g.ID = e.ID
	for _, child := range e.Entries {
		// yt-dlp peut renvoyer null pour une entrée indisponible
		if child == nil {
			continue
		}
		g.Children = append(g.Children, toNode(child))
	}
	return g
}
