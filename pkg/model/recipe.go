package model

import (
	"fmt"
	"math"
	"strings"
)

const baseYtURL = "https://www.youtube.com/watch?v="

// Valeurs par défaut appliquées quand la source ne fournit pas le champ.
const (
	DefaultTitle       = "Sin título"
	DefaultDescription = "Sin descripción"
)

// VideoMeta regroupe les métadonnées détaillées d'une vidéo telles que fournies
// par la source. Un pointeur nil signifie "champ absent".
type VideoMeta struct {
	ID          string
	Title       *string
	Description *string
	Duration    *float64
	UploadDate  *string
	Thumbnail   *string
}

// Recipe est l'enregistrement persisté, une par vidéo.
// Les clés JSON sont celles du fichier recetas.json historique.
type Recipe struct {
	Number         int     `json:"numero"`
	Title          string  `json:"titulo"`
	Description    string  `json:"descripcion"`
	URL            string  `json:"url"`
	Duration       Seconds `json:"duracion"`
	PublishDate    string  `json:"fecha_publicacion"`
	ThumbnailURL   string  `json:"miniatura_url"`
	ThumbnailLocal string  `json:"miniatura_local"`
}

// WatchURL construit l'URL canonique de la page de la vidéo.
func WatchURL(id string) string {
	return baseYtURL + id
}

// NewRecipe applique le mapping champ optionnel -> champ normalisé.
// number est la position 1-based parmi les recettes construites avec succès.
// ThumbnailLocal reste vide : il est renseigné après le téléchargement.
func NewRecipe(number int, id string, m *VideoMeta) Recipe {
	if m == nil {
		m = &VideoMeta{}
	}
	return Recipe{
		Number:       number,
		Title:        stringOr(m.Title, DefaultTitle),
		Description:  stringOr(m.Description, DefaultDescription),
		URL:          WatchURL(id),
		Duration:     secondsOr(m.Duration, 0),
		PublishDate:  stringOr(m.UploadDate, ""),
		ThumbnailURL: strings.TrimSpace(stringOr(m.Thumbnail, "")),
	}
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func secondsOr(p *float64, def Seconds) Seconds {
	if p == nil || math.IsNaN(*p) || *p < 0 {
		return def
	}
	return Seconds(math.Round(*p))
}

// HasThumbnail indique si une miniature locale a été enregistrée.
func (r Recipe) HasThumbnail() bool {
	return r.ThumbnailLocal != ""
}

func (r Recipe) String() string {
	return fmt.Sprintf("Recipe[#%d, Title=%q, URL=%s, Duration=%s, Thumbnail=%t]",
		r.Number, r.Title, r.URL, r.Duration.TimestampHHMMSS(), r.HasThumbnail())
}
