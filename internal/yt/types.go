package yt

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type ytdlpThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ytdlpVideo représente la sortie JSON brute de `yt-dlp -j` pour une vidéo.
// Les pointeurs distinguent un champ absent (ou null) d'un champ vide.
type ytdlpVideo struct {
	ID          string           `json:"id"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Duration    *float64         `json:"duration"`
	UploadDate  *string          `json:"upload_date"`
	Thumbnail   *string          `json:"thumbnail"`
	Thumbnails  []ytdlpThumbnail `json:"thumbnails"`
}

// ytdlpEntry représente un élément de `yt-dlp -J --flat-playlist`.
// Une chaîne renvoie des onglets (_type "playlist") qui contiennent des vidéos
// (_type "url"), ou directement des vidéos selon l'URL passée.
type ytdlpEntry struct {
	Type    string        `json:"_type"`
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	URL     string        `json:"url"`
	Entries []*ytdlpEntry `json:"entries"`
}

func (e *ytdlpEntry) isGroup() bool {
	return e.Type == "playlist" || e.Entries != nil
}

// ExtractedRaw contient le JSON raw, une liste de lignes d'avertissements
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// WarningsText joint les avertissements de yt-dlp sur une ligne.
func (r *ExtractedRaw) WarningsText() string {
	return strings.Join(r.Warnings, " | ")
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
	Log    zerolog.Logger // avertissements de yt-dlp (stderr)
}

func (y YtDlp) String() string {
	return fmt.Sprintf("YtDlp(name=%s, path=%s)", y.Name, y.Path)
}

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}
