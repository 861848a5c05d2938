package book

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/patrickprogramme/recetario/internal/config"
	"github.com/patrickprogramme/recetario/pkg/model"
)

const indexBullet = "• "

// Layout assemble le flux du livre : couverture, index, une page par recette.
type Layout struct {
	Text         config.DocumentConfig
	ChannelName  string
	ThumbnailDir string
	Now          time.Time
	Log          zerolog.Logger
}

// SortByTitle retourne une copie triée par titre (ordre des octets, stable).
func SortByTitle(recipes []model.Recipe) []model.Recipe {
	sorted := make([]model.Recipe, len(recipes))
	copy(sorted, recipes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// Story construit le flux pour des recettes déjà triées.
func (l Layout) Story(recipes []model.Recipe) []Element {
	var story []Element
	story = append(story, l.cover(len(recipes))...)
	story = append(story, l.index(recipes)...)
	for i, r := range recipes {
		story = append(story, l.recipePage(i, r)...)
	}
	return story
}

func (l Layout) cover(count int) []Element {
	subtitle := l.Text.CoverSubtitle
	if strings.Contains(subtitle, "%s") {
		subtitle = fmt.Sprintf(subtitle, l.ChannelName)
	}
	pad := 8 * mmPerPt
	return []Element{
		Spacer{Height: pageHeight / 4},
		plain(StyleCoverTitle, l.Text.CoverTitle),
		plain(StyleCoverSubtitle, subtitle),
		Table{
			ColWidths: []float64{3 * mmPerInch, 3 * mmPerInch},
			Padding:   pad,
			Rows: [][]Cell{
				{
					{Text: l.Text.CountLabel, Style: StyleSummary, Align: "R"},
					{Text: strconv.Itoa(count), Style: StyleSummary, Align: "L"},
				},
				{
					{Text: l.Text.DateLabel, Style: StyleSummary, Align: "R"},
					{Text: l.Now.Format(l.Text.DateFormat), Style: StyleSummary, Align: "L"},
				},
			},
		},
		PageBreak{},
	}
}

// indexColumns répartit les titres sur deux colonnes de même longueur :
// la première moitié (arrondie au supérieur) à gauche, le reste à droite,
// complété par des cases vides.
func indexColumns(titles []string) (left, right []string) {
	mid := (len(titles) + 1) / 2
	left = append([]string(nil), titles[:mid]...)
	right = append([]string(nil), titles[mid:]...)
	for len(right) < len(left) {
		right = append(right, "")
	}
	return left, right
}

func (l Layout) index(recipes []model.Recipe) []Element {
	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = indexBullet + displayTitle(r.Title)
	}
	left, right := indexColumns(titles)

	colW := pageWidth/2 - pageMargin - 0.1*mmPerInch
	rows := make([][]Cell, len(left))
	for i := range left {
		rows[i] = []Cell{
			{Text: left[i], Style: StyleIndexEntry},
			{Text: right[i], Style: StyleIndexEntry},
		}
	}
	return []Element{
		plain(StyleIndexTitle, l.Text.IndexTitle),
		Spacer{Height: 0.25 * mmPerInch},
		Table{Rows: rows, ColWidths: []float64{colW, colW}, Padding: 1},
		PageBreak{},
	}
}

// displayTitle remplace un titre vide : seules les cases de remplissage de
// l'index restent blanches.
func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return model.DefaultTitle
	}
	return title
}

func (l Layout) recipePage(i int, r model.Recipe) []Element {
	els := []Element{
		plain(StyleRecipeTitle, displayTitle(r.Title)),
		Spacer{Height: 0.1 * mmPerInch},
	}

	if img, ok := l.thumbnail(i, r); ok {
		els = append(els, img)
	} else {
		els = append(els, Paragraph{Style: StyleSmallHeader, Runs: []Run{{Text: l.Text.Placeholder, Italic: true}}})
	}

	els = append(els, Paragraph{Style: StyleLink, Runs: []Run{
		{Text: l.Text.LinkLabel + " ", Bold: true},
		{Text: r.URL, Link: r.URL},
	}})

	if line := l.metaLine(r); line != "" {
		els = append(els, plain(StyleMeta, line))
	}

	els = append(els, plain(StyleSmallHeader, l.Text.DetailsHeader))
	for _, p := range splitDescription(r.Description) {
		els = append(els, plain(StyleDescription, p))
	}
	return append(els, PageBreak{})
}

func (l Layout) thumbnail(i int, r model.Recipe) (Image, bool) {
	path := resolveThumbnail(r.ThumbnailLocal, l.ThumbnailDir)
	if path == "" {
		if r.ThumbnailLocal != "" {
			l.Log.Warn().Str("miniatura", r.ThumbnailLocal).Msg("miniature introuvable")
		}
		return Image{}, false
	}
	data, err := loadJPEG(path)
	if err != nil {
		l.Log.Warn().Err(err).Str("miniatura", path).Msg("miniature illisible")
		return Image{}, false
	}
	return Image{
		Name:   fmt.Sprintf("thumb-%03d", i+1),
		Data:   data,
		Width:  thumbWidth,
		Height: thumbHeight,
	}, true
}

// metaLine : "Duración: 00:05:12 · Publicado: 31/01/2024", vide si rien à dire.
func (l Layout) metaLine(r model.Recipe) string {
	var parts []string
	if r.Duration > 0 {
		parts = append(parts, l.Text.DurationLabel+" "+r.Duration.TimestampHHMMSS())
	}
	if r.PublishDate != "" {
		date := r.PublishDate
		if t, err := time.Parse("20060102", r.PublishDate); err == nil {
			date = t.Format(l.Text.DateFormat)
		}
		parts = append(parts, l.Text.PublishedLabel+" "+date)
	}
	return strings.Join(parts, " · ")
}
