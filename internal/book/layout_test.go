package book

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/recetario/internal/config"
	"github.com/patrickprogramme/recetario/pkg/model"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	for x := 0; x < 16; x++ {
		img.Set(x, 4, color.RGBA{R: 0x8b, G: 0x57, B: 0x2a, A: 0xff})
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testLayout(thumbDir string) Layout {
	return Layout{
		Text:         config.Default().Document,
		ChannelName:  "@bebepiskota2913",
		ThumbnailDir: thumbDir,
		Now:          time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Log:          zerolog.Nop(),
	}
}

func paragraphs(story []Element, style string) []string {
	var out []string
	for _, el := range story {
		if p, ok := el.(Paragraph); ok && p.Style == style {
			out = append(out, p.Text())
		}
	}
	return out
}

func countImages(story []Element) int {
	n := 0
	for _, el := range story {
		if _, ok := el.(Image); ok {
			n++
		}
	}
	return n
}

func TestSortByTitle(t *testing.T) {
	in := []model.Recipe{
		{Number: 1, Title: "Banana Bread"},
		{Number: 2, Title: "apple crumble"},
		{Number: 3, Title: "Apple Pie"},
		{Number: 4, Title: ""},
	}
	got := SortByTitle(in)

	titles := make([]string, len(got))
	for i, r := range got {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{"", "Apple Pie", "Banana Bread", "apple crumble"}, titles)
	// l'entrée n'est pas modifiée
	assert.Equal(t, "Banana Bread", in[0].Title)
}

func TestIndexColumns(t *testing.T) {
	tests := []struct {
		name        string
		titles      []string
		left, right []string
	}{
		{"five pads one", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, []string{"d", "e", ""}},
		{"even", []string{"a", "b", "c", "d"}, []string{"a", "b"}, []string{"c", "d"}},
		{"single", []string{"a"}, []string{"a"}, []string{""}},
		{"none", nil, []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := indexColumns(tt.titles)
			assert.Equal(t, len(left), len(right))
			assert.Equal(t, len(tt.left), len(left))
			for i := range tt.left {
				assert.Equal(t, tt.left[i], left[i])
				assert.Equal(t, tt.right[i], right[i])
			}
		})
	}
}

func TestStoryIndexTableOddCount(t *testing.T) {
	recipes := []model.Recipe{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}, {Title: "e"}}
	story := testLayout("").Story(recipes)

	var index *Table
	for _, el := range story {
		if tb, ok := el.(Table); ok && len(tb.Rows) > 0 && tb.Rows[0][0].Style == StyleIndexEntry {
			index = &tb
			break
		}
	}
	require.NotNil(t, index)
	require.Len(t, index.Rows, 3)
	assert.Equal(t, "• c", index.Rows[2][0].Text)
	assert.Equal(t, "", index.Rows[2][1].Text)
}

func TestStoryIndexEmptyTitleKeepsEntry(t *testing.T) {
	recipes := SortByTitle([]model.Recipe{{Title: ""}, {Title: "Flan"}, {Title: "Tarta"}})
	story := testLayout("").Story(recipes)

	var index *Table
	for _, el := range story {
		if tb, ok := el.(Table); ok && len(tb.Rows) > 0 && tb.Rows[0][0].Style == StyleIndexEntry {
			index = &tb
			break
		}
	}
	require.NotNil(t, index)
	require.Len(t, index.Rows, 2)
	assert.Equal(t, "• "+model.DefaultTitle, index.Rows[0][0].Text)
	assert.Equal(t, "• Flan", index.Rows[1][0].Text)
	assert.Equal(t, "• Tarta", index.Rows[0][1].Text)
	// seule la case de remplissage reste vide
	assert.Equal(t, "", index.Rows[1][1].Text)

	assert.Contains(t, paragraphs(story, StyleRecipeTitle), model.DefaultTitle)
}

func TestStoryOrderAndPlaceholder(t *testing.T) {
	l := testLayout(t.TempDir())
	recipes := SortByTitle([]model.Recipe{
		{Number: 1, Title: "Banana Bread", URL: model.WatchURL("b"), Description: "Plátanos\n\nHarina"},
		{Number: 2, Title: "Apple Pie", URL: model.WatchURL("a"), ThumbnailLocal: ""},
	})
	story := l.Story(recipes)

	assert.Equal(t, []string{"Apple Pie", "Banana Bread"}, paragraphs(story, StyleRecipeTitle))
	assert.Equal(t, []string{"Plátanos", "Harina"}, paragraphs(story, StyleDescription))
	assert.Equal(t, 0, countImages(story))

	placeholders := 0
	for _, el := range story {
		if p, ok := el.(Paragraph); ok && p.Text() == l.Text.Placeholder {
			placeholders++
			assert.True(t, p.Runs[0].Italic)
		}
	}
	assert.Equal(t, 2, placeholders)

	// cover + index + 2 recettes, sans saut final superflu
	breaks := 0
	for _, el := range story {
		if _, ok := el.(PageBreak); ok {
			breaks++
		}
	}
	assert.Equal(t, 4, breaks)
	_, last := story[len(story)-1].(PageBreak)
	assert.True(t, last)
}

func TestStoryLinkParagraph(t *testing.T) {
	url := model.WatchURL("vid1")
	story := testLayout("").Story([]model.Recipe{{Title: "Sopa", URL: url}})

	var link *Paragraph
	for _, el := range story {
		if p, ok := el.(Paragraph); ok && p.Style == StyleLink {
			link = &p
		}
	}
	require.NotNil(t, link)
	require.Len(t, link.Runs, 2)
	assert.True(t, link.Runs[0].Bold)
	assert.Equal(t, url, link.Runs[1].Link)
	assert.Equal(t, url, link.Runs[1].Text)
}

func TestCoverSubtitleAndSummary(t *testing.T) {
	story := testLayout("").Story([]model.Recipe{{Title: "x"}, {Title: "y"}})

	assert.Equal(t, []string{"Recetas del canal de YouTube @bebepiskota2913"}, paragraphs(story, StyleCoverSubtitle))
	summary, ok := story[3].(Table)
	require.True(t, ok)
	assert.Equal(t, "2", summary.Rows[0][1].Text)
	assert.Equal(t, "14/03/2025", summary.Rows[1][1].Text)
}

func TestThumbnailResolution(t *testing.T) {
	thumbDir := filepath.Join(t.TempDir(), "miniaturas")
	writePNG(t, filepath.Join(thumbDir, "receta_001.png"))
	l := testLayout(thumbDir)

	t.Run("stored path exists", func(t *testing.T) {
		story := l.Story([]model.Recipe{{Title: "a", ThumbnailLocal: filepath.Join(thumbDir, "receta_001.png")}})
		assert.Equal(t, 1, countImages(story))
	})
	t.Run("stale path falls back to thumbnail dir", func(t *testing.T) {
		story := l.Story([]model.Recipe{{Title: "a", ThumbnailLocal: `C:\old\recetas_output\miniaturas\receta_001.png`}})
		assert.Equal(t, 1, countImages(story))
	})
	t.Run("missing file gives placeholder", func(t *testing.T) {
		story := l.Story([]model.Recipe{{Title: "a", ThumbnailLocal: "nowhere/receta_009.jpg"}})
		assert.Equal(t, 0, countImages(story))
	})
	t.Run("undecodable file gives placeholder", func(t *testing.T) {
		bad := filepath.Join(thumbDir, "receta_002.jpg")
		require.NoError(t, os.WriteFile(bad, []byte("<html>not an image</html>"), 0o644))
		story := l.Story([]model.Recipe{{Title: "a", ThumbnailLocal: bad}})
		assert.Equal(t, 0, countImages(story))
	})
}

func TestMetaLine(t *testing.T) {
	l := testLayout("")

	assert.Equal(t, "", l.metaLine(model.Recipe{}))
	assert.Equal(t, "Duración: 00:05:12 · Publicado: 31/01/2024",
		l.metaLine(model.Recipe{Duration: 312, PublishDate: "20240131"}))
	assert.Equal(t, "Publicado: enero 2024", l.metaLine(model.Recipe{PublishDate: "enero 2024"}))
}
