package yt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/recetario/internal/channel"
	"github.com/patrickprogramme/recetario/pkg/model"
)

const sampleChannel = `{
  "_type": "playlist",
  "id": "UCabcdefghijklmnopqrstuv",
  "title": "Bebepiskóta",
  "entries": [
    {"_type": "playlist", "id": "tab-videos", "title": "Bebepiskóta - Videos", "entries": [
      {"_type": "url", "id": "vid1", "title": "Flan casero"},
      null,
      {"_type": "url", "id": "vid2", "title": "Tarta de queso"}
    ]},
    {"_type": "playlist", "id": "tab-shorts", "title": "Bebepiskóta - Shorts", "entries": [
      {"_type": "url", "id": "vid2", "title": "Tarta de queso"},
      {"_type": "url", "id": "short1", "title": "Churros"}
    ]},
    {"_type": "url", "id": "loose", "title": "Sopa"}
  ]
}`

func TestParseChannel(t *testing.T) {
	root, err := ParseChannel([]byte(sampleChannel))
	require.NoError(t, err)

	want := model.Node{
		Kind:  model.NodeGroup,
		ID:    "UCabcdefghijklmnopqrstuv",
		Title: "Bebepiskóta",
		Children: []model.Node{
			{Kind: model.NodeGroup, ID: "tab-videos", Title: "Bebepiskóta - Videos", Children: []model.Node{
				model.Video("vid1", "Flan casero"),
				model.Video("vid2", "Tarta de queso"),
			}},
			{Kind: model.NodeGroup, ID: "tab-shorts", Title: "Bebepiskóta - Shorts", Children: []model.Node{
				model.Video("vid2", "Tarta de queso"),
				model.Video("short1", "Churros"),
			}},
			model.Video("loose", "Sopa"),
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Fatalf("ParseChannel() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChannelFlatVideosTab(t *testing.T) {
	root, err := ParseChannel([]byte(`{"_type":"playlist","title":"Videos","entries":[{"id":"a"},{"id":"b"}]}`))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, model.NodeVideo, root.Children[0].Kind)
}

func TestParseChannelBareVideoRoot(t *testing.T) {
	root, err := ParseChannel([]byte(`{"_type":"video","id":"abc","title":"Flan"}`))
	require.NoError(t, err)
	assert.Equal(t, model.NodeVideo, root.Kind)

	refs := channel.Flatten(root)
	assert.Equal(t, []model.VideoRef{{ID: "abc", Title: "Flan"}}, refs)
}

func TestParseChannelInvalid(t *testing.T) {
	_, err := ParseChannel([]byte(`{"entries": [`))
	require.Error(t, err)
}

func TestParseVideo(t *testing.T) {
	raw := `{"id":"vid1","title":"Flan casero","description":"Ingredientes:\n- 4 huevos","duration":312.4,"upload_date":"20240131","thumbnail":"https://i.ytimg.com/vi/vid1/maxresdefault.webp"}`
	meta, err := ParseVideo([]byte(raw))
	require.NoError(t, err)

	r := model.NewRecipe(1, meta.ID, meta)
	assert.Equal(t, "Flan casero", r.Title)
	assert.Equal(t, "Ingredientes:\n- 4 huevos", r.Description)
	assert.Equal(t, model.Seconds(312), r.Duration)
	assert.Equal(t, "20240131", r.PublishDate)
	assert.Equal(t, "https://i.ytimg.com/vi/vid1/maxresdefault.webp", r.ThumbnailURL)
}

func TestParseVideoMissingAndNullFields(t *testing.T) {
	meta, err := ParseVideo([]byte(`{"id":"x","title":null}`))
	require.NoError(t, err)
	assert.Nil(t, meta.Title)
	assert.Nil(t, meta.Description)
	assert.Nil(t, meta.Thumbnail)
}

func TestParseVideoFallsBackToThumbnailList(t *testing.T) {
	raw := `{"id":"x","thumbnails":[
		{"url":"https://i.ytimg.com/small.jpg","width":120,"height":90},
		{"url":"https://i.ytimg.com/big.jpg","width":1280,"height":720},
		{"url":"https://i.ytimg.com/unknown.jpg"}
	]}`
	meta, err := ParseVideo([]byte(raw))
	require.NoError(t, err)
	require.NotNil(t, meta.Thumbnail)
	assert.Equal(t, "https://i.ytimg.com/big.jpg", *meta.Thumbnail)
}
