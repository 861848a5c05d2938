package channel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/recetario/pkg/model"
)

type fakeLister struct {
	root  model.Node
	err   error
	calls int
}

func (f *fakeLister) ChannelTree(_ context.Context, _ string) (model.Node, error) {
	f.calls++
	return f.root, f.err
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		root model.Node
		want []model.VideoRef
	}{
		{
			name: "dedup across tabs keeps first occurrence",
			root: model.Group("chaîne",
				model.Group("Videos", model.Video("a", "A"), model.Video("b", "B")),
				model.Group("Shorts", model.Video("b", "B short"), model.Video("c", "C")),
			),
			want: []model.VideoRef{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}},
		},
		{
			name: "bare entries at top level",
			root: model.Group("chaîne", model.Video("x", ""), model.Video("y", "Y")),
			want: []model.VideoRef{{ID: "x"}, {ID: "y", Title: "Y"}},
		},
		{
			name: "deeper groups are ignored",
			root: model.Group("chaîne",
				model.Group("Playlists",
					model.Video("a", "A"),
					model.Group("Nested", model.Video("deep", "Deep")),
				),
			),
			want: []model.VideoRef{{ID: "a", Title: "A"}},
		},
		{
			name: "entries without id are skipped",
			root: model.Group("chaîne", model.Video("", "orphan"), model.Group("Videos", model.Video("", "no id"), model.Video("z", "Z"))),
			want: []model.VideoRef{{ID: "z", Title: "Z"}},
		},
		{
			name: "leaf root is a one-video group",
			root: model.Video("solo", "Solo"),
			want: []model.VideoRef{{ID: "solo", Title: "Solo"}},
		},
		{
			name: "empty channel",
			root: model.Group("chaîne"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.root)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumerateLogsTabs(t *testing.T) {
	var buf bytes.Buffer
	lister := &fakeLister{root: model.Group("chaîne",
		model.Group("Videos", model.Video("a", "A")),
		model.Group("Shorts", model.Video("a", "A"), model.Video("b", "B")),
	)}

	e := New(lister, zerolog.New(&buf))
	refs, err := e.Enumerate(context.Background(), "https://youtube.com/@x")
	require.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, 1, lister.calls)
	assert.Contains(t, buf.String(), `"tab":"Videos"`)
	assert.Contains(t, buf.String(), `"tab":"Shorts"`)
	assert.Contains(t, buf.String(), `"videos":2`)
}

func TestEnumerateListerFailure(t *testing.T) {
	boom := errors.New("HTTP Error 404")
	e := New(&fakeLister{err: boom}, zerolog.Nop())

	_, err := e.Enumerate(context.Background(), "https://youtube.com/@missing")
	var le *ListError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "https://youtube.com/@missing", le.URL)
	assert.ErrorIs(t, err, boom)
}

func TestEnumerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New(&fakeLister{err: errors.New("killed")}, zerolog.Nop())

	_, err := e.Enumerate(ctx, "https://youtube.com/@x")
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnumerateEmpty(t *testing.T) {
	e := New(&fakeLister{root: model.Group("chaîne", model.Group("Videos"))}, zerolog.Nop())

	refs, err := e.Enumerate(context.Background(), "https://youtube.com/@empty")
	require.ErrorIs(t, err, ErrNoVideos)
	assert.Empty(t, refs)
}
