package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "datos", "recetas.json")

	require.NoError(t, WriteFileAtomic(dest, []byte(`[]`), 0o644))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
	assert.True(t, FileExists(dest))
}

func TestWriteAtomicFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "libro.pdf")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteAtomic(dest, 0o644, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FileExists(""))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "nope.jpg")))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "fallback"},
		{"Libro_Recetas", "Libro_Recetas"},
		{"Libro de recetas: 2025", "Libro_de_recetas_2025"},
		{`a/b\\c`, "a_b_c"},
		{"...", "fallback"},
		{"Recetas de la abuela ñ", "Recetas_de_la_abuela_ñ"},
		{strings.Repeat("é", 100), strings.Repeat("é", 60)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in, "fallback"), tt.in)
	}
}
