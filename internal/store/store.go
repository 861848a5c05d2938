// Package store persiste la collection de recettes au format JSON.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/patrickprogramme/recetario/internal/fsutil"
	"github.com/patrickprogramme/recetario/pkg/model"
)

var (
	ErrEmptyCollection = errors.New("collection vide")
	ErrNotFound        = errors.New("collection introuvable")
	ErrCorrupt         = errors.New("collection illisible")
)

// Save écrit recipes dans path en une seule fois (JSON indenté, UTF-8 brut).
// Une collection vide n'est pas écrite.
func Save(path string, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return ErrEmptyCollection
	}
	return fsutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, recipes)
	})
}

// Encode sérialise recipes sans échappement HTML, indentation 2 espaces.
func Encode(w io.Writer, recipes []model.Recipe) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(recipes)
}

// Load relit la collection persistée.
func Load(path string) ([]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w : %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("lecture %s : %w", path, err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("%w : %s : %v", ErrCorrupt, path, err)
	}
	return recipes, nil
}
