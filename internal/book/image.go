package book

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"

	"github.com/patrickprogramme/recetario/internal/fsutil"
)

const jpegQuality = 85

// resolveThumbnail retourne le chemin de la miniature à utiliser, ou "" :
// le chemin enregistré s'il existe, sinon le même nom de fichier dans thumbDir.
func resolveThumbnail(stored, thumbDir string) string {
	if stored == "" {
		return ""
	}
	if fsutil.FileExists(stored) {
		return stored
	}
	if thumbDir == "" {
		return ""
	}
	// chemins écrits sous Windows : recetas_output\miniaturas\receta_001.jpg
	base := stored
	if i := lastSeparator(base); i >= 0 {
		base = base[i+1:]
	}
	candidate := filepath.Join(thumbDir, base)
	if fsutil.FileExists(candidate) {
		return candidate
	}
	return ""
}

func lastSeparator(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\\' || s[i] == '/' {
			return i
		}
	}
	return -1
}

// loadJPEG décode l'image (jpeg, png, gif, webp) et la ré-encode en JPEG.
func loadJPEG(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("décodage %s : %w", path, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("ré-encodage %s (%s) : %w", path, format, err)
	}
	return buf.Bytes(), nil
}
