package fsutil

import (
	"fmt"
	"io"
	"os"
)

// FileExists renvoie true si path existe et est un fichier régulier.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir crée le répertoire (et ses parents) s'il n'existe pas.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic écrit data dans destPath de manière atomique : écriture dans
// un fichier temporaire du même répertoire, fsync, puis rename.
// Crée les répertoires parents si nécessaire.
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	return WriteAtomic(destPath, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
