//go:build windows

package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic : renameio n'est pas disponible sous Windows, on passe par un
// temporaire du même dossier puis os.Rename (best-effort).
func WriteAtomic(destPath string, perm os.FileMode, fill func(w io.Writer) error) error {
	if fill == nil {
		return errors.New("fsutil: fill func is nil")
	}
	dir := filepath.Dir(destPath)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// cleanup si échec
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := fill(tmp); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	_ = os.Chmod(tmpName, perm)

	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename tmp -> dest: %w", err)
	}
	return nil
}
