//go:build !windows

package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteAtomic ouvre un fichier en attente pour destPath, laisse fill écrire
// dedans, puis remplace la destination. Si fill échoue, la destination n'est
// pas touchée et le temporaire est supprimé.
func WriteAtomic(destPath string, perm os.FileMode, fill func(w io.Writer) error) (err error) {
	if fill == nil {
		return errors.New("fsutil: fill func is nil")
	}
	dir := filepath.Dir(destPath)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(destPath, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", destPath, err)
	}
	// Cleanup est sans effet après un CloseAtomicallyReplace réussi
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("cleanup pending file %s: %w", destPath, cerr)
		}
	}()

	if err := fill(pending); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", destPath, err)
	}
	return nil
}
