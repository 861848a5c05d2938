package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/patrickprogramme/recetario/internal/clipboard"
)

type terminalUI struct {
	out    io.Writer
	errOut io.Writer
	copy   func(string) error
}

// NewTerminal écrit sur stdout/stderr et utilise le presse-papier système.
func NewTerminal() Interface {
	return newTerminal(os.Stdout, os.Stderr, clipboard.CopyVerified)
}

func newTerminal(out, errOut io.Writer, copyFn func(string) error) *terminalUI {
	return &terminalUI{out: out, errOut: errOut, copy: copyFn}
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Fprintln(t.out, "\n\nAppuyez sur Ctrl+C pour quitter.")

	// Prépare le canal pour les signaux d'interruption
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

func (t *terminalUI) CopyToClipboard(ctx context.Context, text string) error {
	if err := t.copy(text); err != nil {
		return fmt.Errorf("copie dans le presse-papier : %w", err)
	}
	t.PrintInfo(ctx, "📋 Chemin copié dans le presse-papier.")
	return nil
}
