package ui

import (
	"context"
)

// Interface regroupe les échanges avec l'opérateur.
type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// CopyToClipboard copie text ; un échec est signalé mais jamais fatal.
	CopyToClipboard(ctx context.Context, text string) error

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error
}
