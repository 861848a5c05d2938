package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPrint(t *testing.T) {
	var out, errOut bytes.Buffer
	term := newTerminal(&out, &errOut, nil)

	term.PrintInfo(context.Background(), "hola")
	term.PrintError(context.Background(), "error")

	assert.Equal(t, "hola\n", out.String())
	assert.Equal(t, "error\n", errOut.String())
}

func TestTerminalCopy(t *testing.T) {
	var out bytes.Buffer
	var copied string
	term := newTerminal(&out, &out, func(s string) error { copied = s; return nil })

	require.NoError(t, term.CopyToClipboard(context.Background(), "Libro_Recetas_20250314.pdf"))
	assert.Equal(t, "Libro_Recetas_20250314.pdf", copied)
	assert.Contains(t, out.String(), "presse-papier")

	failing := newTerminal(&out, &out, func(string) error { return errors.New("no xclip") })
	require.Error(t, failing.CopyToClipboard(context.Background(), "x"))
}

func TestWaitForExitCancelled(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, &out, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, term.WaitForExit(ctx), context.Canceled)
	assert.Contains(t, out.String(), "Ctrl+C")
}
