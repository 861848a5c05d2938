package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAllRejectsEmpty(t *testing.T) {
	require.ErrorIs(t, WriteAll(""), ErrEmpty)
	require.ErrorIs(t, CopyVerified(""), ErrEmpty)
}
