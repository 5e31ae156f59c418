package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtZero(t *testing.T) {
	seq := NewSequence(filepath.Join(t.TempDir(), "ultima_factura.txt"))
	current, err := seq.Current(context.Background())
	require.NoError(t, err)
	require.Zero(t, current)
}

func TestSequenceNextPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ultima_factura.txt")
	seq := NewSequence(path)

	n, err := seq.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = seq.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// A fresh instance picks up the persisted counter.
	n, err = NewSequence(path).Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestSequenceRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ultima_factura.txt")
	require.NoError(t, os.WriteFile(path, []byte("forty-one\n"), 0o644))

	_, err := NewSequence(path).Current(context.Background())
	require.Error(t, err)
}
