package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.proof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements:\n  s1: p\n"), 0644))

	text, err := New(0).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "statements:\n  s1: p\n", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(0).Load(context.Background(), filepath.Join(t.TempDir(), "nope.proof.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load document")
}

func TestLoadSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.proof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements:\n  s1: p\n"), 0644))

	_, err := New(4).Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	_, err = New(1024).Load(context.Background(), path)
	assert.NoError(t, err)
}
