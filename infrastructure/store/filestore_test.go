package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "studio.json"))

	payload, err := fs.Get(context.Background())

	// Arquivo ausente é primeiro acesso, não erro
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFileStore_SetThenGet(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "studio.json"))

	doc := []byte(`{"schemaVersion":1,"nextId":1}`)
	require.NoError(t, fs.Set(context.Background(), doc))

	payload, err := fs.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, doc, payload)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "studio.json"))

	require.NoError(t, fs.Set(context.Background(), []byte(`{"nextId":1}`)))
	require.NoError(t, fs.Set(context.Background(), []byte(`{"nextId":7}`)))

	payload, err := fs.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte(`{"nextId":7}`), payload)
}

func TestFileStore_SetCreatesParentDirectory(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "data", "studio.json"))

	require.NoError(t, fs.Set(context.Background(), []byte(`{}`)))

	payload, err := fs.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), payload)
}
