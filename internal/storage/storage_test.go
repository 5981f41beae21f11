package storage

import (
	"context"
	"path/filepath"
	"testing"

	"thesaurusrex/internal/config"
	"thesaurusrex/internal/repository"
	"thesaurusrex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Badger(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.DriverBadger,
		BadgerPath: filepath.Join(t.TempDir(), "kv"),
	}}

	store, err := Open(cfg, 1, testutil.NewTestLogger())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.KV.Set(ctx, 1, "k", []byte(`true`)))

	value, err := store.KV.Get(ctx, 1, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`true`), value)

	// badger compaction is reachable through the wrapper
	_, ok := store.KV.(repository.Compactor)
	assert.True(t, ok)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}

	store, err := Open(cfg, 1, testutil.NewTestLogger())
	assert.Error(t, err)
	assert.Nil(t, store)
}
