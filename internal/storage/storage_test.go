package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/straye-as/paint-stock-api/internal/config"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// Storage Interface Tests
// ============================================================================

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewStorage_SelectsByMode(t *testing.T) {
	s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err, "azure mode requires a connection string")

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}

// ============================================================================
// LocalStorage Tests
// ============================================================================

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "blobs")

	_, err := storage.NewLocalStorage(basePath)
	require.NoError(t, err)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_PutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, ls.Put(ctx, "paint-stock-data-v2", []byte(`{"v":1}`)))
	data, err := ls.Get(ctx, "paint-stock-data-v2")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(data))

	require.NoError(t, ls.Put(ctx, "paint-stock-data-v2", []byte(`{"v":2}`)))
	data, err = ls.Get(ctx, "paint-stock-data-v2")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))
}

func TestLocalStorage_NestedKeys(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	ls, err := storage.NewLocalStorage(base)
	require.NoError(t, err)

	require.NoError(t, ls.Put(ctx, "reports/paint-report-week-3.csv", []byte("Color\n")))

	_, err = os.Stat(filepath.Join(base, "reports", "paint-report-week-3.csv"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(base, "reports"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalStorage_GetMissingKey(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = ls.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, ls.Put(ctx, "key", []byte("x")))
	require.NoError(t, ls.Delete(ctx, "key"))

	_, err = ls.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// deleting again is not an error
	assert.NoError(t, ls.Delete(ctx, "key"))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../outside", "a/../../outside"} {
		err := ls.Put(ctx, key, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "key %q", key)
	}
}
