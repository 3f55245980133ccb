package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSnapshotRepo(t *testing.T) *repository.SnapshotRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // each :memory: connection is its own database
	require.NoError(t, db.AutoMigrate(&domain.SnapshotRecord{}))
	return repository.NewSnapshotRepository(db)
}

func TestSnapshotRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Put(ctx, "paint-stock-data-v2", []byte(`{"a":1}`)))

	data, err := repo.Get(ctx, "paint-stock-data-v2")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestSnapshotRepository_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Put(ctx, "k", []byte("first")))
	first, err := repo.UpdatedAt(ctx, "k")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.Put(ctx, "k", []byte("second")))

	data, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	second, err := repo.UpdatedAt(ctx, "k")
	require.NoError(t, err)
	assert.False(t, second.Before(first))
}

func TestSnapshotRepository_GetMissing(t *testing.T) {
	repo := setupSnapshotRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.UpdatedAt(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Put(ctx, "k", []byte("x")))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "k"))
}
