package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/straye-as/paint-stock-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository stores keyed blobs as rows of the snapshots table.
// It satisfies storage.Storage so the store can run against a SQL database.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Put inserts or replaces the row for key
func (r *SnapshotRepository) Put(ctx context.Context, key string, data []byte) error {
	record := domain.SnapshotRecord{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// Get returns the blob stored under key
func (r *SnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var record domain.SnapshotRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return record.Data, nil
}

// Delete removes the row for key; a missing row is not an error
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).Delete(&domain.SnapshotRecord{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written
func (r *SnapshotRepository) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var record domain.SnapshotRecord
	err := r.db.WithContext(ctx).Select("key", "updated_at").First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, key)
		}
		return time.Time{}, err
	}
	return record.UpdatedAt, nil
}
