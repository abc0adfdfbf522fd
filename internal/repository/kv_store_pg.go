package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mypage/profilehub/internal/model"
)

type pgKVStore struct {
	db *gorm.DB
}

func NewPGKVStore(db *gorm.DB) KVStore {
	return &pgKVStore{db: db}
}

func (r *pgKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KVEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (r *pgKVStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).
		Error
	if isPGCapacity(err) {
		return fmt.Errorf("set %q: %w: %w", key, err, ErrQuotaExceeded)
	}
	return err
}

func (r *pgKVStore) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{}).Error
}

func (r *pgKVStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.WithContext(ctx).Model(&model.KVEntry{}).Order("key").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// isPGCapacity reports disk_full (53100) and program_limit_exceeded (54000).
func isPGCapacity(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "53100" || pgErr.Code == "54000"
}
