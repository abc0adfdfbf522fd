package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mypage/profilehub/internal/config"
	"mypage/profilehub/internal/model"
)

// Open builds the KVStore selected by cfg.Backend, wrapped with the byte quota
// when cfg.QuotaBytes > 0. The returned closer releases backend connections.
func Open(ctx context.Context, cfg config.StorageConfig) (KVStore, func() error, error) {
	var (
		store  KVStore
		closer = func() error { return nil }
	)

	switch cfg.Backend {
	case "memory":
		store = NewMemoryKVStore()
	case "sqlite":
		s, c, err := NewSQLiteKVStore(cfg.SQLite.Path, cfg.SQLite.MaxPageCount)
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, c
	case "redis":
		client, err := config.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store, closer = NewRedisKVStore(client, cfg.Redis.KeyPrefix), client.Close
	case "postgres":
		db, err := config.NewPostgresDB(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		s, c, err := openPG(ctx, db, cfg.Postgres.AutoMigrate)
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, c
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	return NewQuotaKVStore(store, cfg.QuotaBytes), closer, nil
}

// openPG prepares db for use as a KVStore. On failure the connection pool is
// released before returning.
func openPG(ctx context.Context, db *gorm.DB, migrate bool) (KVStore, func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if migrate {
		if err := model.AutoMigrate(db.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}
	return NewPGKVStore(db), sqlDB.Close, nil
}
