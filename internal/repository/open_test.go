package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mypage/profilehub/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), config.StorageConfig{Backend: "memory", QuotaBytes: 16})
	require.NoError(t, err)
	defer closeFn()

	assert.ErrorIs(t, s.Set(context.Background(), "profile", make([]byte, 32)), ErrQuotaExceeded)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := config.StorageConfig{Backend: "sqlite"}
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "kv.db")

	s, closeFn, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, s.Set(context.Background(), "news", []byte(`[]`)))
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), config.StorageConfig{Backend: "etcd"})
	assert.Error(t, err)
}

func TestOpenPG_MigrationFailureReleasesPool(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "pool.db"))
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = openPG(ctx, db, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto-migrate")
	assert.Error(t, sqlDB.Ping(), "pool must be closed after a failed migration")
}
