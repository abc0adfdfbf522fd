package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mypage/profilehub/internal/model"
)

// exerciseKVStore runs the contract every backend must satisfy.
func exerciseKVStore(t *testing.T, s KVStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "profile")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "profile", []byte(`{"name":"Иван"}`)))
	require.NoError(t, s.Set(ctx, "posts", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "profile", []byte(`{"name":"Пётр"}`)))

	value, ok, err := s.Get(ctx, "profile")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"name":"Пётр"}`, string(value))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"posts", "profile"}, keys)

	require.NoError(t, s.Remove(ctx, "posts"))
	require.NoError(t, s.Remove(ctx, "never-set"))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"profile"}, keys)
}

func TestMemoryKVStore(t *testing.T) {
	exerciseKVStore(t, NewMemoryKVStore())
}

func TestMemoryKVStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()
	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'x'

	got, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteKVStore(t *testing.T) {
	s, closeFn, err := NewSQLiteKVStore(filepath.Join(t.TempDir(), "nested", "kv.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { closeFn() })

	exerciseKVStore(t, s)
}

func TestSQLiteKVStore_FullMapsToQuota(t *testing.T) {
	ctx := context.Background()
	s, closeFn, err := NewSQLiteKVStore(filepath.Join(t.TempDir(), "kv.db"), 8)
	require.NoError(t, err)
	t.Cleanup(func() { closeFn() })

	err = s.Set(ctx, "photos", make([]byte, 1<<20))
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestQuotaKVStore(t *testing.T) {
	exerciseKVStore(t, NewQuotaKVStore(NewMemoryKVStore(), 1<<10))
}

func TestQuotaKVStore_RejectsOverflow(t *testing.T) {
	ctx := context.Background()
	s := NewQuotaKVStore(NewMemoryKVStore(), 20)

	require.NoError(t, s.Set(ctx, "a", make([]byte, 9))) // 10 bytes
	require.NoError(t, s.Set(ctx, "b", make([]byte, 9))) // 20 bytes
	assert.ErrorIs(t, s.Set(ctx, "c", []byte("x")), ErrQuotaExceeded)

	// overwriting counts only the new size
	require.NoError(t, s.Set(ctx, "a", make([]byte, 4)))
	require.NoError(t, s.Set(ctx, "c", make([]byte, 4)))

	_, ok, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.True(t, ok)
}

// countingKVStore records how often the quota wrapper reads through.
type countingKVStore struct {
	KVStore
	gets, keys int
}

func (c *countingKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	return c.KVStore.Get(ctx, key)
}

func (c *countingKVStore) Keys(ctx context.Context) ([]string, error) {
	c.keys++
	return c.KVStore.Keys(ctx)
}

func TestQuotaKVStore_MeasuresOnce(t *testing.T) {
	ctx := context.Background()
	inner := &countingKVStore{KVStore: NewMemoryKVStore()}
	require.NoError(t, inner.KVStore.Set(ctx, "draft", make([]byte, 5))) // 10 bytes, written before wrapping
	s := NewQuotaKVStore(inner, 30)

	require.NoError(t, s.Set(ctx, "a", make([]byte, 9))) // 20 bytes
	require.NoError(t, s.Set(ctx, "a", make([]byte, 4))) // 15 bytes
	require.NoError(t, s.Set(ctx, "b", make([]byte, 9))) // 25 bytes
	assert.Equal(t, 1, inner.keys)
	assert.Equal(t, 1, inner.gets)

	assert.ErrorIs(t, s.Set(ctx, "c", make([]byte, 9)), ErrQuotaExceeded)

	// removing frees its share of the budget
	require.NoError(t, s.Remove(ctx, "draft"))
	require.NoError(t, s.Set(ctx, "c", make([]byte, 9))) // 25 bytes
	assert.ErrorIs(t, s.Set(ctx, "d", make([]byte, 9)), ErrQuotaExceeded)
	assert.Equal(t, 1, inner.keys)
	assert.Equal(t, 1, inner.gets)
}

func TestQuotaKVStore_DisabledReturnsInner(t *testing.T) {
	inner := NewMemoryKVStore()
	assert.Same(t, inner, NewQuotaKVStore(inner, 0))
}

func TestRedisKVStore(t *testing.T) {
	addr := os.Getenv("PROFILEHUB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PROFILEHUB_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })

	prefix := "profilehub-test:" + t.Name() + ":"
	s := NewRedisKVStore(client, prefix)
	t.Cleanup(func() {
		keys, _ := s.Keys(context.Background())
		for _, k := range keys {
			_ = s.Remove(context.Background(), k)
		}
	})

	exerciseKVStore(t, s)
}

func TestPGKVStore(t *testing.T) {
	dsn := os.Getenv("PROFILEHUB_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PROFILEHUB_TEST_POSTGRES_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	require.NoError(t, db.Exec("DELETE FROM kv_entries").Error)

	exerciseKVStore(t, NewPGKVStore(db))
}
