package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/luxtime/luxtime-backend/pkg/db/models"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sampleState(t *testing.T) State {
	return applyAll(t, NewReducer(DefaultPricing()),
		AddItem{Product: watch(t, "1", "13150"), Quantity: 1},
		AddItem{Product: discounted(t, "7", "21700", "19500"), Quantity: 2},
	)
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	got, err := repo.Load(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := sampleState(t)
	require.NoError(t, repo.Save(ctx, "k", state))
	got, err = repo.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(state))

	got.Items[0].Quantity = 99
	again, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)

	repo.Put("corrupt", []byte("not json"))
	_, err = repo.Load(ctx, "corrupt")
	assert.True(t, errors.Is(err, ErrInvalidSnapshot))
	assert.Equal(t, 2, repo.Len())
}

func TestNoopRepository(t *testing.T) {
	repo := NoopRepository{}
	require.NoError(t, repo.Save(context.Background(), "k", sampleState(t)))
	got, err := repo.Load(context.Background(), "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

type fakeKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	delErr  error
	pingErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, goredis.Nil
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected value type %T", value)
	}
	f.data[key] = raw
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	for _, k := range keys {
		delete(f.data, k)
		delete(f.ttls, k)
	}
	return nil
}

func (f *fakeKV) Ping(context.Context) error { return f.pingErr }

func TestRedisRepository(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := NewRedisRepository(kv, time.Hour)

	got, err := repo.Load(ctx, "luxtime-cart:session:a")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := sampleState(t)
	require.NoError(t, repo.Save(ctx, "luxtime-cart:session:a", state))
	assert.Equal(t, time.Hour, kv.ttls["luxtime-cart:session:a"])

	got, err = repo.Load(ctx, "luxtime-cart:session:a")
	require.NoError(t, err)
	assert.True(t, got.Equal(state))

	require.NoError(t, repo.Save(ctx, "luxtime-cart:session:a", Empty()))
	_, stored := kv.data["luxtime-cart:session:a"]
	assert.False(t, stored, "an empty cart should drop the key")
	got, err = repo.Load(ctx, "luxtime-cart:session:a")
	require.NoError(t, err)
	assert.Nil(t, got)

	kv.delErr = errors.New("read only replica")
	require.Error(t, repo.Save(ctx, "k", Empty()))

	kv.data["broken"] = []byte(`{"version":9,"items":[]}`)
	_, err = repo.Load(ctx, "broken")
	assert.True(t, errors.Is(err, ErrInvalidSnapshot))

	kv.getErr = errors.New("connection refused")
	_, err = repo.Load(ctx, "luxtime-cart:session:a")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidSnapshot))

	kv.setErr = errors.New("read only replica")
	require.Error(t, repo.Save(ctx, "k", state))
}

func setupSnapshotDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS cart_snapshots (
  cart_key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  version INTEGER NOT NULL,
  item_count INTEGER NOT NULL DEFAULT 0,
  subtotal NUMERIC NOT NULL,
  total NUMERIC NOT NULL,
  updated_at DATETIME NOT NULL
);`).Error)
	return conn
}

func TestSQLRepositoryUpserts(t *testing.T) {
	ctx := context.Background()
	conn := setupSnapshotDB(t)
	repo := NewSQLRepository(conn)

	got, err := repo.Load(ctx, "luxtime-cart:user:1")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := sampleState(t)
	require.NoError(t, repo.Save(ctx, "luxtime-cart:user:1", state))

	cleared, err := NewReducer(DefaultPricing()).Apply(state, RemoveItem{ProductID: "1"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "luxtime-cart:user:1", cleared))

	var rows []models.CartSnapshot
	require.NoError(t, conn.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].ItemCount)
	assert.Equal(t, SnapshotVersion, rows[0].Version)
	requireMoney(t, "39000", rows[0].Subtotal)

	got, err = repo.Load(ctx, "luxtime-cart:user:1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(cleared))
	require.NoError(t, repo.Ping(ctx))
}

func TestSQLRepositoryCorruptPayload(t *testing.T) {
	conn := setupSnapshotDB(t)
	require.NoError(t, conn.Create(&models.CartSnapshot{
		Key: "bad", Payload: "{", Version: 1, UpdatedAt: time.Now(),
	}).Error)

	_, err := NewSQLRepository(conn).Load(context.Background(), "bad")
	assert.True(t, errors.Is(err, ErrInvalidSnapshot))
}

type failingRepository struct {
	err error
}

func (f failingRepository) Load(context.Context, string) (*State, error) { return nil, f.err }
func (f failingRepository) Save(context.Context, string, State) error    { return f.err }
func (f failingRepository) Ping(context.Context) error                   { return f.err }

func TestTieredRepositoryReadThroughAndBackfill(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRepository()
	durable := NewMemoryRepository()
	repo := NewTieredRepository(cache, durable, nil)

	state := sampleState(t)
	require.NoError(t, durable.Save(ctx, "k", state))

	got, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, got.Equal(state))

	cached, err := cache.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, cached, "durable hit should backfill the cache")

	missing, err := repo.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTieredRepositoryFallsBackWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	durable := NewMemoryRepository()
	state := sampleState(t)
	require.NoError(t, durable.Save(ctx, "k", state))

	repo := NewTieredRepository(failingRepository{err: errors.New("cache down")}, durable, nil)
	got, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, got.Equal(state))
}

func TestTieredRepositorySaveCombinesErrors(t *testing.T) {
	ctx := context.Background()
	durable := NewMemoryRepository()
	repo := NewTieredRepository(failingRepository{err: errors.New("cache down")}, durable, nil)

	err := repo.Save(ctx, "k", sampleState(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache down")
	assert.Equal(t, 1, durable.Len(), "durable write should still happen")

	both := NewTieredRepository(failingRepository{err: errors.New("cache down")}, failingRepository{err: errors.New("db down")}, nil)
	err = both.Save(ctx, "k", sampleState(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache down")
	assert.Contains(t, err.Error(), "db down")
	assert.Error(t, both.Ping(ctx))
}
