package cart

import (
	"context"
	"sync"
	"time"
)

// Repository persists cart snapshots by storage key.
// Load returns (nil, nil) when nothing is stored under key.
type Repository interface {
	Load(ctx context.Context, key string) (*State, error)
	Save(ctx context.Context, key string, state State) error
}

// Pinger is implemented by repositories that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MemoryRepository keeps encoded snapshots in process memory. Values go through
// the snapshot codec so reads never alias engine state.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[string][]byte),
		now:  time.Now,
	}
}

func (r *MemoryRepository) Load(_ context.Context, key string) (*State, error) {
	r.mu.RLock()
	raw, ok := r.data[key]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	state, err := DecodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *MemoryRepository) Save(_ context.Context, key string, state State) error {
	raw, err := EncodeSnapshot(state, r.now())
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data[key] = raw
	r.mu.Unlock()
	return nil
}

// Put stores raw bytes under key, bypassing the codec.
func (r *MemoryRepository) Put(key string, raw []byte) {
	r.mu.Lock()
	r.data[key] = append([]byte(nil), raw...)
	r.mu.Unlock()
}

// Len reports how many keys are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }

// NoopRepository never stores anything.
type NoopRepository struct{}

func (NoopRepository) Load(context.Context, string) (*State, error) { return nil, nil }

func (NoopRepository) Save(context.Context, string, State) error { return nil }

func (NoopRepository) Ping(context.Context) error { return nil }
