package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

const defaultMaxEngines = 10000

// RegistryParams configures the per-owner engine registry.
type RegistryParams struct {
	KeyPrefix      string
	MaxEngines     int
	Repository     Repository
	Pricing        Pricing
	Notifier       Notifier
	Recorder       PersistRecorder
	Logger         *logger.Logger
	PersistTimeout time.Duration
}

type registryEntry struct {
	engine   *Engine
	lastUsed uint64
}

// Registry lazily builds one Engine per owner and evicts the least recently
// used engine once MaxEngines is reached. Evicted carts rehydrate from the
// repository on their next use.
type Registry struct {
	params  RegistryParams
	mu      sync.Mutex
	engines map[string]*registryEntry
	tick    uint64
}

func NewRegistry(params RegistryParams) (*Registry, error) {
	if err := params.Pricing.Validate(); err != nil {
		return nil, err
	}
	if params.MaxEngines <= 0 {
		params.MaxEngines = defaultMaxEngines
	}
	if params.Repository == nil {
		params.Repository = NoopRepository{}
	}
	return &Registry{
		params:  params,
		engines: make(map[string]*registryEntry),
	}, nil
}

// Engine returns the engine for owner, creating and rehydrating it on first use.
func (r *Registry) Engine(ctx context.Context, owner string) (*Engine, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart owner is required")
	}

	if engine := r.lookup(owner); engine != nil {
		return engine, nil
	}

	// Rehydration hits the repository, so it runs outside the registry lock.
	engine, err := NewEngine(ctx, EngineParams{
		Key:            SnapshotKey(r.params.KeyPrefix, owner),
		Owner:          owner,
		Repository:     r.params.Repository,
		Pricing:        r.params.Pricing,
		Notifier:       r.params.Notifier,
		Recorder:       r.params.Recorder,
		Logger:         r.params.Logger,
		PersistTimeout: r.params.PersistTimeout,
	})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.engines[owner]; ok {
		r.tick++
		existing.lastUsed = r.tick
		return existing.engine, nil
	}
	if len(r.engines) >= r.params.MaxEngines {
		// A request still holding the evicted engine may persist after the
		// owner's next engine has rehydrated; the later save wins.
		r.evictOldestLocked()
	}
	r.tick++
	r.engines[owner] = &registryEntry{engine: engine, lastUsed: r.tick}
	return engine, nil
}

func (r *Registry) lookup(owner string) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.engines[owner]
	if !ok {
		return nil
	}
	r.tick++
	entry.lastUsed = r.tick
	return entry.engine
}

func (r *Registry) evictOldestLocked() {
	var (
		oldestOwner string
		oldestTick  uint64
		found       bool
	)
	for owner, entry := range r.engines {
		if !found || entry.lastUsed < oldestTick {
			oldestOwner, oldestTick, found = owner, entry.lastUsed, true
		}
	}
	if found {
		delete(r.engines, oldestOwner)
	}
}

// Len reports how many engines are resident.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

// Ping reports repository readiness when the repository supports it.
func (r *Registry) Ping(ctx context.Context) error {
	if p, ok := r.params.Repository.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Pricing is the policy every engine computes totals with.
func (r *Registry) Pricing() Pricing {
	return r.params.Pricing
}
