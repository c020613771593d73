package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, repo Repository, max int) *Registry {
	t.Helper()
	registry, err := NewRegistry(RegistryParams{
		KeyPrefix:  "luxtime-cart",
		MaxEngines: max,
		Repository: repo,
		Pricing:    DefaultPricing(),
	})
	require.NoError(t, err)
	return registry
}

func TestRegistryReturnsSameEnginePerOwner(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, NewMemoryRepository(), 10)

	a, err := registry.Engine(ctx, "session:a")
	require.NoError(t, err)
	again, err := registry.Engine(ctx, "session:a")
	require.NoError(t, err)
	b, err := registry.Engine(ctx, "session:b")
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.NotSame(t, a, b)
	assert.Equal(t, "luxtime-cart:session:a", a.Key())
	assert.Equal(t, 2, registry.Len())
}

func TestRegistryRejectsBlankOwner(t *testing.T) {
	registry := newTestRegistry(t, nil, 10)
	_, err := registry.Engine(context.Background(), "   ")
	require.Error(t, err)
}

func TestRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	registry := newTestRegistry(t, repo, 2)

	a, err := registry.Engine(ctx, "user:a")
	require.NoError(t, err)
	_, err = a.Add(ctx, watch(t, "1", "13150"), 2)
	require.NoError(t, err)

	_, err = registry.Engine(ctx, "user:b")
	require.NoError(t, err)
	_, err = registry.Engine(ctx, "user:a")
	require.NoError(t, err)
	_, err = registry.Engine(ctx, "user:c")
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())

	stillA, err := registry.Engine(ctx, "user:a")
	require.NoError(t, err)
	assert.Same(t, a, stillA, "recently used engine should survive eviction")

	_, err = registry.Engine(ctx, "user:b")
	require.NoError(t, err)
	_, err = registry.Engine(ctx, "user:c")
	require.NoError(t, err)
	rebuilt, err := registry.Engine(ctx, "user:a")
	require.NoError(t, err)
	assert.NotSame(t, a, rebuilt)
	state := rebuilt.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity, "evicted carts rehydrate from the repository")
}

func TestRegistryConcurrentAccessYieldsOneEngine(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, NewMemoryRepository(), 10)

	engines := make([]*Engine, 20)
	var wg sync.WaitGroup
	for i := range engines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := registry.Engine(ctx, "session:shared")
			if err == nil {
				engines[i] = e
			}
		}(i)
	}
	wg.Wait()

	for _, e := range engines {
		assert.Same(t, engines[0], e)
	}
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryPing(t *testing.T) {
	registry := newTestRegistry(t, NewMemoryRepository(), 1)
	require.NoError(t, registry.Ping(context.Background()))
	assert.True(t, registry.Pricing().TaxRate.Equal(DefaultPricing().TaxRate))
}
