package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func watch(t *testing.T, id, price string) Product {
	t.Helper()
	return Product{ID: id, Name: "Watch " + id, Brand: "Test", Price: dec(t, price)}
}

func discounted(t *testing.T, id, price, discount string) Product {
	t.Helper()
	p := watch(t, id, price)
	d := dec(t, discount)
	p.DiscountPrice = &d
	return p
}

func requireMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(t, want).Equal(got), "expected %s, got %s", want, got.String())
}

func applyAll(t *testing.T, r Reducer, cmds ...Command) State {
	t.Helper()
	state := Empty()
	for _, cmd := range cmds {
		next, err := r.Apply(state, cmd)
		require.NoError(t, err, cmd.Name())
		state = next
	}
	return state
}

type recordedEvents struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordedEvents) Notify(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordedEvents) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

type fakeRecorder struct {
	mu       sync.Mutex
	failures map[string]int
	observed map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{failures: map[string]int{}, observed: map[string]int{}}
}

func (f *fakeRecorder) IncPersistFailure(operation string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[operation]++
}

func (f *fakeRecorder) ObservePersist(operation string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observed[operation]++
}

func (f *fakeRecorder) failuresFor(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[operation]
}

// stubRepository returns canned results and records saves.
type stubRepository struct {
	mu      sync.Mutex
	loaded  *State
	loadErr error
	saveErr error
	saves   []State
}

func (s *stubRepository) Load(context.Context, string) (*State, error) {
	return s.loaded, s.loadErr
}

func (s *stubRepository) Save(_ context.Context, _ string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, state.Clone())
	return s.saveErr
}

func (s *stubRepository) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}
