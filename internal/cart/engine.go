package cart

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

const (
	defaultPersistTimeout = 2 * time.Second

	operationLoad = "load"
	operationSave = "save"
)

// PersistRecorder receives snapshot read/write telemetry.
type PersistRecorder interface {
	IncPersistFailure(operation string)
	ObservePersist(operation string, duration time.Duration)
}

// EngineParams wires one cart engine.
type EngineParams struct {
	Key            string
	Owner          string
	Repository     Repository
	Pricing        Pricing
	Notifier       Notifier
	Recorder       PersistRecorder
	Logger         *logger.Logger
	PersistTimeout time.Duration
}

// Engine owns the cart of a single owner. Commands are serialized; every
// successful command is persisted and then reported to the notifier.
// Persistence failures are logged and counted but never fail a command.
type Engine struct {
	mu       sync.Mutex
	key      string
	owner    string
	repo     Repository
	reducer  Reducer
	notifier Notifier
	recorder PersistRecorder
	logg     *logger.Logger
	timeout  time.Duration
	state    State
}

// NewEngine builds the engine and rehydrates it once from the repository.
// Unreadable or corrupt snapshots are discarded and the cart starts empty.
func NewEngine(ctx context.Context, params EngineParams) (*Engine, error) {
	if strings.TrimSpace(params.Key) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart key is required")
	}
	if err := params.Pricing.Validate(); err != nil {
		return nil, err
	}
	repo := params.Repository
	if repo == nil {
		repo = NoopRepository{}
	}
	timeout := params.PersistTimeout
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}

	e := &Engine{
		key:      params.Key,
		owner:    params.Owner,
		repo:     repo,
		reducer:  NewReducer(params.Pricing),
		notifier: params.Notifier,
		recorder: params.Recorder,
		logg:     params.Logger,
		timeout:  timeout,
		state:    Empty(),
	}
	e.rehydrate(ctx)
	return e, nil
}

func (e *Engine) rehydrate(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	started := time.Now()
	stored, err := e.repo.Load(opCtx, e.key)
	e.observe(operationLoad, started)
	if err != nil {
		e.countFailure(operationLoad)
		msg := "failed to load cart snapshot; starting empty"
		if errors.Is(err, ErrInvalidSnapshot) {
			msg = "discarded corrupt cart snapshot; starting empty"
		}
		e.logg.Error(e.logCtx(ctx), msg, err)
		return
	}
	if stored == nil {
		return
	}

	next, err := e.reducer.Apply(Empty(), LoadCart{State: *stored})
	if err != nil {
		e.countFailure(operationLoad)
		e.logg.Error(e.logCtx(ctx), "discarded invalid cart snapshot; starting empty", err)
		return
	}
	if !next.Totals.Equal(stored.Totals) {
		e.logg.Warn(e.logg.WithFields(e.logCtx(ctx), map[string]any{
			"stored_total":     stored.Total.String(),
			"recomputed_total": next.Total.String(),
		}), "stored cart totals were stale and have been recomputed")
	}
	e.state = next
}

// Key is the storage key the engine persists under.
func (e *Engine) Key() string { return e.key }

// Owner identifies who the cart belongs to.
func (e *Engine) Owner() string { return e.owner }

// State returns a copy of the current cart.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Add puts quantity units of product into the cart.
func (e *Engine) Add(ctx context.Context, product Product, quantity int) (State, error) {
	return e.dispatch(ctx, AddItem{Product: product, Quantity: quantity}, Event{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
	})
}

// Remove drops the line for productID.
func (e *Engine) Remove(ctx context.Context, productID string) (State, error) {
	return e.dispatch(ctx, RemoveItem{ProductID: productID}, Event{ProductID: productID})
}

// UpdateQuantity sets the quantity for productID, clamped to at least one.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, quantity int) (State, error) {
	return e.dispatch(ctx, UpdateQuantity{ProductID: productID, Quantity: quantity}, Event{
		ProductID: productID,
		Quantity:  quantity,
	})
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) (State, error) {
	return e.dispatch(ctx, ClearCart{}, Event{})
}

// Load replaces the cart wholesale.
func (e *Engine) Load(ctx context.Context, state State) (State, error) {
	return e.dispatch(ctx, LoadCart{State: state}, Event{})
}

func (e *Engine) dispatch(ctx context.Context, cmd Command, event Event) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := e.reducer.Apply(e.state, cmd)
	if err != nil {
		return e.state.Clone(), err
	}
	e.state = next
	e.persist(ctx)

	if e.notifier != nil {
		event.Command = cmd.Name()
		event.Owner = e.owner
		event.State = next.Clone()
		e.notifier.Notify(ctx, event)
	}
	return next.Clone(), nil
}

// persist runs under e.mu so snapshots reach the repository in command order.
func (e *Engine) persist(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	started := time.Now()
	err := e.repo.Save(opCtx, e.key, e.state)
	e.observe(operationSave, started)
	if err != nil {
		e.countFailure(operationSave)
		e.logg.Error(e.logCtx(ctx), "failed to persist cart snapshot", err)
	}
}

func (e *Engine) observe(operation string, started time.Time) {
	if e.recorder != nil {
		e.recorder.ObservePersist(operation, time.Since(started))
	}
}

func (e *Engine) countFailure(operation string) {
	if e.recorder != nil {
		e.recorder.IncPersistFailure(operation)
	}
}

func (e *Engine) logCtx(ctx context.Context) context.Context {
	ctx = e.logg.WithCartOwner(ctx, e.owner)
	return e.logg.WithField(ctx, "cart_key", e.key)
}
