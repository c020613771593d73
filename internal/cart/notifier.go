package cart

import (
	"context"

	"github.com/luxtime/luxtime-backend/pkg/logger"
)

// Event describes a command that was applied successfully.
type Event struct {
	Command     string
	Owner       string
	ProductID   string
	ProductName string
	Quantity    int
	State       State
}

// Notifier observes successful cart mutations. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event Event)

func (f NotifierFunc) Notify(ctx context.Context, event Event) { f(ctx, event) }

// Notifiers fans an event out in order.
type Notifiers []Notifier

func (n Notifiers) Notify(ctx context.Context, event Event) {
	for _, notifier := range n {
		if notifier != nil {
			notifier.Notify(ctx, event)
		}
	}
}

// LogNotifier writes one info line per mutation.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) LogNotifier {
	return LogNotifier{logg: logg}
}

func (n LogNotifier) Notify(ctx context.Context, event Event) {
	fields := map[string]any{
		"cart_owner": event.Owner,
		"command":    event.Command,
		"item_count": event.State.ItemCount(),
		"total":      event.State.Total.StringFixed(2),
	}
	if event.ProductID != "" {
		fields["product_id"] = event.ProductID
	}
	if event.Quantity != 0 {
		fields["quantity"] = event.Quantity
	}
	n.logg.Info(n.logg.WithFields(ctx, fields), eventMessage(event))
}

func eventMessage(event Event) string {
	switch event.Command {
	case CommandAddItem:
		return "Item added to cart"
	case CommandRemoveItem:
		return "Item removed"
	case CommandUpdateQuantity:
		return "Quantity updated"
	case CommandClear:
		return "Cart cleared"
	case CommandLoad:
		return "Cart replaced"
	default:
		return "Cart updated"
	}
}

// MutationRecorder is the metrics surface MetricsNotifier reports to.
type MutationRecorder interface {
	IncMutation(command string)
	ObserveCartTotal(total float64)
}

// MetricsNotifier counts mutations and records cart totals.
type MetricsNotifier struct {
	recorder MutationRecorder
}

func NewMetricsNotifier(recorder MutationRecorder) MetricsNotifier {
	return MetricsNotifier{recorder: recorder}
}

func (n MetricsNotifier) Notify(_ context.Context, event Event) {
	if n.recorder == nil {
		return
	}
	n.recorder.IncMutation(event.Command)
	total, _ := event.State.Total.Float64()
	n.recorder.ObserveCartTotal(total)
}
