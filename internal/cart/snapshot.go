package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotVersion tags the persisted JSON layout.
const SnapshotVersion = 1

// ErrInvalidSnapshot marks persisted data that does not match the snapshot layout.
var ErrInvalidSnapshot = errors.New("invalid cart snapshot")

type snapshotEnvelope struct {
	Version  int              `json:"version"`
	Items    *[]LineItem      `json:"items"`
	Subtotal *decimal.Decimal `json:"subtotal"`
	Shipping *decimal.Decimal `json:"shipping"`
	Tax      *decimal.Decimal `json:"tax"`
	Total    *decimal.Decimal `json:"total"`
	SavedAt  time.Time        `json:"saved_at"`
}

// SnapshotKey namespaces a cart owner under the configured storage key.
func SnapshotKey(prefix, owner string) string {
	prefix = strings.TrimSpace(prefix)
	owner = strings.TrimSpace(owner)
	if prefix == "" {
		return owner
	}
	return prefix + ":" + owner
}

// EncodeSnapshot serializes state into the versioned JSON envelope.
func EncodeSnapshot(state State, savedAt time.Time) ([]byte, error) {
	items := state.Items
	if items == nil {
		items = []LineItem{}
	}
	env := snapshotEnvelope{
		Version:  SnapshotVersion,
		Items:    &items,
		Subtotal: &state.Subtotal,
		Shipping: &state.Shipping,
		Tax:      &state.Tax,
		Total:    &state.Total,
		SavedAt:  savedAt.UTC(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode cart snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses and shape-checks a persisted snapshot. The returned
// state carries the stored totals as-is; callers recompute them through LoadCart.
func DecodeSnapshot(data []byte) (State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return State{}, fmt.Errorf("%w: empty payload", ErrInvalidSnapshot)
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if env.Version != SnapshotVersion {
		return State{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, env.Version)
	}
	if env.Items == nil {
		return State{}, fmt.Errorf("%w: items missing", ErrInvalidSnapshot)
	}
	for i, item := range *env.Items {
		if strings.TrimSpace(item.Product.ID) == "" {
			return State{}, fmt.Errorf("%w: item %d has no product id", ErrInvalidSnapshot, i)
		}
		if item.Quantity < 1 {
			return State{}, fmt.Errorf("%w: item %d has quantity %d", ErrInvalidSnapshot, i, item.Quantity)
		}
	}

	state := State{
		Items: *env.Items,
		Totals: Totals{
			Subtotal: orZero(env.Subtotal),
			Shipping: orZero(env.Shipping),
			Tax:      orZero(env.Tax),
			Total:    orZero(env.Total),
		},
	}
	return state, nil
}

func orZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}
