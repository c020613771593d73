package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/luxtime/luxtime-backend/internal/repo"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/db/models"
	"gorm.io/gorm"
)

// SQLRepository upserts snapshots into the cart_snapshots table.
type SQLRepository struct {
	repo.Base
	now func() time.Time
}

func NewSQLRepository(conn *gorm.DB) *SQLRepository {
	return &SQLRepository{Base: repo.NewBase(conn), now: time.Now}
}

func (r *SQLRepository) Load(ctx context.Context, key string) (*State, error) {
	var row models.CartSnapshot
	if err := r.DB(ctx).Where("cart_key = ?", key).Take(&row).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart snapshot %s: %w", key, err)
	}
	state, err := DecodeSnapshot([]byte(row.Payload))
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *SQLRepository) Save(ctx context.Context, key string, state State) error {
	now := r.now().UTC()
	raw, err := EncodeSnapshot(state, now)
	if err != nil {
		return err
	}
	row := models.CartSnapshot{
		Key:       key,
		Payload:   string(raw),
		Version:   SnapshotVersion,
		ItemCount: state.ItemCount(),
		Subtotal:  state.Subtotal,
		Total:     state.Total,
		UpdatedAt: now,
	}
	err = r.Upsert(ctx, &row, []string{"cart_key"}, "payload", "version", "item_count", "subtotal", "total", "updated_at")
	if err != nil {
		return fmt.Errorf("save cart snapshot %s: %w", key, err)
	}
	return nil
}
