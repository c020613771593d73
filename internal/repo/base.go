package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Base is embedded by the gorm-backed catalog and cart snapshot repositories.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx; a nil ctx yields the raw connection.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Upsert inserts value, resolving conflicts on keys. With no columns listed
// every non-key column is overwritten.
func (b Base) Upsert(ctx context.Context, value any, keys []string, columns ...string) error {
	conflict := clause.OnConflict{Columns: make([]clause.Column, 0, len(keys))}
	for _, k := range keys {
		conflict.Columns = append(conflict.Columns, clause.Column{Name: k})
	}
	if len(columns) == 0 {
		conflict.UpdateAll = true
	} else {
		conflict.DoUpdates = clause.AssignmentColumns(columns)
	}
	return b.DB(ctx).Clauses(conflict).Create(value).Error
}

// Ping backs the readiness probe.
func (b Base) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return sqlDB.PingContext(ctx)
}
