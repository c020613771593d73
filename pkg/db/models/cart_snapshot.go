package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartSnapshot stores the latest encoded cart for one storage key.
type CartSnapshot struct {
	Key       string          `gorm:"column:cart_key;primaryKey"`
	Payload   string          `gorm:"column:payload;type:text;not null"`
	Version   int             `gorm:"column:version;not null"`
	ItemCount int             `gorm:"column:item_count;not null;default:0"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:numeric(14,2);not null"`
	Total     decimal.Decimal `gorm:"column:total;type:numeric(14,2);not null"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null"`
}

func (CartSnapshot) TableName() string { return "cart_snapshots" }
