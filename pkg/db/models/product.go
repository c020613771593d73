package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is a catalog watch row.
type Product struct {
	ID               string           `gorm:"column:id;primaryKey"`
	Name             string           `gorm:"column:name;not null"`
	Brand            string           `gorm:"column:brand;not null"`
	Price            decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	DiscountPrice    *decimal.Decimal `gorm:"column:discount_price;type:numeric(12,2)"`
	Description      string           `gorm:"column:description;not null;default:''"`
	ShortDescription string           `gorm:"column:short_description;not null;default:''"`
	Images           pq.StringArray   `gorm:"column:images;type:text[]"`
	Styles           pq.StringArray   `gorm:"column:styles;type:text[]"`
	Reference        string           `gorm:"column:reference;not null;default:''"`
	CaseMaterial     string           `gorm:"column:case_material;not null;default:''"`
	CaseDiameter     string           `gorm:"column:case_diameter;not null;default:''"`
	Movement         string           `gorm:"column:movement;not null;default:''"`
	StrapMaterial    string           `gorm:"column:strap_material;not null;default:''"`
	DialColor        string           `gorm:"column:dial_color;not null;default:''"`
	Featured         bool             `gorm:"column:featured;not null;default:false"`
	Bestseller       bool             `gorm:"column:bestseller;not null;default:false"`
	NewArrival       bool             `gorm:"column:new_arrival;not null;default:false"`
	Position         int              `gorm:"column:position;not null;default:0"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
