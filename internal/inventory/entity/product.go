package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 库存原料（按面积计价；barcode+user_id 唯一）
// SquareMeters 是当前可用面积，组件写入时做软校验，不做扣减
type Product struct {
	ID                  string          `json:"id" gorm:"primaryKey;size:32"`
	Name                string          `json:"name" gorm:"size:128;not null"`
	Barcode             string          `json:"barcode" gorm:"size:64;not null;uniqueIndex:idx_products_barcode_user"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter" gorm:"type:numeric(10,2);not null"`
	SquareMeters        decimal.Decimal `json:"square_meters" gorm:"type:numeric(10,2);not null;default:0"`
	Description         string          `json:"description,omitempty" gorm:"type:text"`
	BrandID             *string         `json:"brand_id,omitempty" gorm:"size:32"`
	CategoryID          *string         `json:"category_id,omitempty" gorm:"size:32"`
	CurrencyID          *string         `json:"currency_id,omitempty" gorm:"size:32"`
	UserID              string          `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_products_barcode_user;index"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	// Relations
	Brand    *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Currency *Currency `json:"currency,omitempty" gorm:"foreignKey:CurrencyID"`
}

func (Product) TableName() string {
	return "products"
}
