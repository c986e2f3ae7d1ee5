package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinalProduct 成品订单（code+user_id 唯一）
// 合计金额不落库，始终由组件 total_price 求和得出，ApplyTVSH 时再乘 1.2
type FinalProduct struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	Name        string     `json:"name" gorm:"size:128;not null"`
	Code        string     `json:"code" gorm:"size:64;not null;uniqueIndex:idx_final_products_code_user"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	CurrencyID  *string    `json:"currency_id,omitempty" gorm:"size:32"`
	ClientID    *string    `json:"client_id,omitempty" gorm:"size:32"`
	Status      string     `json:"status" gorm:"size:16;not null;default:pending"` // pending/done
	Date        *time.Time `json:"date,omitempty" gorm:"type:date"`
	ApplyTVSH   bool       `json:"apply_tvsh" gorm:"not null;default:true"`
	UserID      string     `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_final_products_code_user;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Currency   *Currency   `json:"currency,omitempty" gorm:"foreignKey:CurrencyID"`
	Client     *Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Components []Component `json:"components,omitempty" gorm:"foreignKey:FinalProductID"`
}

func (FinalProduct) TableName() string {
	return "final_products"
}

// FinalProduct 状态
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Component 成品的组成行项，引用一个库存原料
// square_meters = length×width，total_meters = square_meters×quantity，
// total_price = total_meters×原料单价；三者在事务内计算后写入
type Component struct {
	ID             string          `json:"id" gorm:"primaryKey;size:32"`
	FinalProductID string          `json:"final_product_id" gorm:"size:32;not null;index"`
	ProductID      string          `json:"product_id" gorm:"size:32;not null;index"`
	Length         decimal.Decimal `json:"length" gorm:"type:numeric(10,2);not null"`
	Width          decimal.Decimal `json:"width" gorm:"type:numeric(10,2);not null"`
	Quantity       decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2);not null;default:1"`
	SquareMeters   decimal.Decimal `json:"square_meters" gorm:"type:numeric(10,2);not null"`
	TotalMeters    decimal.Decimal `json:"total_meters" gorm:"type:numeric(10,2);not null"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2);not null"`
	Image          string          `json:"image,omitempty" gorm:"size:256"`
	UserID         string          `json:"user_id" gorm:"size:64;not null;index"`

	// Relations
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Component) TableName() string {
	return "components"
}
