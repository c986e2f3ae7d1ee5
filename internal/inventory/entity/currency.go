package entity

import "time"

// Currency 货币（code+user_id 唯一；symbol 仅用于展示，系统不做汇率换算）
type Currency struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Code      string    `json:"code" gorm:"size:3;not null;uniqueIndex:idx_currencies_code_user"`
	Name      string    `json:"name" gorm:"size:64;not null"`
	Symbol    string    `json:"symbol" gorm:"size:10;not null"`
	UserID    string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_currencies_code_user;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Currency) TableName() string {
	return "currencies"
}
