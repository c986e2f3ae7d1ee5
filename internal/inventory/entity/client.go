package entity

import "time"

// Client 客户（订单的对方）
type Client struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	FullName  string    `json:"full_name" gorm:"size:128;not null"`
	Number    string    `json:"number,omitempty" gorm:"size:32"`
	Email     string    `json:"email,omitempty" gorm:"size:128"`
	Address   string    `json:"address,omitempty" gorm:"size:256"`
	UserID    string    `json:"user_id" gorm:"size:64;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
