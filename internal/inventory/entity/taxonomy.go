package entity

import "time"

// Category 产品分类（按租户隔离，name+user_id 唯一）
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"size:128;not null;uniqueIndex:idx_categories_name_user"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	UserID      string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_categories_name_user;index"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Brand 品牌（按租户隔离，name+user_id 唯一）
type Brand struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"size:128;not null;uniqueIndex:idx_brands_name_user"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	UserID      string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_brands_name_user;index"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Brand) TableName() string {
	return "brands"
}
