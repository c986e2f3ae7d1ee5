package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create 创建客户
func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// FindByID 按租户查找客户
func (r *ClientRepository) FindByID(ctx context.Context, userID, id string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		First(&client, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByUser 租户客户列表（最近创建在前）
func (r *ClientRepository) ListByUser(ctx context.Context, userID string) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&clients).Error
	return clients, err
}

// Update 更新客户
func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete 删除客户
func (r *ClientRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Client{}, "id = ? AND user_id = ?", id, userID).Error
}
