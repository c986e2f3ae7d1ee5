package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type FinalProductRepository struct {
	db *gorm.DB
}

func NewFinalProductRepository(db *gorm.DB) *FinalProductRepository {
	return &FinalProductRepository{db: db}
}

// withRelations 成品的完整关联图：货币、客户、组件、组件产品及其货币，
// 每一层都重新按租户过滤
func withFinalProductRelations(db *gorm.DB, userID string) *gorm.DB {
	return db.
		Preload("Currency", "user_id = ?", userID).
		Preload("Client", "user_id = ?", userID).
		Preload("Components", "user_id = ?", userID).
		Preload("Components.Product", "user_id = ?", userID).
		Preload("Components.Product.Currency", "user_id = ?", userID)
}

// FindByID 按租户查找成品（含完整关联图）
func (r *FinalProductRepository) FindByID(ctx context.Context, userID, id string) (*entity.FinalProduct, error) {
	var fp entity.FinalProduct
	err := withFinalProductRelations(r.db.WithContext(ctx), userID).
		First(&fp, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &fp, nil
}

// FindBare 按租户查找成品（不带关联，状态流转用）
func (r *FinalProductRepository) FindBare(ctx context.Context, userID, id string) (*entity.FinalProduct, error) {
	var fp entity.FinalProduct
	err := r.db.WithContext(ctx).
		First(&fp, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &fp, nil
}

// ListByUser 租户成品列表（最近创建在前，含完整关联图）
func (r *FinalProductRepository) ListByUser(ctx context.Context, userID string) ([]entity.FinalProduct, error) {
	var fps []entity.FinalProduct
	err := withFinalProductRelations(r.db.WithContext(ctx), userID).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&fps).Error
	return fps, err
}

// UpdateStatus 只更新状态字段
func (r *FinalProductRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.FinalProduct{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status).Error
}
