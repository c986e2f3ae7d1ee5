package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create 创建品牌
func (r *BrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

// FindByID 按租户查找品牌
func (r *BrandRepository) FindByID(ctx context.Context, userID, id string) (*entity.Brand, error) {
	var brand entity.Brand
	err := r.db.WithContext(ctx).
		First(&brand, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// ListByUser 租户品牌列表（按名称排序）
func (r *BrandRepository) ListByUser(ctx context.Context, userID string) ([]entity.Brand, error) {
	var brands []entity.Brand
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

// Update 更新品牌
func (r *BrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// Delete 删除品牌
func (r *BrandRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Brand{}, "id = ? AND user_id = ?", id, userID).Error
}
