package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create 创建分类
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByID 按租户查找分类
func (r *CategoryRepository) FindByID(ctx context.Context, userID, id string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		First(&category, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByUser 租户分类列表（按名称排序）
func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// Update 更新分类
func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete 删除分类
func (r *CategoryRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Category{}, "id = ? AND user_id = ?", id, userID).Error
}
