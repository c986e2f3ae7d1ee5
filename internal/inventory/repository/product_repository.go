package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// withRelations 关联预加载，关联行同样按租户过滤，避免跨租户泄漏
func (r *ProductRepository) withRelations(db *gorm.DB, userID string) *gorm.DB {
	return db.
		Preload("Brand", "user_id = ?", userID).
		Preload("Category", "user_id = ?", userID).
		Preload("Currency", "user_id = ?", userID)
}

// Create 创建产品
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID 按租户查找产品（含关联）
func (r *ProductRepository) FindByID(ctx context.Context, userID, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.withRelations(r.db.WithContext(ctx), userID).
		First(&product, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByUser 租户产品列表（最近创建在前，含关联）
func (r *ProductRepository) ListByUser(ctx context.Context, userID string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.withRelations(r.db.WithContext(ctx), userID).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// Update 更新产品
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete 删除产品
func (r *ProductRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Product{}, "id = ? AND user_id = ?", id, userID).Error
}

// FindReferencingFinalProductNames 查找引用该产品的成品名称（删除守卫用）
func (r *ProductRepository) FindReferencingFinalProductNames(ctx context.Context, userID, productID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entity.Component{}).
		Joins("JOIN final_products ON final_products.id = components.final_product_id").
		Where("components.product_id = ? AND components.user_id = ?", productID, userID).
		Distinct("final_products.name").
		Order("final_products.name").
		Pluck("final_products.name", &names).Error
	return names, err
}
