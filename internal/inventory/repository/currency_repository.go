package repository

import (
	"context"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"gorm.io/gorm"
)

type CurrencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// Create 创建货币
func (r *CurrencyRepository) Create(ctx context.Context, currency *entity.Currency) error {
	return r.db.WithContext(ctx).Create(currency).Error
}

// FindByID 按租户查找货币
func (r *CurrencyRepository) FindByID(ctx context.Context, userID, id string) (*entity.Currency, error) {
	var currency entity.Currency
	err := r.db.WithContext(ctx).
		First(&currency, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

// ListByUser 租户货币列表（最近创建在前）
func (r *CurrencyRepository) ListByUser(ctx context.Context, userID string) ([]entity.Currency, error) {
	var currencies []entity.Currency
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&currencies).Error
	return currencies, err
}

// Update 更新货币
func (r *CurrencyRepository) Update(ctx context.Context, currency *entity.Currency) error {
	return r.db.WithContext(ctx).Save(currency).Error
}

// Delete 删除货币
func (r *CurrencyRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Currency{}, "id = ? AND user_id = ?", id, userID).Error
}
