package repository

import (
	"gorm.io/gorm"
)

// Repositories 仓库集合
type Repositories struct {
	Category     *CategoryRepository
	Brand        *BrandRepository
	Currency     *CurrencyRepository
	Client       *ClientRepository
	Product      *ProductRepository
	FinalProduct *FinalProductRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category:     NewCategoryRepository(db),
		Brand:        NewBrandRepository(db),
		Currency:     NewCurrencyRepository(db),
		Client:       NewClientRepository(db),
		Product:      NewProductRepository(db),
		FinalProduct: NewFinalProductRepository(db),
	}
}
