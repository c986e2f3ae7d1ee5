package service

import (
	"errors"

	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"gorm.io/gorm"
)

// Services 服务集合
type Services struct {
	Category     *CategoryService
	Brand        *BrandService
	Currency     *CurrencyService
	Client       *ClientService
	Product      *ProductService
	FinalProduct *FinalProductService
	Report       *ReportService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, db *gorm.DB) *Services {
	finalProductSvc := NewFinalProductService(repos.FinalProduct, repos.Product, db)
	return &Services{
		Category:     NewCategoryService(repos.Category),
		Brand:        NewBrandService(repos.Brand),
		Currency:     NewCurrencyService(repos.Currency),
		Client:       NewClientService(repos.Client),
		Product:      NewProductService(repos.Product),
		FinalProduct: finalProductSvc,
		Report:       NewReportService(repos.FinalProduct, repos.Product),
	}
}

// isDuplicate 唯一约束冲突判定（依赖 gorm 的 TranslateError）
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isRecordNotFound gorm 未命中判定
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
