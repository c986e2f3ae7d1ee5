package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput 产品创建/更新请求
type ProductInput struct {
	Name                string          `json:"name" binding:"required"`
	Barcode             string          `json:"barcode" binding:"required"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter"`
	SquareMeters        decimal.Decimal `json:"square_meters"`
	Description         string          `json:"description"`
	BrandID             *string         `json:"brand_id"`
	CategoryID          *string         `json:"category_id"`
	CurrencyID          *string         `json:"currency_id"`
}

func (input *ProductInput) validate() error {
	if input.PricePerSquareMeter.IsNegative() {
		return ValidationError("price_per_square_meter", "Price per square meter must not be negative")
	}
	if input.SquareMeters.IsNegative() {
		return ValidationError("square_meters", "Square meters must not be negative")
	}
	return nil
}

// Create 创建产品
func (s *ProductService) Create(ctx context.Context, userID string, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:                  uuid.New().String()[:32],
		Name:                input.Name,
		Barcode:             input.Barcode,
		PricePerSquareMeter: input.PricePerSquareMeter,
		SquareMeters:        input.SquareMeters,
		Description:         input.Description,
		BrandID:             input.BrandID,
		CategoryID:          input.CategoryID,
		CurrencyID:          input.CurrencyID,
		UserID:              userID,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("barcode", "Barcode already exists")
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	// 带关联重查，返回完整实体
	return s.Get(ctx, userID, product.ID)
}

// List 租户产品列表
func (s *ProductService) List(ctx context.Context, userID string) ([]entity.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 产品详情
func (s *ProductService) Get(ctx context.Context, userID, id string) (*entity.Product, error) {
	product, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Product not found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// Update 更新产品（payload 里的租户字段被忽略）
func (s *ProductService) Update(ctx context.Context, userID, id string, input *ProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Barcode = input.Barcode
	product.PricePerSquareMeter = input.PricePerSquareMeter
	product.SquareMeters = input.SquareMeters
	product.Description = input.Description
	product.BrandID = input.BrandID
	product.CategoryID = input.CategoryID
	product.CurrencyID = input.CurrencyID
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("barcode", "Barcode already exists")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.Get(ctx, userID, id)
}

// Delete 删除产品
// 被任何成品组件引用的产品不可删除，错误里列出引用它的成品名
func (s *ProductService) Delete(ctx context.Context, userID, id string) error {
	product, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	names, err := s.repo.FindReferencingFinalProductNames(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("check product references: %w", err)
	}
	if len(names) > 0 {
		return RuleError(fmt.Sprintf(
			"Cannot delete product %s: it is used by final product(s) %s",
			product.Name, strings.Join(names, ", ")))
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
