package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// tvshRate TVSH（增值税）固定加成 20%
var tvshRate = decimal.RequireFromString("1.2")

type FinalProductService struct {
	repo        *repository.FinalProductRepository
	productRepo *repository.ProductRepository
	db          *gorm.DB
}

func NewFinalProductService(repo *repository.FinalProductRepository, productRepo *repository.ProductRepository, db *gorm.DB) *FinalProductService {
	return &FinalProductService{
		repo:        repo,
		productRepo: productRepo,
		db:          db,
	}
}

// ComponentInput 组件行项请求
type ComponentInput struct {
	ProductID string          `json:"product_id" binding:"required"`
	Length    decimal.Decimal `json:"length"`
	Width     decimal.Decimal `json:"width"`
	Quantity  decimal.Decimal `json:"quantity"`
	Image     string          `json:"image"`
}

// FinalProductInput 成品创建/更新请求
type FinalProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Code        string           `json:"code" binding:"required"`
	Description string           `json:"description"`
	CurrencyID  *string          `json:"currency_id"`
	ClientID    *string          `json:"client_id"`
	Date        string           `json:"date"` // YYYY-MM-DD
	ApplyTVSH   *bool            `json:"apply_tvsh"`
	Components  []ComponentInput `json:"components"`
}

func parseOrderDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ValidationError("date", "Date must be in YYYY-MM-DD format")
	}
	return &t, nil
}

// buildComponents 在事务内逐项校验并计算组件
// 任意一项失败（产品缺失、面积超额）都会使整个事务回滚，不留下部分组件
func (s *FinalProductService) buildComponents(tx *gorm.DB, userID, finalProductID string, inputs []ComponentInput) ([]entity.Component, error) {
	components := make([]entity.Component, 0, len(inputs))

	for _, input := range inputs {
		var product entity.Product
		err := tx.First(&product, "id = ? AND user_id = ?", input.ProductID, userID).Error
		if err != nil {
			if isRecordNotFound(err) {
				return nil, NotFoundError(fmt.Sprintf("Product with id %s not found", input.ProductID))
			}
			return nil, fmt.Errorf("load component product: %w", err)
		}

		if !input.Length.IsPositive() {
			return nil, ValidationError("length", "Component length must be greater than zero")
		}
		if !input.Width.IsPositive() {
			return nil, ValidationError("width", "Component width must be greater than zero")
		}
		quantity := input.Quantity
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}
		if quantity.IsNegative() {
			return nil, ValidationError("quantity", "Component quantity must be greater than zero")
		}

		squareMeters := input.Length.Mul(input.Width)
		totalMeters := squareMeters.Mul(quantity)
		totalPrice := totalMeters.Mul(product.PricePerSquareMeter)

		if totalMeters.GreaterThan(product.SquareMeters) {
			return nil, RuleError(fmt.Sprintf(
				"Total square meters (%s) exceeds available square meters (%s) for product %s",
				totalMeters.StringFixed(2), product.SquareMeters.StringFixed(2), product.Name))
		}

		components = append(components, entity.Component{
			ID:             uuid.New().String()[:32],
			FinalProductID: finalProductID,
			ProductID:      product.ID,
			Length:         input.Length,
			Width:          input.Width,
			Quantity:       quantity,
			SquareMeters:   squareMeters,
			TotalMeters:    totalMeters,
			TotalPrice:     totalPrice,
			Image:          input.Image,
			UserID:         userID,
		})
	}

	return components, nil
}

// Create 事务内创建成品及其全部组件（全有或全无）
func (s *FinalProductService) Create(ctx context.Context, userID string, input *FinalProductInput) (*entity.FinalProduct, error) {
	date, err := parseOrderDate(input.Date)
	if err != nil {
		return nil, err
	}

	applyTVSH := true
	if input.ApplyTVSH != nil {
		applyTVSH = *input.ApplyTVSH
	}

	fp := &entity.FinalProduct{
		ID:          uuid.New().String()[:32],
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		CurrencyID:  input.CurrencyID,
		ClientID:    input.ClientID,
		Status:      entity.StatusPending,
		Date:        date,
		ApplyTVSH:   applyTVSH,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fp).Error; err != nil {
			if isDuplicate(err) {
				return ValidationError("code", "Code already exists")
			}
			return fmt.Errorf("create final product: %w", err)
		}

		if len(input.Components) > 0 {
			components, err := s.buildComponents(tx, userID, fp.ID, input.Components)
			if err != nil {
				return err
			}
			if err := tx.Create(&components).Error; err != nil {
				return fmt.Errorf("create components: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, fp.ID)
}

// List 租户成品列表（含完整关联图）
func (s *FinalProductService) List(ctx context.Context, userID string) ([]entity.FinalProduct, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 成品详情（含完整关联图）
func (s *FinalProductService) Get(ctx context.Context, userID, id string) (*entity.FinalProduct, error) {
	fp, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Final product not found")
		}
		return nil, fmt.Errorf("find final product: %w", err)
	}
	return fp, nil
}

// Update 事务内更新成品
// 提交了组件列表时，旧组件整体删除后按新列表重建，不做增量比对
func (s *FinalProductService) Update(ctx context.Context, userID, id string, input *FinalProductInput) (*entity.FinalProduct, error) {
	date, err := parseOrderDate(input.Date)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fp entity.FinalProduct
		if err := tx.First(&fp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			if isRecordNotFound(err) {
				return NotFoundError("Final product not found")
			}
			return fmt.Errorf("find final product: %w", err)
		}

		if len(input.Components) > 0 {
			if err := tx.Delete(&entity.Component{}, "final_product_id = ? AND user_id = ?", fp.ID, userID).Error; err != nil {
				return fmt.Errorf("delete components: %w", err)
			}
			components, err := s.buildComponents(tx, userID, fp.ID, input.Components)
			if err != nil {
				return err
			}
			if err := tx.Create(&components).Error; err != nil {
				return fmt.Errorf("create components: %w", err)
			}
		}

		fp.Name = input.Name
		fp.Code = input.Code
		fp.Description = input.Description
		fp.CurrencyID = input.CurrencyID
		fp.ClientID = input.ClientID
		if date != nil {
			fp.Date = date
		}
		if input.ApplyTVSH != nil {
			fp.ApplyTVSH = *input.ApplyTVSH
		}
		fp.UpdatedAt = time.Now()

		if err := tx.Save(&fp).Error; err != nil {
			if isDuplicate(err) {
				return ValidationError("code", "Code already exists")
			}
			return fmt.Errorf("update final product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, id)
}

// MarkDone 标记完成，只改状态字段
func (s *FinalProductService) MarkDone(ctx context.Context, userID, id string) (*entity.FinalProduct, error) {
	return s.setStatus(ctx, userID, id, entity.StatusDone)
}

// Reset 重置为待处理，只改状态字段
func (s *FinalProductService) Reset(ctx context.Context, userID, id string) (*entity.FinalProduct, error) {
	return s.setStatus(ctx, userID, id, entity.StatusPending)
}

func (s *FinalProductService) setStatus(ctx context.Context, userID, id, status string) (*entity.FinalProduct, error) {
	if _, err := s.repo.FindBare(ctx, userID, id); err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Final product not found")
		}
		return nil, fmt.Errorf("find final product: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, userID, id, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return s.Get(ctx, userID, id)
}

// Delete 事务内删除成品：先组件后主行
func (s *FinalProductService) Delete(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fp entity.FinalProduct
		if err := tx.First(&fp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			if isRecordNotFound(err) {
				return NotFoundError("Final product not found")
			}
			return fmt.Errorf("find final product: %w", err)
		}
		if err := tx.Delete(&entity.Component{}, "final_product_id = ? AND user_id = ?", fp.ID, userID).Error; err != nil {
			return fmt.Errorf("delete components: %w", err)
		}
		if err := tx.Delete(&fp).Error; err != nil {
			return fmt.Errorf("delete final product: %w", err)
		}
		return nil
	})
}

// Total 成品合计：Σ 组件 total_price，ApplyTVSH 时乘 1.2
// 合计从不落库，展示/报表处现算
func Total(fp *entity.FinalProduct) decimal.Decimal {
	total := decimal.Zero
	for _, c := range fp.Components {
		total = total.Add(c.TotalPrice)
	}
	if fp.ApplyTVSH {
		total = total.Mul(tvshRate)
	}
	return total
}
