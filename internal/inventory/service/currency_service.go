package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
)

type CurrencyService struct {
	repo *repository.CurrencyRepository
}

func NewCurrencyService(repo *repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{repo: repo}
}

// CurrencyInput 货币创建/更新请求
type CurrencyInput struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// Create 创建货币
func (s *CurrencyService) Create(ctx context.Context, userID string, input *CurrencyInput) (*entity.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if len(code) != 3 {
		return nil, ValidationError("code", "Currency code must be exactly 3 letters")
	}

	currency := &entity.Currency{
		ID:        uuid.New().String()[:32],
		Code:      code,
		Name:      input.Name,
		Symbol:    input.Symbol,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, currency); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("code", "Currency code already exists")
		}
		return nil, fmt.Errorf("create currency: %w", err)
	}
	return currency, nil
}

// List 租户货币列表
func (s *CurrencyService) List(ctx context.Context, userID string) ([]entity.Currency, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 货币详情
func (s *CurrencyService) Get(ctx context.Context, userID, id string) (*entity.Currency, error) {
	currency, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Currency not found")
		}
		return nil, fmt.Errorf("find currency: %w", err)
	}
	return currency, nil
}

// Update 更新货币
func (s *CurrencyService) Update(ctx context.Context, userID, id string, input *CurrencyInput) (*entity.Currency, error) {
	currency, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if len(code) != 3 {
		return nil, ValidationError("code", "Currency code must be exactly 3 letters")
	}

	currency.Code = code
	currency.Name = input.Name
	currency.Symbol = input.Symbol
	currency.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, currency); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("code", "Currency code already exists")
		}
		return nil, fmt.Errorf("update currency: %w", err)
	}
	return currency, nil
}

// Delete 删除货币
func (s *CurrencyService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete currency: %w", err)
	}
	return nil
}
