package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
)

type BrandService struct {
	repo *repository.BrandRepository
}

func NewBrandService(repo *repository.BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

// BrandInput 品牌创建/更新请求
type BrandInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create 创建品牌
func (s *BrandService) Create(ctx context.Context, userID string, input *BrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{
		ID:          uuid.New().String()[:32],
		Name:        input.Name,
		Description: input.Description,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("name", "Brand name already exists")
		}
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return brand, nil
}

// List 租户品牌列表
func (s *BrandService) List(ctx context.Context, userID string) ([]entity.Brand, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 品牌详情
func (s *BrandService) Get(ctx context.Context, userID, id string) (*entity.Brand, error) {
	brand, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Brand not found")
		}
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return brand, nil
}

// Update 更新品牌
func (s *BrandService) Update(ctx context.Context, userID, id string, input *BrandInput) (*entity.Brand, error) {
	brand, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	brand.Name = input.Name
	brand.Description = input.Description

	if err := s.repo.Update(ctx, brand); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("name", "Brand name already exists")
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return brand, nil
}

// Delete 删除品牌
func (s *BrandService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
