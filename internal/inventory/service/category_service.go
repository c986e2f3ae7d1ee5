package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 分类创建/更新请求
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, userID string, input *CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          uuid.New().String()[:32],
		Name:        input.Name,
		Description: input.Description,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("name", "Category name already exists")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// List 租户分类列表
func (s *CategoryService) List(ctx context.Context, userID string) ([]entity.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 分类详情
func (s *CategoryService) Get(ctx context.Context, userID, id string) (*entity.Category, error) {
	category, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Category not found")
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, userID, id string, input *CategoryInput) (*entity.Category, error) {
	category, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := s.repo.Update(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, ValidationError("name", "Category name already exists")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete 删除分类
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
