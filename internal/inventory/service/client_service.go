package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
)

type ClientService struct {
	repo *repository.ClientRepository
}

func NewClientService(repo *repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// ClientInput 客户创建/更新请求
type ClientInput struct {
	FullName string `json:"full_name" binding:"required"`
	Number   string `json:"number"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// Create 创建客户
func (s *ClientService) Create(ctx context.Context, userID string, input *ClientInput) (*entity.Client, error) {
	client := &entity.Client{
		ID:        uuid.New().String()[:32],
		FullName:  input.FullName,
		Number:    input.Number,
		Email:     input.Email,
		Address:   input.Address,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// List 租户客户列表
func (s *ClientService) List(ctx context.Context, userID string) ([]entity.Client, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get 客户详情
func (s *ClientService) Get(ctx context.Context, userID, id string) (*entity.Client, error) {
	client, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError("Client not found")
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return client, nil
}

// Update 更新客户
func (s *ClientService) Update(ctx context.Context, userID, id string, input *ClientInput) (*entity.Client, error) {
	client, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	client.FullName = input.FullName
	client.Number = input.Number
	client.Email = input.Email
	client.Address = input.Address
	client.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

// Delete 删除客户
func (s *ClientService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
