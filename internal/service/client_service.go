package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/repository"
)

type ClientService struct {
	clients *repository.ClientRepository
}

func NewClientService(clients *repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, client model.Client) (*model.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}
	return s.clients.Create(ctx, client)
}

func (s *ClientService) Update(ctx context.Context, client model.Client) (*model.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}
	saved, err := s.clients.Update(ctx, client)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateClient(client model.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(client.CNPJ) == "" {
		return fmt.Errorf("%w: cnpj is required", ErrInvalidInput)
	}
	return nil
}
