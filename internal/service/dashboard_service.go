package service

import (
	"context"
	"time"

	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/repository"
	"github.com/sincrotec/gestao-service/internal/stats"
)

type DashboardService struct {
	clients   *repository.ClientRepository
	contracts *repository.ContractRepository
}

func NewDashboardService(clients *repository.ClientRepository, contracts *repository.ContractRepository) *DashboardService {
	return &DashboardService{clients: clients, contracts: contracts}
}

// Stats recarrega as coleções completas e recomputa as métricas do painel.
func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := stats.Compute(clients, contracts, time.Now())
	return &result, nil
}
