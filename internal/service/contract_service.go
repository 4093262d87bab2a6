package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/config"
	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/repository"
)

type ContractService struct {
	contracts *repository.ContractRepository
	clients   *repository.ClientRepository
	cfg       *config.Config
}

func NewContractService(contracts *repository.ContractRepository, clients *repository.ClientRepository, cfg *config.Config) *ContractService {
	return &ContractService{contracts: contracts, clients: clients, cfg: cfg}
}

func (s *ContractService) List(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.List(ctx)
}

func (s *ContractService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Contract, error) {
	return s.contracts.ListByClient(ctx, clientID)
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Create(ctx context.Context, contract model.Contract, principal model.Principal) (*model.Contract, error) {
	if err := s.validate(ctx, &contract); err != nil {
		return nil, err
	}

	applyLifecycleRules(&contract, time.Now(), s.cfg.Contracts.DefaultWarrantyDays)
	contract.CreatedBy = &principal.UserID

	return s.contracts.Create(ctx, contract)
}

func (s *ContractService) Update(ctx context.Context, contract model.Contract, principal model.Principal) (*model.Contract, error) {
	existing, err := s.Get(ctx, contract.ID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, &contract); err != nil {
		return nil, err
	}

	// A garantia já gravada nunca é sobrescrita pela regra automática.
	if contract.Warranty == nil && existing.Warranty != nil {
		contract.Warranty = existing.Warranty
	}

	applyLifecycleRules(&contract, time.Now(), s.cfg.Contracts.DefaultWarrantyDays)

	saved, err := s.contracts.Update(ctx, contract)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ContractService) validate(ctx context.Context, contract *model.Contract) error {
	if contract.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	if contract.Status == "" {
		contract.Status = model.ContractStatusPending
	}
	if !contract.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, contract.Status)
	}
	if _, err := s.clients.Get(ctx, contract.ClientID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: client not found", ErrInvalidInput)
		}
		return err
	}
	return nil
}

// applyLifecycleRules roda no momento do save, antes da persistência:
// saneia quantidades e valor, e sintetiza a garantia na transição para
// "Instalação Concluída" quando ainda não existe.
func applyLifecycleRules(contract *model.Contract, now time.Time, defaultWarrantyDays int) {
	sanitizeContract(contract)

	if contract.Status == model.ContractStatusCompleted && contract.Warranty == nil {
		contract.Warranty = &model.Warranty{
			CompletionDate: dateOnly(now),
			Days:           defaultWarrantyDays,
		}
	}
}

// sanitizeContract fixa o piso zero de quantidades, valor e dias de
// garantia. Valores negativos nunca chegam à persistência.
func sanitizeContract(contract *model.Contract) {
	contract.PlatformContracted = clampNonNegative(contract.PlatformContracted)
	contract.PlatformInstalled = clampNonNegative(contract.PlatformInstalled)
	contract.ElevatorContracted = clampNonNegative(contract.ElevatorContracted)
	contract.ElevatorInstalled = clampNonNegative(contract.ElevatorInstalled)
	if contract.Value < 0 {
		contract.Value = 0
	}
	if contract.Warranty != nil && contract.Warranty.Days < 0 {
		contract.Warranty.Days = 0
	}
}

func clampNonNegative(value int) int {
	if value < 0 {
		return 0
	}
	return value
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
