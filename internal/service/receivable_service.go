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

type ReceivableService struct {
	receivables *repository.ReceivableRepository
	contracts   *repository.ContractRepository
	cfg         *config.Config
}

func NewReceivableService(receivables *repository.ReceivableRepository, contracts *repository.ContractRepository, cfg *config.Config) *ReceivableService {
	return &ReceivableService{receivables: receivables, contracts: contracts, cfg: cfg}
}

func (s *ReceivableService) List(ctx context.Context) ([]model.AccountsReceivable, error) {
	return s.receivables.List(ctx)
}

func (s *ReceivableService) Get(ctx context.Context, id uuid.UUID) (*model.AccountsReceivable, error) {
	receivable, err := s.receivables.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return receivable, nil
}

// EligibleContracts lista contratos concluídos que ainda não geraram
// cobrança.
func (s *ReceivableService) EligibleContracts(ctx context.Context) ([]model.Contract, error) {
	completed, err := s.contracts.ListByStatus(ctx, model.ContractStatusCompleted)
	if err != nil {
		return nil, err
	}
	billed, err := s.receivables.ContractIDsWithReceivable(ctx)
	if err != nil {
		return nil, err
	}
	return eligibleForBilling(completed, billed), nil
}

// Generate materializa a cobrança de um contrato elegível com emissão hoje
// e vencimento em cfg.Billing.DueDays dias.
func (s *ReceivableService) Generate(ctx context.Context, contractID uuid.UUID) (*model.AccountsReceivable, error) {
	contract, err := s.contracts.Get(ctx, contractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if contract.Status != model.ContractStatusCompleted {
		return nil, fmt.Errorf("%w: contract installation is not completed", ErrInvalidInput)
	}

	exists, err := s.receivables.ExistsForContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: contract already has a receivable", ErrConflict)
	}

	issue := dateOnly(time.Now())
	due := issue.AddDate(0, 0, s.cfg.Billing.DueDays)

	return s.receivables.Create(ctx, model.AccountsReceivable{
		ContractID: contractID,
		Value:      contract.Value,
		IssueDate:  &issue,
		DueDate:    &due,
		Status:     model.ReceivableStatusPending,
	})
}

func (s *ReceivableService) Update(ctx context.Context, receivable model.AccountsReceivable) (*model.AccountsReceivable, error) {
	if !receivable.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, receivable.Status)
	}
	saved, err := s.receivables.Update(ctx, receivable)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

// AdvanceStatus move uma cobrança pendente para Recebida ou Cancelada.
func (s *ReceivableService) AdvanceStatus(ctx context.Context, id uuid.UUID, status model.ReceivableStatus) error {
	if status != model.ReceivableStatusReceived && status != model.ReceivableStatusCancelled {
		return fmt.Errorf("%w: status must be %q or %q", ErrInvalidInput, model.ReceivableStatusReceived, model.ReceivableStatusCancelled)
	}
	if err := s.receivables.UpdateStatus(ctx, id, status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ReceivableService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := s.receivables.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// eligibleForBilling aplica o predicado de elegibilidade: instalação
// concluída e nenhuma cobrança referenciando o contrato.
func eligibleForBilling(contracts []model.Contract, billedContractIDs []uuid.UUID) []model.Contract {
	billed := make(map[uuid.UUID]struct{}, len(billedContractIDs))
	for _, id := range billedContractIDs {
		billed[id] = struct{}{}
	}

	eligible := make([]model.Contract, 0, len(contracts))
	for _, contract := range contracts {
		if contract.Status != model.ContractStatusCompleted {
			continue
		}
		if _, ok := billed[contract.ID]; ok {
			continue
		}
		eligible = append(eligible, contract)
	}
	return eligible
}
