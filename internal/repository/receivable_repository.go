package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
)

type ReceivableRepository struct {
	db *gorm.DB
}

func NewReceivableRepository(db *gorm.DB) *ReceivableRepository {
	return &ReceivableRepository{db: db}
}

type receivableRow struct {
	ID            uuid.UUID
	ContractID    uuid.UUID
	InvoiceNumber string
	Value         float64
	IssueDate     *time.Time
	DueDate       *time.Time
	Status        string
	Observations  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ClientName    string
	ContractTitle string
}

func (row receivableRow) toModel() model.AccountsReceivable {
	return model.AccountsReceivable{
		ID:            row.ID,
		ContractID:    row.ContractID,
		InvoiceNumber: row.InvoiceNumber,
		Value:         row.Value,
		IssueDate:     row.IssueDate,
		DueDate:       row.DueDate,
		Status:        model.ReceivableStatus(row.Status),
		Observations:  row.Observations,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		ClientName:    row.ClientName,
		ContractTitle: row.ContractTitle,
	}
}

// List devolve as cobranças com nome do cliente e título do contrato
// resolvidos por join no momento da leitura.
func (r *ReceivableRepository) List(ctx context.Context) ([]model.AccountsReceivable, error) {
	var rows []receivableRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			ar.id,
			ar.contract_id,
			ar.invoice_number,
			ar.value,
			ar.issue_date,
			ar.due_date,
			ar.status,
			ar.observations,
			ar.created_at,
			ar.updated_at,
			cl.name AS client_name,
			c.title AS contract_title
		FROM accounts_receivable ar
		JOIN contracts c ON c.id = ar.contract_id
		JOIN clients cl ON cl.id = c.client_id
		ORDER BY ar.created_at DESC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	receivables := make([]model.AccountsReceivable, 0, len(rows))
	for _, row := range rows {
		receivables = append(receivables, row.toModel())
	}
	return receivables, nil
}

func (r *ReceivableRepository) Get(ctx context.Context, id uuid.UUID) (*model.AccountsReceivable, error) {
	var row receivableRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			ar.id,
			ar.contract_id,
			ar.invoice_number,
			ar.value,
			ar.issue_date,
			ar.due_date,
			ar.status,
			ar.observations,
			ar.created_at,
			ar.updated_at,
			cl.name AS client_name,
			c.title AS contract_title
		FROM accounts_receivable ar
		JOIN contracts c ON c.id = ar.contract_id
		JOIN clients cl ON cl.id = c.client_id
		WHERE ar.id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	receivable := row.toModel()
	return &receivable, nil
}

// ExistsForContract é a pré-checagem da regra de uma cobrança por contrato.
// O índice único em contract_id cobre a corrida entre duas gerações.
func (r *ReceivableRepository) ExistsForContract(ctx context.Context, contractID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM accounts_receivable WHERE contract_id = ?
	`, contractID).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ContractIDsWithReceivable devolve os contratos já cobrados, para o
// cálculo de elegibilidade.
func (r *ReceivableRepository) ContractIDsWithReceivable(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Raw(`
		SELECT contract_id FROM accounts_receivable
	`).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *ReceivableRepository) Create(ctx context.Context, receivable model.AccountsReceivable) (*model.AccountsReceivable, error) {
	var row receivableRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO accounts_receivable (
			contract_id, invoice_number, value, issue_date, due_date, status, observations
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id, contract_id, invoice_number, value, issue_date, due_date,
			status, observations, created_at, updated_at
	`,
		receivable.ContractID,
		receivable.InvoiceNumber,
		receivable.Value,
		receivable.IssueDate,
		receivable.DueDate,
		receivable.Status,
		receivable.Observations,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	saved := row.toModel()
	return &saved, nil
}

func (r *ReceivableRepository) Update(ctx context.Context, receivable model.AccountsReceivable) (*model.AccountsReceivable, error) {
	var row receivableRow
	err := r.db.WithContext(ctx).Raw(`
		UPDATE accounts_receivable
		SET
			invoice_number = ?,
			value = ?,
			issue_date = ?,
			due_date = ?,
			status = ?,
			observations = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING
			id, contract_id, invoice_number, value, issue_date, due_date,
			status, observations, created_at, updated_at
	`,
		receivable.InvoiceNumber,
		receivable.Value,
		receivable.IssueDate,
		receivable.DueDate,
		receivable.Status,
		receivable.Observations,
		receivable.ID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	saved := row.toModel()
	return &saved, nil
}

func (r *ReceivableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReceivableStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE accounts_receivable
		SET status = ?, updated_at = NOW()
		WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReceivableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM accounts_receivable WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
