package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractRow struct {
	ID                        uuid.UUID
	ClientID                  uuid.UUID
	ClientName                string
	Title                     string
	PlatformContracted        int
	PlatformInstalled         int
	ElevatorContracted        int
	ElevatorInstalled         int
	Value                     float64
	StartDate                 *time.Time
	EndDate                   *time.Time
	InstallationAddress       string
	EstimatedInstallationDate *time.Time
	Status                    string
	WarrantyCompletionDate    *time.Time
	WarrantyDays              *int
	Observations              string
	CreatedBy                 *uuid.UUID
	CreatedAt                 time.Time
}

func (row contractRow) toModel() model.Contract {
	contract := model.Contract{
		ID:                        row.ID,
		ClientID:                  row.ClientID,
		Title:                     row.Title,
		PlatformContracted:        row.PlatformContracted,
		PlatformInstalled:         row.PlatformInstalled,
		ElevatorContracted:        row.ElevatorContracted,
		ElevatorInstalled:         row.ElevatorInstalled,
		Value:                     row.Value,
		StartDate:                 row.StartDate,
		EndDate:                   row.EndDate,
		InstallationAddress:       row.InstallationAddress,
		EstimatedInstallationDate: row.EstimatedInstallationDate,
		Status:                    model.ContractStatus(row.Status),
		Observations:              row.Observations,
		CreatedBy:                 row.CreatedBy,
		CreatedAt:                 row.CreatedAt,
	}
	if row.WarrantyCompletionDate != nil && row.WarrantyDays != nil {
		contract.Warranty = &model.Warranty{
			CompletionDate: *row.WarrantyCompletionDate,
			Days:           *row.WarrantyDays,
		}
	}
	return contract
}

const contractColumns = `
	c.id,
	c.client_id,
	c.title,
	c.platform_contracted,
	c.platform_installed,
	c.elevator_contracted,
	c.elevator_installed,
	c.value,
	c.start_date,
	c.end_date,
	c.installation_address,
	c.estimated_installation_date,
	c.status,
	c.warranty_completion_date,
	c.warranty_days,
	c.observations,
	c.created_by,
	c.created_at
`

func (r *ContractRepository) List(ctx context.Context) ([]model.Contract, error) {
	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + contractColumns + `
		FROM contracts c
		ORDER BY c.created_at DESC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToContracts(rows), nil
}

// ListRows devolve contratos com o nome do cliente resolvido por join,
// para exportações e relatórios.
func (r *ContractRepository) ListRows(ctx context.Context) ([]model.ContractRow, error) {
	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + contractColumns + `,
			cl.name AS client_name
		FROM contracts c
		JOIN clients cl ON cl.id = c.client_id
		ORDER BY c.created_at DESC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]model.ContractRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.ContractRow{
			Contract:   row.toModel(),
			ClientName: row.ClientName,
		})
	}
	return result, nil
}

func (r *ContractRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Contract, error) {
	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts c
		WHERE c.client_id = ?
		ORDER BY c.created_at DESC
	`, clientID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToContracts(rows), nil
}

func (r *ContractRepository) ListByStatus(ctx context.Context, status model.ContractStatus) ([]model.Contract, error) {
	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts c
		WHERE c.status = ?
		ORDER BY c.created_at DESC
	`, status).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToContracts(rows), nil
}

func (r *ContractRepository) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var row contractRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts c
		WHERE c.id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	contract := row.toModel()
	return &contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			client_id,
			title,
			platform_contracted,
			platform_installed,
			elevator_contracted,
			elevator_installed,
			value,
			start_date,
			end_date,
			installation_address,
			estimated_installation_date,
			status,
			warranty_completion_date,
			warranty_days,
			observations,
			created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			client_id,
			title,
			platform_contracted,
			platform_installed,
			elevator_contracted,
			elevator_installed,
			value,
			start_date,
			end_date,
			installation_address,
			estimated_installation_date,
			status,
			warranty_completion_date,
			warranty_days,
			observations,
			created_by,
			created_at
	`,
		contract.ClientID,
		contract.Title,
		contract.PlatformContracted,
		contract.PlatformInstalled,
		contract.ElevatorContracted,
		contract.ElevatorInstalled,
		contract.Value,
		contract.StartDate,
		contract.EndDate,
		contract.InstallationAddress,
		contract.EstimatedInstallationDate,
		contract.Status,
		warrantyCompletion(contract.Warranty),
		warrantyDays(contract.Warranty),
		contract.Observations,
		contract.CreatedBy,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	saved := row.toModel()
	return &saved, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		UPDATE contracts
		SET
			client_id = ?,
			title = ?,
			platform_contracted = ?,
			platform_installed = ?,
			elevator_contracted = ?,
			elevator_installed = ?,
			value = ?,
			start_date = ?,
			end_date = ?,
			installation_address = ?,
			estimated_installation_date = ?,
			status = ?,
			warranty_completion_date = ?,
			warranty_days = ?,
			observations = ?
		WHERE id = ?
		RETURNING
			id,
			client_id,
			title,
			platform_contracted,
			platform_installed,
			elevator_contracted,
			elevator_installed,
			value,
			start_date,
			end_date,
			installation_address,
			estimated_installation_date,
			status,
			warranty_completion_date,
			warranty_days,
			observations,
			created_by,
			created_at
	`,
		contract.ClientID,
		contract.Title,
		contract.PlatformContracted,
		contract.PlatformInstalled,
		contract.ElevatorContracted,
		contract.ElevatorInstalled,
		contract.Value,
		contract.StartDate,
		contract.EndDate,
		contract.InstallationAddress,
		contract.EstimatedInstallationDate,
		contract.Status,
		warrantyCompletion(contract.Warranty),
		warrantyDays(contract.Warranty),
		contract.Observations,
		contract.ID,
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

func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func rowsToContracts(rows []contractRow) []model.Contract {
	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts
}

func warrantyCompletion(w *model.Warranty) *time.Time {
	if w == nil {
		return nil
	}
	return &w.CompletionDate
}

func warrantyDays(w *model.Warranty) *int {
	if w == nil {
		return nil
	}
	return &w.Days
}
