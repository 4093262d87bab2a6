package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientRow struct {
	ID            uuid.UUID
	Name          string
	CNPJ          string
	Street        string
	Number        string
	Neighborhood  string
	CEP           string
	City          string
	State         string
	Phone         string
	Whatsapp      string
	Email         string
	ContactPerson string
	CreatedAt     time.Time
}

func (row clientRow) toModel() model.Client {
	return model.Client{
		ID:   row.ID,
		Name: row.Name,
		CNPJ: row.CNPJ,
		Address: model.Address{
			Street:       row.Street,
			Number:       row.Number,
			Neighborhood: row.Neighborhood,
			CEP:          row.CEP,
			City:         row.City,
			State:        row.State,
		},
		Phone:         row.Phone,
		Whatsapp:      row.Whatsapp,
		Email:         row.Email,
		ContactPerson: row.ContactPerson,
		CreatedAt:     row.CreatedAt,
	}
}

const clientColumns = `
	id,
	name,
	cnpj,
	street,
	number,
	neighborhood,
	cep,
	city,
	state,
	phone,
	whatsapp,
	email,
	contact_person,
	created_at
`

func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var rows []clientRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]model.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, row.toModel())
	}
	return clients, nil
}

func (r *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var row clientRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	client := row.toModel()
	return &client, nil
}

func (r *ClientRepository) Create(ctx context.Context, client model.Client) (*model.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO clients (
			name, cnpj, street, number, neighborhood, cep, city, state,
			phone, whatsapp, email, contact_person
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+clientColumns,
		client.Name,
		client.CNPJ,
		client.Address.Street,
		client.Address.Number,
		client.Address.Neighborhood,
		client.Address.CEP,
		client.Address.City,
		client.Address.State,
		client.Phone,
		client.Whatsapp,
		client.Email,
		client.ContactPerson,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	saved := row.toModel()
	return &saved, nil
}

func (r *ClientRepository) Update(ctx context.Context, client model.Client) (*model.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).Raw(`
		UPDATE clients
		SET
			name = ?,
			cnpj = ?,
			street = ?,
			number = ?,
			neighborhood = ?,
			cep = ?,
			city = ?,
			state = ?,
			phone = ?,
			whatsapp = ?,
			email = ?,
			contact_person = ?
		WHERE id = ?
		RETURNING `+clientColumns,
		client.Name,
		client.CNPJ,
		client.Address.Street,
		client.Address.Number,
		client.Address.Neighborhood,
		client.Address.CEP,
		client.Address.City,
		client.Address.State,
		client.Phone,
		client.Whatsapp,
		client.Email,
		client.ContactPerson,
		client.ID,
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

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM clients WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
