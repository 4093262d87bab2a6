package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (row userRow) toModel() model.User {
	return model.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         model.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		ORDER BY name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM users`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	user := row.toModel()
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE LOWER(email) = ?
		LIMIT 1
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	user := row.toModel()
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, email, password_hash, role, created_at
	`,
		user.Name,
		strings.TrimSpace(user.Email),
		user.PasswordHash,
		user.Role,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	saved := row.toModel()
	return &saved, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE users SET password_hash = ? WHERE id = ?
	`, passwordHash, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
