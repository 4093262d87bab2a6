package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/auth"
	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/repository"
)

const minPasswordLength = 8

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users *repository.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignInResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAccessToken(*user)
	if err != nil {
		return nil, err
	}
	return &SignInResult{Token: token, User: *user}, nil
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     model.UserRole
}

// SignUp cria um usuário. Sem principal, funciona apenas como bootstrap da
// primeira conta, que nasce admin; depois disso a criação exige admin.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput, principal *model.Principal) (*model.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.UserRoleUser
	}
	if role != model.UserRoleAdmin && role != model.UserRoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	if count == 0 {
		role = model.UserRoleAdmin
	} else {
		if principal == nil || !principal.IsAdmin() {
			return nil, ErrPermissionDenied
		}
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, model.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Role:         role,
	})
}

func (s *AuthService) Profile(ctx context.Context, principal model.Principal) (*model.User, error) {
	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset emite um token de redefinição de curta duração para
// o e-mail informado.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.tokens.IssueResetToken(*user)
}

func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	userID, err := s.tokens.ParseReset(resetToken)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ChangePassword troca a senha do próprio usuário autenticado.
func (s *AuthService) ChangePassword(ctx context.Context, principal model.Principal, current, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if id == principal.UserID {
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
