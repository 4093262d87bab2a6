package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sincrotec/gestao-service/internal/model"
)

const scopePasswordReset = "password_reset"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongScope   = errors.New("token scope mismatch")
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// Manager emite e valida os tokens de acesso e de redefinição de senha.
type Manager struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewManager(secret string, accessTTL, resetTTL time.Duration) *Manager {
	return &Manager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

func (m *Manager) IssueAccessToken(user model.User) (string, error) {
	return m.issue(user, "", m.accessTTL)
}

func (m *Manager) IssueResetToken(user model.User) (string, error) {
	return m.issue(user, scopePasswordReset, m.resetTTL)
}

func (m *Manager) issue(user model.User, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  string(user.Role),
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAccess valida um token de acesso e devolve o principal autenticado.
func (m *Manager) ParseAccess(raw string) (model.Principal, error) {
	claims, err := m.parse(raw)
	if err != nil {
		return model.Principal{}, err
	}
	if claims.Scope != "" {
		return model.Principal{}, ErrWrongScope
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}
	return model.Principal{
		UserID: userID,
		Email:  claims.Email,
		Role:   model.UserRole(claims.Role),
	}, nil
}

// ParseReset valida um token de redefinição e devolve o id do usuário.
func (m *Manager) ParseReset(raw string) (uuid.UUID, error) {
	claims, err := m.parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Scope != scopePasswordReset {
		return uuid.Nil, ErrWrongScope
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

func (m *Manager) parse(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
