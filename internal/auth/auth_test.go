package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/auth"
	"github.com/sincrotec/gestao-service/internal/model"
)

func testUser() model.User {
	return model.User{
		ID:    uuid.New(),
		Name:  "Maria",
		Email: "maria@example.com",
		Role:  model.UserRoleAdmin,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := auth.NewManager("test-secret", time.Hour, time.Minute)
	user := testUser()

	token, err := manager.IssueAccessToken(user)
	require.NoError(t, err)

	principal, err := manager.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, user.Email, principal.Email)
	assert.Equal(t, model.UserRoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestParseAccessRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-a", time.Hour, time.Minute)
	verifier := auth.NewManager("secret-b", time.Hour, time.Minute)

	token, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ParseAccess(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseAccessRejectsExpired(t *testing.T) {
	manager := auth.NewManager("test-secret", -time.Minute, time.Minute)

	token, err := manager.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = manager.ParseAccess(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestResetTokenScope(t *testing.T) {
	manager := auth.NewManager("test-secret", time.Hour, time.Hour)
	user := testUser()

	resetToken, err := manager.IssueResetToken(user)
	require.NoError(t, err)

	// Token de redefinição não serve como token de acesso e vice-versa.
	_, err = manager.ParseAccess(resetToken)
	assert.ErrorIs(t, err, auth.ErrWrongScope)

	userID, err := manager.ParseReset(resetToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	accessToken, err := manager.IssueAccessToken(user)
	require.NoError(t, err)
	_, err = manager.ParseReset(accessToken)
	assert.ErrorIs(t, err, auth.ErrWrongScope)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3nha-forte")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(hash, "s3nha-forte"))
	assert.False(t, auth.CheckPassword(hash, "errada"))
}
