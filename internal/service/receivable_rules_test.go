package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/model"
)

func TestEligibleForBilling(t *testing.T) {
	completed := model.Contract{ID: uuid.New(), Status: model.ContractStatusCompleted}
	completedBilled := model.Contract{ID: uuid.New(), Status: model.ContractStatusCompleted}
	active := model.Contract{ID: uuid.New(), Status: model.ContractStatusActive}

	eligible := eligibleForBilling(
		[]model.Contract{completed, completedBilled, active},
		[]uuid.UUID{completedBilled.ID},
	)

	require.Len(t, eligible, 1)
	assert.Equal(t, completed.ID, eligible[0].ID)
}

func TestEligibleForBillingEmptyInputs(t *testing.T) {
	assert.Empty(t, eligibleForBilling(nil, nil))
	assert.Empty(t, eligibleForBilling(nil, []uuid.UUID{uuid.New()}))
}
