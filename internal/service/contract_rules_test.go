package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/model"
)

func TestSanitizeContractClampsNegatives(t *testing.T) {
	contract := model.Contract{
		PlatformContracted: -5,
		PlatformInstalled:  -1,
		ElevatorContracted: 3,
		ElevatorInstalled:  -2,
		Value:              -100.50,
		Warranty:           &model.Warranty{CompletionDate: time.Now(), Days: -10},
	}

	sanitizeContract(&contract)

	assert.Equal(t, 0, contract.PlatformContracted)
	assert.Equal(t, 0, contract.PlatformInstalled)
	assert.Equal(t, 3, contract.ElevatorContracted)
	assert.Equal(t, 0, contract.ElevatorInstalled)
	assert.Equal(t, 0.0, contract.Value)
	assert.Equal(t, 0, contract.Warranty.Days)
}

func TestApplyLifecycleRulesSynthesizesWarranty(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	contract := model.Contract{Status: model.ContractStatusCompleted}
	applyLifecycleRules(&contract, now, 365)

	require.NotNil(t, contract.Warranty)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), contract.Warranty.CompletionDate)
	assert.Equal(t, 365, contract.Warranty.Days)
}

func TestApplyLifecycleRulesKeepsExistingWarranty(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := &model.Warranty{
		CompletionDate: time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		Days:           180,
	}

	contract := model.Contract{Status: model.ContractStatusCompleted, Warranty: existing}
	applyLifecycleRules(&contract, now, 365)

	assert.Equal(t, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), contract.Warranty.CompletionDate)
	assert.Equal(t, 180, contract.Warranty.Days)
}

func TestApplyLifecycleRulesOnlyFiresOnCompleted(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range []model.ContractStatus{
		model.ContractStatusPending,
		model.ContractStatusActive,
		model.ContractStatusClosed,
	} {
		contract := model.Contract{Status: status}
		applyLifecycleRules(&contract, now, 365)
		assert.Nil(t, contract.Warranty, "status %s must not synthesize a warranty", status)
	}
}
