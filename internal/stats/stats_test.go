package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/stats"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestComputeCounts(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	contracts := []model.Contract{
		{Status: model.ContractStatusActive, Value: 100},
		{Status: model.ContractStatusActive, Value: 200},
		{Status: model.ContractStatusPending, Value: 50},
		{Status: model.ContractStatusClosed, Value: 10},
	}

	s := stats.Compute(nil, contracts, now)

	assert.Equal(t, 2, s.ActiveContractsCount)
	assert.Equal(t, 1, s.PendingContractsCount)
	assert.Equal(t, 360.0, s.TotalValue)
}

func TestComputeAnnualValue(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	contracts := []model.Contract{
		{Value: 100, StartDate: datePtr(t, "2023-05-10")},
		{Value: 50, StartDate: datePtr(t, "2024-01-20")},
		{Value: 25}, // sem data de início: conta só no total
	}

	s := stats.Compute(nil, contracts, now)

	assert.Equal(t, 50.0, s.AnnualValue)
	assert.Equal(t, 175.0, s.TotalValue)
	assert.Equal(t, 2024, s.CurrentYear)
}

func TestComputeInstallationRate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero contracted yields zero rate", func(t *testing.T) {
		s := stats.Compute(nil, []model.Contract{{Status: model.ContractStatusActive}}, now)
		assert.Equal(t, 0.0, s.InstallationRate)
	})

	t.Run("rate stays within bounds", func(t *testing.T) {
		contracts := []model.Contract{
			{PlatformContracted: 4, PlatformInstalled: 1},
			{ElevatorContracted: 4, ElevatorInstalled: 1},
		}
		s := stats.Compute(nil, contracts, now)
		assert.Equal(t, 25.0, s.InstallationRate)
		assert.GreaterOrEqual(t, s.InstallationRate, 0.0)
		assert.LessOrEqual(t, s.InstallationRate, 100.0)
	})
}

func TestComputeApproachingDeadlines(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	today := now
	in16 := now.AddDate(0, 0, 16)

	contracts := []model.Contract{
		{Title: "hoje", Status: model.ContractStatusActive, EstimatedInstallationDate: &today},
		{Title: "dezesseis", Status: model.ContractStatusActive, EstimatedInstallationDate: &in16},
		{Title: "concluído", Status: model.ContractStatusCompleted, EstimatedInstallationDate: &today},
		{Title: "sem prazo", Status: model.ContractStatusActive},
	}

	s := stats.Compute(nil, contracts, now)

	require.Len(t, s.ApproachingDeadlines, 1)
	assert.Equal(t, "hoje", s.ApproachingDeadlines[0].Title)
	assert.Equal(t, 1, s.CriticalContracts)
}

func TestComputeGrowthRate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero when annual value is zero", func(t *testing.T) {
		contracts := []model.Contract{{Value: 100, StartDate: datePtr(t, "2023-01-01")}}
		s := stats.Compute(nil, contracts, now)
		assert.Equal(t, 0.0, s.GrowthRate)
	})

	t.Run("zero when total does not exceed annual", func(t *testing.T) {
		contracts := []model.Contract{{Value: 100, StartDate: datePtr(t, "2024-01-01")}}
		s := stats.Compute(nil, contracts, now)
		assert.Equal(t, 0.0, s.GrowthRate)
	})

	t.Run("percentage over annual base", func(t *testing.T) {
		contracts := []model.Contract{
			{Value: 100, StartDate: datePtr(t, "2023-01-01")},
			{Value: 50, StartDate: datePtr(t, "2024-01-01")},
		}
		s := stats.Compute(nil, contracts, now)
		assert.InDelta(t, 200.0, s.GrowthRate, 0.0001)
	})
}

func TestComputeInsights(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("warning on low installation rate", func(t *testing.T) {
		contracts := []model.Contract{{PlatformContracted: 10, PlatformInstalled: 2}}
		s := stats.Compute(nil, contracts, now)

		require.Len(t, s.Insights, 3)
		assert.Equal(t, "20.0%", s.Insights[0].Value)
		assert.Equal(t, model.InsightStatusWarning, s.Insights[0].Status)
		assert.Equal(t, model.InsightStatusSuccess, s.Insights[1].Status)
		assert.Equal(t, model.InsightStatusInfo, s.Insights[2].Status)
	})

	t.Run("danger when deadlines approach", func(t *testing.T) {
		deadline := now.AddDate(0, 0, 3)
		contracts := []model.Contract{
			{Status: model.ContractStatusActive, EstimatedInstallationDate: &deadline},
		}
		s := stats.Compute(nil, contracts, now)

		assert.Equal(t, "Atenção", s.Insights[1].Value)
		assert.Equal(t, model.InsightStatusDanger, s.Insights[1].Status)
		assert.Contains(t, s.Insights[1].Description, "1 contratos")
	})

	t.Run("low risk without deadlines", func(t *testing.T) {
		s := stats.Compute(nil, nil, now)
		assert.Equal(t, "Baixo", s.Insights[1].Value)
	})
}
