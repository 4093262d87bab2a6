package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/stats"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same instant", now, 0},
		{"tomorrow", now.AddDate(0, 0, 1), 1},
		{"fifteen days", now.AddDate(0, 0, 15), 15},
		{"yesterday", now.AddDate(0, 0, -1), -1},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.DaysUntil(tt.date, now))
		})
	}
}

func TestIsUrgent(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	today := now
	in15 := now.AddDate(0, 0, 15)
	in16 := now.AddDate(0, 0, 16)
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		contract model.Contract
		want     bool
	}{
		{"deadline today", model.Contract{Status: model.ContractStatusActive, EstimatedInstallationDate: &today}, true},
		{"deadline at window edge", model.Contract{Status: model.ContractStatusPending, EstimatedInstallationDate: &in15}, true},
		{"deadline past window", model.Contract{Status: model.ContractStatusActive, EstimatedInstallationDate: &in16}, false},
		{"deadline already missed", model.Contract{Status: model.ContractStatusActive, EstimatedInstallationDate: &past}, false},
		{"completed never urgent", model.Contract{Status: model.ContractStatusCompleted, EstimatedInstallationDate: &today}, false},
		{"closed never urgent", model.Contract{Status: model.ContractStatusClosed, EstimatedInstallationDate: &today}, false},
		{"no deadline", model.Contract{Status: model.ContractStatusActive}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.IsUrgent(tt.contract, now))
		})
	}
}

func TestWarranty(t *testing.T) {
	completion := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("active warranty with remaining days", func(t *testing.T) {
		c := model.Contract{Warranty: &model.Warranty{CompletionDate: completion, Days: 30}}

		expiry, ok := stats.WarrantyExpiry(c)
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), expiry)
		assert.True(t, stats.IsWarrantyActive(c, now))
		assert.Equal(t, 11, stats.WarrantyRemainingDays(c, now))
	})

	t.Run("expired warranty", func(t *testing.T) {
		c := model.Contract{Warranty: &model.Warranty{CompletionDate: completion, Days: 10}}
		assert.False(t, stats.IsWarrantyActive(c, now))
	})

	t.Run("no warranty record", func(t *testing.T) {
		c := model.Contract{}
		_, ok := stats.WarrantyExpiry(c)
		assert.False(t, ok)
		assert.False(t, stats.IsWarrantyActive(c, now))
		assert.Equal(t, 0, stats.WarrantyRemainingDays(c, now))
	})

	t.Run("invalid completion date excluded", func(t *testing.T) {
		c := model.Contract{Warranty: &model.Warranty{Days: 365}}
		assert.False(t, stats.IsWarrantyActive(c, now))
	})
}
