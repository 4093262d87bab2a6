package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSalesByYear(t *testing.T) {
	start2023 := date(2023, 3, 1)
	start2024 := date(2024, 7, 1)

	contracts := []model.Contract{
		{StartDate: &start2023, PlatformContracted: 2, ElevatorContracted: 1, Value: 100},
		{StartDate: &start2023, PlatformContracted: 1, Value: 50},
		{StartDate: &start2024, ElevatorContracted: 3, Value: 200},
		{PlatformContracted: 1, Value: 10}, // sem data de início
	}

	rows := salesByYear(contracts)
	require.Len(t, rows, 3)

	// Mais recente primeiro; "Indefinido" ordena antes dos anos numéricos.
	assert.Equal(t, "Indefinido", rows[0].Year)
	assert.Equal(t, "2024", rows[1].Year)
	assert.Equal(t, 3, rows[1].Elevators)
	assert.Equal(t, 200.0, rows[1].Value)
	assert.Equal(t, "2023", rows[2].Year)
	assert.Equal(t, 3, rows[2].Platforms)
	assert.Equal(t, 150.0, rows[2].Value)
}

func TestSalesByState(t *testing.T) {
	clientSP := model.Client{ID: uuid.New(), Address: model.Address{State: "SP"}}
	clientRJ := model.Client{ID: uuid.New(), Address: model.Address{State: "RJ"}}
	clients := []model.Client{clientSP, clientRJ}

	contracts := []model.Contract{
		{ClientID: clientSP.ID, PlatformContracted: 2, ElevatorContracted: 1},
		{ClientID: clientRJ.ID, PlatformContracted: 1},
		{ClientID: uuid.New(), ElevatorContracted: 5}, // cliente desconhecido
	}

	rows := salesByState(contracts, clients)
	require.Len(t, rows, 3)

	assert.Equal(t, "Não Informado", rows[0].State)
	assert.Equal(t, 5, rows[0].Total)
	assert.Equal(t, "RJ", rows[1].State)
	assert.Equal(t, 1, rows[1].Total)
	assert.Equal(t, "SP", rows[2].State)
	assert.Equal(t, 3, rows[2].Total)
}

func TestActiveWarrantyRowsSortedByRemainingDays(t *testing.T) {
	now := date(2024, 6, 1)
	client := model.Client{ID: uuid.New(), Name: "Prefeitura de Campinas"}

	soon := model.Contract{
		ClientID: client.ID,
		Title:    "vence primeiro",
		Warranty: &model.Warranty{CompletionDate: date(2024, 5, 1), Days: 40},
	}
	later := model.Contract{
		ClientID: client.ID,
		Title:    "vence depois",
		Warranty: &model.Warranty{CompletionDate: date(2024, 5, 1), Days: 365},
	}
	expired := model.Contract{
		ClientID: client.ID,
		Warranty: &model.Warranty{CompletionDate: date(2023, 1, 1), Days: 30},
	}
	noWarranty := model.Contract{ClientID: client.ID}

	rows := activeWarrantyRows([]model.Contract{later, expired, soon, noWarranty}, []model.Client{client}, now)

	require.Len(t, rows, 2)
	assert.Equal(t, "vence primeiro", rows[0].ContractTitle)
	assert.Equal(t, "vence depois", rows[1].ContractTitle)
	assert.Equal(t, "Prefeitura de Campinas", rows[0].ClientName)
	assert.Less(t, rows[0].RemainingDays, rows[1].RemainingDays)
}
