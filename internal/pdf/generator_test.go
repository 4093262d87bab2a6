package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sincrotec/gestao-service/internal/model"
)

func date(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestClientFicha(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.ClientFicha(model.ClientFicha{
		Client: model.Client{
			Name: "Prefeitura Municipal de São Paulo",
			CNPJ: "46.395.000/0001-39",
			Address: model.Address{
				Street: "Viaduto do Chá",
				Number: "15",
				City:   "São Paulo",
				State:  "SP",
				CEP:    "01002-020",
			},
		},
		Contracts: []model.Contract{
			{
				Title:     "Acessibilidade Paço Municipal",
				Status:    model.ContractStatusCompleted,
				Value:     185000.50,
				StartDate: date("2024-02-01"),
				Warranty:  &model.Warranty{CompletionDate: *date("2024-08-10"), Days: 365},
			},
			{Title: "Elevador Biblioteca Central", Status: model.ContractStatusActive, Value: 97000},
		},
		TotalValue:  282000.50,
		GeneratedAt: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestSalesByYear(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.SalesByYear([]model.YearSales{
		{Year: "2024", Platforms: 12, Elevators: 4, Value: 820000},
		{Year: "2023", Platforms: 8, Elevators: 2, Value: 510000},
		{Year: "Indefinido", Platforms: 1, Elevators: 0, Value: 30000},
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestSalesByState(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.SalesByState([]model.StateSales{
		{State: "MG", Platforms: 5, Elevators: 1, Total: 6},
		{State: "SP", Platforms: 9, Elevators: 3, Total: 12},
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestActiveWarranties(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.ActiveWarranties([]model.WarrantyRow{
		{
			ClientName:     "Câmara Municipal de Campinas",
			ContractTitle:  "Plataforma Plenário",
			CompletionDate: *date("2024-05-10"),
			Expiry:         *date("2025-05-10"),
			RemainingDays:  120,
		},
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestActiveWarrantiesEmpty(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.ActiveWarranties(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "0,00", formatBRL(0))
	assert.Equal(t, "1.234,56", formatBRL(1234.56))
	assert.Equal(t, "185.000,50", formatBRL(185000.50))
	assert.Equal(t, "1.000.000,00", formatBRL(1000000))
	assert.Equal(t, "-42,10", formatBRL(-42.10))
}
