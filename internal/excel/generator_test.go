package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sincrotec/gestao-service/internal/model"
)

func date(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestContractsWorkbook(t *testing.T) {
	generator := NewGenerator()

	content, err := generator.ContractsWorkbook([]model.ContractRow{
		{
			Contract: model.Contract{
				Title:              "Acessibilidade Fórum Regional",
				Status:             model.ContractStatusActive,
				PlatformContracted: 2,
				ElevatorContracted: 1,
				Value:              240000,
				StartDate:          date("2024-03-01"),
			},
			ClientName: "Tribunal de Justiça de SP",
		},
		{
			Contract: model.Contract{
				Title:  "Plataforma Escola Estadual",
				Status: model.ContractStatusCompleted,
				Value:  85000,
				Warranty: &model.Warranty{
					CompletionDate: *date("2024-06-15"),
					Days:           365,
				},
			},
			ClientName: "Secretaria de Educação",
		},
	}, time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Resumo", "Contratos"}, file.GetSheetList())

	total, err := file.GetCellValue("Resumo", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	client, err := file.GetCellValue("Contratos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Tribunal de Justiça de SP", client)

	warrantyEnd, err := file.GetCellValue("Contratos", "J3")
	require.NoError(t, err)
	assert.Equal(t, "15/06/2025", warrantyEnd)
}

func TestReceivablesWorkbook(t *testing.T) {
	generator := NewGenerator()
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	content, err := generator.ReceivablesWorkbook([]model.AccountsReceivable{
		{
			ClientName:    "Prefeitura de Sorocaba",
			ContractTitle: "Elevador Paço Municipal",
			InvoiceNumber: "NF-1021",
			Value:         120000,
			IssueDate:     date("2024-07-01"),
			DueDate:       date("2024-07-31"),
			Status:        model.ReceivableStatusPending,
		},
		{
			ClientName:    "Câmara de Jundiaí",
			ContractTitle: "Plataforma Plenário",
			Value:         45000,
			IssueDate:     date("2024-08-01"),
			DueDate:       date("2024-10-01"),
			Status:        model.ReceivableStatusReceived,
		},
	}, now)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Resumo", "Contas a Receber"}, file.GetSheetList())

	pending, err := file.GetCellValue("Resumo", "B4")
	require.NoError(t, err)
	assert.Equal(t, "120000", pending)

	overdueFlag, err := file.GetCellValue("Contas a Receber", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Sim", overdueFlag)

	notOverdue, err := file.GetCellValue("Contas a Receber", "H3")
	require.NoError(t, err)
	assert.Equal(t, "Não", notOverdue)
}
