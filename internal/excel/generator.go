package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sincrotec/gestao-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ContractsWorkbook monta a planilha de contratos com uma aba de resumo e
// uma aba de detalhamento linha a linha.
func (g *Generator) ContractsWorkbook(rows []model.ContractRow, generatedAt time.Time) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Resumo"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeContractSummary(file, summarySheet, rows, generatedAt); err != nil {
		return nil, err
	}

	detailSheet := "Contratos"
	file.NewSheet(detailSheet)
	if err := g.writeContractDetail(file, detailSheet, rows); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeContractSummary(file *excelize.File, sheet string, rows []model.ContractRow, generatedAt time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalValue := 0.0
	platforms := 0
	elevators := 0
	byStatus := map[model.ContractStatus]int{}
	for _, row := range rows {
		totalValue += row.Value
		platforms += row.PlatformContracted
		elevators += row.ElevatorContracted
		byStatus[row.Status]++
	}

	set("A1", "Relatório de Contratos")
	set("A2", "Gerado em")
	set("B2", generatedAt.Format("02/01/2006 15:04"))
	set("A3", "Total de contratos")
	set("B3", len(rows))
	set("A4", "Valor total (R$)")
	set("B4", totalValue)
	set("A5", "Plataformas contratadas")
	set("B5", platforms)
	set("A6", "Elevadores contratados")
	set("B6", elevators)

	tableRow := 8
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Quantidade")

	statuses := []model.ContractStatus{
		model.ContractStatusPending,
		model.ContractStatusActive,
		model.ContractStatusCompleted,
		model.ContractStatusClosed,
	}
	for i, status := range statuses {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), byStatus[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 30)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeContractDetail(file *excelize.File, sheet string, rows []model.ContractRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Cliente",
		"Título",
		"Status",
		"Plataformas",
		"Elevadores",
		"Valor (R$)",
		"Início",
		"Vencimento",
		"Previsão de Instalação",
		"Fim da Garantia",
		"Observações",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		line := i + 2
		warrantyEnd := ""
		if row.Warranty != nil && !row.Warranty.CompletionDate.IsZero() {
			warrantyEnd = formatDate(row.Warranty.CompletionDate.AddDate(0, 0, row.Warranty.Days))
		}
		set(fmt.Sprintf("A%d", line), row.ClientName)
		set(fmt.Sprintf("B%d", line), row.Title)
		set(fmt.Sprintf("C%d", line), string(row.Status))
		set(fmt.Sprintf("D%d", line), row.PlatformContracted)
		set(fmt.Sprintf("E%d", line), row.ElevatorContracted)
		set(fmt.Sprintf("F%d", line), row.Value)
		set(fmt.Sprintf("G%d", line), formatDatePtr(row.StartDate))
		set(fmt.Sprintf("H%d", line), formatDatePtr(row.EndDate))
		set(fmt.Sprintf("I%d", line), formatDatePtr(row.EstimatedInstallationDate))
		set(fmt.Sprintf("J%d", line), warrantyEnd)
		set(fmt.Sprintf("K%d", line), row.Observations)
	}

	_ = file.SetColWidth(sheet, "A", "B", 36)
	_ = file.SetColWidth(sheet, "C", "C", 22)
	_ = file.SetColWidth(sheet, "D", "F", 14)
	_ = file.SetColWidth(sheet, "G", "J", 16)
	_ = file.SetColWidth(sheet, "K", "K", 40)
	return nil
}

// ReceivablesWorkbook monta a planilha de contas a receber com o resumo
// financeiro e o detalhamento das faturas, sinalizando as vencidas.
func (g *Generator) ReceivablesWorkbook(receivables []model.AccountsReceivable, generatedAt time.Time) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Resumo"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeReceivableSummary(file, summarySheet, receivables, generatedAt); err != nil {
		return nil, err
	}

	detailSheet := "Contas a Receber"
	file.NewSheet(detailSheet)
	if err := g.writeReceivableDetail(file, detailSheet, receivables, generatedAt); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeReceivableSummary(file *excelize.File, sheet string, receivables []model.AccountsReceivable, generatedAt time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	var pending, received, overdue float64
	overdueCount := 0
	for _, receivable := range receivables {
		switch receivable.Status {
		case model.ReceivableStatusPending:
			pending += receivable.Value
			if receivable.Overdue(generatedAt) {
				overdue += receivable.Value
				overdueCount++
			}
		case model.ReceivableStatusReceived:
			received += receivable.Value
		}
	}

	set("A1", "Relatório de Contas a Receber")
	set("A2", "Gerado em")
	set("B2", generatedAt.Format("02/01/2006 15:04"))
	set("A3", "Total de faturas")
	set("B3", len(receivables))
	set("A4", "Valor pendente (R$)")
	set("B4", pending)
	set("A5", "Valor recebido (R$)")
	set("B5", received)
	set("A6", "Valor vencido (R$)")
	set("B6", overdue)
	set("A7", "Faturas vencidas")
	set("B7", overdueCount)

	_ = file.SetColWidth(sheet, "A", "A", 30)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeReceivableDetail(file *excelize.File, sheet string, receivables []model.AccountsReceivable, generatedAt time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Cliente",
		"Contrato",
		"Nota Fiscal",
		"Valor (R$)",
		"Emissão",
		"Vencimento",
		"Status",
		"Vencida",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, receivable := range receivables {
		line := i + 2
		overdueLabel := "Não"
		if receivable.Overdue(generatedAt) {
			overdueLabel = "Sim"
		}
		set(fmt.Sprintf("A%d", line), receivable.ClientName)
		set(fmt.Sprintf("B%d", line), receivable.ContractTitle)
		set(fmt.Sprintf("C%d", line), receivable.InvoiceNumber)
		set(fmt.Sprintf("D%d", line), receivable.Value)
		set(fmt.Sprintf("E%d", line), formatDatePtr(receivable.IssueDate))
		set(fmt.Sprintf("F%d", line), formatDatePtr(receivable.DueDate))
		set(fmt.Sprintf("G%d", line), string(receivable.Status))
		set(fmt.Sprintf("H%d", line), overdueLabel)
	}

	_ = file.SetColWidth(sheet, "A", "B", 36)
	_ = file.SetColWidth(sheet, "C", "C", 18)
	_ = file.SetColWidth(sheet, "D", "F", 14)
	_ = file.SetColWidth(sheet, "G", "G", 14)
	_ = file.SetColWidth(sheet, "H", "H", 10)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
