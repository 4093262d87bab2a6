package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/sincrotec/gestao-service/internal/model"
)

// Generator produz os relatórios do painel em PDF. Usa as fontes nativas
// com o tradutor cp1252, suficiente para os acentos do português.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) ClientFicha(ficha model.ClientFicha) ([]byte, error) {
	pdf, tr := g.newDocument()

	g.title(pdf, tr, "Ficha Cadastral do Cliente")
	g.generatedAt(pdf, tr, ficha.GeneratedAt)

	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, tr("Dados da Instituição/Órgão"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	client := ficha.Client
	infoRows := [][2]string{
		{"Nome:", client.Name},
		{"CNPJ:", client.CNPJ},
		{"Contato:", client.ContactPerson},
		{"E-mail:", client.Email},
		{"Telefone:", client.Phone},
		{"WhatsApp:", client.Whatsapp},
		{"Endereço:", fmt.Sprintf("%s, %s - %s", client.Address.Street, client.Address.Number, client.Address.Neighborhood)},
		{"Localidade:", fmt.Sprintf("%s / %s - CEP: %s", client.Address.City, client.Address.State, client.Address.CEP)},
	}
	for _, row := range infoRows {
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(35, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 6, tr(safeValue(row[1])), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, tr("Histórico de Contratos"), "", 1, "L", false, 0, "")

	headers := []string{"Título do Contrato", "Status", "Início", "Vencimento", "Garantia", "Valor (R$)"}
	widths := []float64{55, 32, 20, 22, 22, 29}
	g.tableRow(pdf, tr, headers, widths, true)

	for _, contract := range ficha.Contracts {
		warrantyEnd := "-"
		if contract.Warranty != nil && !contract.Warranty.CompletionDate.IsZero() {
			expiry := contract.Warranty.CompletionDate.AddDate(0, 0, contract.Warranty.Days)
			warrantyEnd = formatDate(expiry)
		}
		g.tableRow(pdf, tr, []string{
			safeValue(contract.Title),
			string(contract.Status),
			formatDatePtr(contract.StartDate),
			formatDatePtr(contract.EndDate),
			warrantyEnd,
			formatBRL(contract.Value),
		}, widths, false)
	}

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total de Contratos Localizados: %d", len(ficha.Contracts))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Investimento Global Acumulado: R$ %s", formatBRL(ficha.TotalValue))), "", 1, "L", false, 0, "")

	return output(pdf)
}

func (g *Generator) SalesByYear(rows []model.YearSales, generatedAt time.Time) ([]byte, error) {
	pdf, tr := g.newDocument()

	g.title(pdf, tr, "Relatório Consolidado: Vendas por Ano")
	g.generatedAt(pdf, tr, generatedAt)

	headers := []string{"Exercício (Ano)", "Plataformas", "Elevadores", "Volume Financeiro"}
	widths := []float64{45, 40, 40, 55}
	g.tableRow(pdf, tr, headers, widths, true)

	for _, row := range rows {
		g.tableRow(pdf, tr, []string{
			row.Year,
			fmt.Sprintf("%d", row.Platforms),
			fmt.Sprintf("%d", row.Elevators),
			"R$ " + formatBRL(row.Value),
		}, widths, false)
	}

	return output(pdf)
}

func (g *Generator) SalesByState(rows []model.StateSales, generatedAt time.Time) ([]byte, error) {
	pdf, tr := g.newDocument()

	g.title(pdf, tr, "Distribuição Regional de Vendas (Estados)")
	g.generatedAt(pdf, tr, generatedAt)

	headers := []string{"Unidade Federativa (UF)", "Plataformas", "Elevadores", "Total de Unidades"}
	widths := []float64{60, 40, 40, 40}
	g.tableRow(pdf, tr, headers, widths, true)

	for _, row := range rows {
		g.tableRow(pdf, tr, []string{
			row.State,
			fmt.Sprintf("%d", row.Platforms),
			fmt.Sprintf("%d", row.Elevators),
			fmt.Sprintf("%d", row.Total),
		}, widths, false)
	}

	return output(pdf)
}

func (g *Generator) ActiveWarranties(rows []model.WarrantyRow, generatedAt time.Time) ([]byte, error) {
	pdf, tr := g.newDocument()

	g.title(pdf, tr, "Relatório de Garantias Ativas")
	g.generatedAt(pdf, tr, generatedAt)

	if len(rows) == 0 {
		pdf.SetFont(g.fontName, "", 11)
		pdf.CellFormat(0, 8, tr("Nenhum equipamento possui garantia ativa no momento."), "", 1, "L", false, 0, "")
		return output(pdf)
	}

	headers := []string{"Cliente/Instituição", "Contrato", "Instalação", "Vencimento", "Saldo"}
	widths := []float64{50, 55, 25, 25, 25}
	g.tableRow(pdf, tr, headers, widths, true)

	for _, row := range rows {
		g.tableRow(pdf, tr, []string{
			row.ClientName,
			safeValue(row.ContractTitle),
			formatDate(row.CompletionDate),
			formatDate(row.Expiry),
			fmt.Sprintf("%d dias", row.RemainingDays),
		}, widths, false)
	}

	return output(pdf)
}

func (g *Generator) newDocument() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 15, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, tr
}

func (g *Generator) title(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont(g.fontName, "B", 18)
	pdf.SetTextColor(79, 70, 229)
	pdf.CellFormat(0, 10, tr(text), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) generatedAt(pdf *gofpdf.Fpdf, tr func(string) string, at time.Time) {
	pdf.SetFont(g.fontName, "", 9)
	pdf.SetTextColor(140, 140, 140)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em: %s", at.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(226, 232, 240)
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY() + 2
	pdf.Line(left, y, width-right, y)
	pdf.Ln(6)
}

func (g *Generator) tableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

// formatBRL escreve o valor no padrão brasileiro: milhar com ponto,
// decimais com vírgula.
func formatBRL(value float64) string {
	raw := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(raw, ".", 2)
	intPart, decPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	result := strings.Join(grouped, ".") + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}
