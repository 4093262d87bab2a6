package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sincrotec/gestao-service/internal/model"
	"github.com/sincrotec/gestao-service/internal/repository"
	"github.com/sincrotec/gestao-service/internal/stats"
)

type PDFGenerator interface {
	ClientFicha(ficha model.ClientFicha) ([]byte, error)
	SalesByYear(rows []model.YearSales, generatedAt time.Time) ([]byte, error)
	SalesByState(rows []model.StateSales, generatedAt time.Time) ([]byte, error)
	ActiveWarranties(rows []model.WarrantyRow, generatedAt time.Time) ([]byte, error)
}

type ExcelGenerator interface {
	ContractsWorkbook(rows []model.ContractRow, generatedAt time.Time) ([]byte, error)
	ReceivablesWorkbook(receivables []model.AccountsReceivable, generatedAt time.Time) ([]byte, error)
}

type ReportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportService struct {
	clients     *repository.ClientRepository
	contracts   *repository.ContractRepository
	receivables *repository.ReceivableRepository
	pdf         PDFGenerator
	excel       ExcelGenerator
}

func NewReportService(
	clients *repository.ClientRepository,
	contracts *repository.ContractRepository,
	receivables *repository.ReceivableRepository,
	pdf PDFGenerator,
	excel ExcelGenerator,
) *ReportService {
	return &ReportService{
		clients:     clients,
		contracts:   contracts,
		receivables: receivables,
		pdf:         pdf,
		excel:       excel,
	}
}

// ClientFicha gera a ficha cadastral em PDF de um cliente com seu
// histórico de contratos e o investimento acumulado.
func (s *ReportService) ClientFicha(ctx context.Context, clientID uuid.UUID) (*ReportResult, error) {
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contracts, err := s.contracts.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	totalValue := 0.0
	for _, contract := range contracts {
		totalValue += contract.Value
	}

	now := time.Now()
	content, err := s.pdf.ClientFicha(model.ClientFicha{
		Client:      *client,
		Contracts:   contracts,
		TotalValue:  totalValue,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, err
	}

	name := sanitizeFileName(client.Name)
	if name == "" {
		name = client.ID.String()
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("ficha-%s-%s.pdf", name, now.Format("20060102")),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func (s *ReportService) SalesByYear(ctx context.Context) (*ReportResult, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := s.pdf.SalesByYear(salesByYear(contracts), now)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("vendas-anuais-%s.pdf", now.Format("20060102")),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func (s *ReportService) SalesByState(ctx context.Context) (*ReportResult, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := s.pdf.SalesByState(salesByState(contracts, clients), now)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("vendas-por-uf-%s.pdf", now.Format("20060102")),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func (s *ReportService) ActiveWarranties(ctx context.Context) (*ReportResult, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := s.pdf.ActiveWarranties(activeWarrantyRows(contracts, clients, now), now)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("garantias-ativas-%s.pdf", now.Format("2006-01-02")),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func (s *ReportService) ContractsWorkbook(ctx context.Context) (*ReportResult, error) {
	rows, err := s.contracts.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := s.excel.ContractsWorkbook(rows, now)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("contratos-%s.xlsx", now.Format("20060102")),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *ReportService) ReceivablesWorkbook(ctx context.Context) (*ReportResult, error) {
	receivables, err := s.receivables.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := s.excel.ReceivablesWorkbook(receivables, now)
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		FileName:    fmt.Sprintf("contas-a-receber-%s.xlsx", now.Format("20060102")),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}

const unknownYearLabel = "Indefinido"

// salesByYear consolida quantidades contratadas e valor por ano de início,
// do exercício mais recente para o mais antigo.
func salesByYear(contracts []model.Contract) []model.YearSales {
	byYear := make(map[string]*model.YearSales)
	for _, contract := range contracts {
		year := unknownYearLabel
		if contract.StartDate != nil && !contract.StartDate.IsZero() {
			year = fmt.Sprintf("%d", contract.StartDate.Year())
		}
		entry, ok := byYear[year]
		if !ok {
			entry = &model.YearSales{Year: year}
			byYear[year] = entry
		}
		entry.Platforms += contract.PlatformContracted
		entry.Elevators += contract.ElevatorContracted
		entry.Value += contract.Value
	}

	rows := make([]model.YearSales, 0, len(byYear))
	for _, entry := range byYear {
		rows = append(rows, *entry)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year > rows[j].Year })
	return rows
}

const unknownStateLabel = "Não Informado"

// salesByState consolida unidades vendidas por UF do cliente dono do
// contrato, em ordem alfabética.
func salesByState(contracts []model.Contract, clients []model.Client) []model.StateSales {
	stateByClient := make(map[uuid.UUID]string, len(clients))
	for _, client := range clients {
		stateByClient[client.ID] = client.Address.State
	}

	byState := make(map[string]*model.StateSales)
	for _, contract := range contracts {
		state := stateByClient[contract.ClientID]
		if state == "" {
			state = unknownStateLabel
		}
		entry, ok := byState[state]
		if !ok {
			entry = &model.StateSales{State: state}
			byState[state] = entry
		}
		entry.Platforms += contract.PlatformContracted
		entry.Elevators += contract.ElevatorContracted
	}

	rows := make([]model.StateSales, 0, len(byState))
	for _, entry := range byState {
		entry.Total = entry.Platforms + entry.Elevators
		rows = append(rows, *entry)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].State < rows[j].State })
	return rows
}

const unknownClientLabel = "Cliente N/D"

// activeWarrantyRows lista as garantias vigentes ordenadas do vencimento
// mais próximo para o mais distante.
func activeWarrantyRows(contracts []model.Contract, clients []model.Client, now time.Time) []model.WarrantyRow {
	nameByClient := make(map[uuid.UUID]string, len(clients))
	for _, client := range clients {
		nameByClient[client.ID] = client.Name
	}

	rows := make([]model.WarrantyRow, 0)
	for _, contract := range contracts {
		if !stats.IsWarrantyActive(contract, now) {
			continue
		}
		expiry, _ := stats.WarrantyExpiry(contract)

		clientName := nameByClient[contract.ClientID]
		if clientName == "" {
			clientName = unknownClientLabel
		}
		rows = append(rows, model.WarrantyRow{
			ClientName:     clientName,
			ContractTitle:  contract.Title,
			CompletionDate: contract.Warranty.CompletionDate,
			Expiry:         expiry,
			RemainingDays:  stats.WarrantyRemainingDays(contract, now),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].RemainingDays < rows[j].RemainingDays })
	return rows
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
