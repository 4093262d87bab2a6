package model

import "time"

// ClientFicha agrupa os dados de um cliente e seu histórico de contratos
// para a ficha cadastral em PDF.
type ClientFicha struct {
	Client      Client
	Contracts   []Contract
	TotalValue  float64
	GeneratedAt time.Time
}

// YearSales consolida vendas por exercício. Year é "Indefinido" para
// contratos sem data de início.
type YearSales struct {
	Year      string
	Platforms int
	Elevators int
	Value     float64
}

// StateSales consolida unidades vendidas por UF do cliente.
type StateSales struct {
	State     string
	Platforms int
	Elevators int
	Total     int
}

// WarrantyRow é uma linha do relatório de garantias ativas, ordenado do
// vencimento mais próximo para o mais distante.
type WarrantyRow struct {
	ClientName     string
	ContractTitle  string
	CompletionDate time.Time
	Expiry         time.Time
	RemainingDays  int
}

// ContractRow enriquece um contrato com o nome do cliente para exportação.
type ContractRow struct {
	Contract
	ClientName string
}
