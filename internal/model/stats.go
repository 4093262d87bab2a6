package model

type InsightStatus string

const (
	InsightStatusSuccess InsightStatus = "success"
	InsightStatusWarning InsightStatus = "warning"
	InsightStatusDanger  InsightStatus = "danger"
	InsightStatusInfo    InsightStatus = "info"
)

// Insight é um resumo qualitativo exibido no painel, derivado
// deterministicamente das métricas agregadas.
type Insight struct {
	Title       string        `json:"title"`
	Value       string        `json:"value"`
	Description string        `json:"description"`
	Status      InsightStatus `json:"status"`
	Icon        string        `json:"icon"`
}

// DashboardStats é o resultado do motor de métricas derivadas. Recalculado
// integralmente a cada leitura; nenhum campo é incremental.
type DashboardStats struct {
	ActiveContractsCount  int        `json:"activeContractsCount"`
	PendingContractsCount int        `json:"pendingContractsCount"`
	TotalValue            float64    `json:"totalValue"`
	AnnualValue           float64    `json:"annualValue"`
	ElevatorsInstalled    int        `json:"elevatorsInstalled"`
	ElevatorsContracted   int        `json:"elevatorsContracted"`
	PlatformsInstalled    int        `json:"platformsInstalled"`
	PlatformsContracted   int        `json:"platformsContracted"`
	TotalInstalled        int        `json:"totalInstalled"`
	TotalContracted       int        `json:"totalContracted"`
	InstallationRate      float64    `json:"installationRate"`
	ApproachingDeadlines  []Contract `json:"approachingDeadlines"`
	CriticalContracts     int        `json:"criticalContracts"`
	GrowthRate            float64    `json:"growthRate"`
	Insights              []Insight  `json:"insights"`
	CurrentYear           int        `json:"currentYear"`
}
