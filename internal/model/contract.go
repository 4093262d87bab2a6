package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

// Os valores de status são os rótulos persistidos e exibidos no painel.
const (
	ContractStatusPending   ContractStatus = "Pendente"
	ContractStatusActive    ContractStatus = "Ativo"
	ContractStatusCompleted ContractStatus = "Instalação Concluída"
	ContractStatusClosed    ContractStatus = "Encerrado"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusCompleted, ContractStatusClosed:
		return true
	}
	return false
}

// Warranty cobre o equipamento instalado a partir da data de conclusão.
// Quando presente, ambos os campos estão sempre preenchidos.
type Warranty struct {
	CompletionDate time.Time `json:"completionDate"`
	Days           int       `json:"warrantyDays"`
}

type Contract struct {
	ID                        uuid.UUID      `json:"id"`
	ClientID                  uuid.UUID      `json:"clientId"`
	Title                     string         `json:"title"`
	PlatformContracted        int            `json:"platformContracted"`
	PlatformInstalled         int            `json:"platformInstalled"`
	ElevatorContracted        int            `json:"elevatorContracted"`
	ElevatorInstalled         int            `json:"elevatorInstalled"`
	Value                     float64        `json:"value"`
	StartDate                 *time.Time     `json:"startDate,omitempty"`
	EndDate                   *time.Time     `json:"endDate,omitempty"`
	InstallationAddress       string         `json:"installationAddress"`
	EstimatedInstallationDate *time.Time     `json:"estimatedInstallationDate,omitempty"`
	Status                    ContractStatus `json:"status"`
	Warranty                  *Warranty      `json:"warranty,omitempty"`
	Observations              string         `json:"observations"`
	CreatedBy                 *uuid.UUID     `json:"createdBy,omitempty"`
	CreatedAt                 time.Time      `json:"createdAt"`
}
