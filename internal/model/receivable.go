package model

import (
	"time"

	"github.com/google/uuid"
)

type ReceivableStatus string

const (
	ReceivableStatusPending   ReceivableStatus = "Pendente"
	ReceivableStatusReceived  ReceivableStatus = "Recebida"
	ReceivableStatusCancelled ReceivableStatus = "Cancelada"
)

func (s ReceivableStatus) Valid() bool {
	switch s {
	case ReceivableStatusPending, ReceivableStatusReceived, ReceivableStatusCancelled:
		return true
	}
	return false
}

// AccountsReceivable é a cobrança gerada a partir de um contrato com
// instalação concluída. ClientName e ContractTitle são preenchidos por
// join no momento da leitura e nunca persistidos.
type AccountsReceivable struct {
	ID            uuid.UUID        `json:"id"`
	ContractID    uuid.UUID        `json:"contractId"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	Value         float64          `json:"value"`
	IssueDate     *time.Time       `json:"issueDate,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Status        ReceivableStatus `json:"status"`
	Observations  string           `json:"observations"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`

	ClientName    string `json:"clientName,omitempty"`
	ContractTitle string `json:"contractTitle,omitempty"`
}

// Overdue indica cobrança pendente com vencimento no passado.
func (r AccountsReceivable) Overdue(now time.Time) bool {
	return r.Status == ReceivableStatusPending && r.DueDate != nil && r.DueDate.Before(now)
}
