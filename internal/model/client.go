package model

import (
	"time"

	"github.com/google/uuid"
)

// Address é o endereço estruturado de um cliente (órgão público ou empresa).
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	CEP          string `json:"cep"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type Client struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CNPJ          string    `json:"cnpj"`
	Address       Address   `json:"address"`
	Phone         string    `json:"phone"`
	Whatsapp      string    `json:"whatsapp"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contactPerson"`
	CreatedAt     time.Time `json:"createdAt"`
}
