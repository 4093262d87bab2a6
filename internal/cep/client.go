package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrInvalidCEP = errors.New("cep must have exactly 8 digits")
	ErrNotFound   = errors.New("cep not found")
)

// Address é o endereço resolvido pelo ViaCEP.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type viaCEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Error        bool   `json:"erro"`
}

// Client consulta o serviço público ViaCEP para preencher o endereço de
// clientes a partir do CEP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	digits := onlyDigits(code)
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep lookup failed: unexpected status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cep lookup failed: %w", err)
	}
	if payload.Error {
		return nil, ErrNotFound
	}

	return &Address{
		CEP:          payload.CEP,
		Street:       payload.Street,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
	}, nil
}

func onlyDigits(value string) string {
	var builder strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
