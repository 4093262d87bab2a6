package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	address, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	assert.Equal(t, "01310-100", address.CEP)
	assert.Equal(t, "Avenida Paulista", address.Street)
	assert.Equal(t, "Bela Vista", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupRejectsMalformedCode(t *testing.T) {
	client := NewClient("http://viacep.invalid")

	for _, code := range []string{"", "123", "123456789", "abcdefgh"} {
		_, err := client.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, ErrInvalidCEP, "code %q", code)
	}
}
