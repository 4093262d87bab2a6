package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sincrotec/gestao-service/internal/cep"
	"github.com/sincrotec/gestao-service/internal/http/middleware"
	"github.com/sincrotec/gestao-service/internal/model"
)

type addressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	CEP          string `json:"cep"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type clientRequest struct {
	Name          string         `json:"name" binding:"required"`
	CNPJ          string         `json:"cnpj" binding:"required"`
	Address       addressRequest `json:"address"`
	Phone         string         `json:"phone"`
	Whatsapp      string         `json:"whatsapp"`
	Email         string         `json:"email"`
	ContactPerson string         `json:"contactPerson"`
}

func (req clientRequest) toModel() model.Client {
	return model.Client{
		Name: req.Name,
		CNPJ: req.CNPJ,
		Address: model.Address{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Neighborhood: req.Address.Neighborhood,
			CEP:          req.Address.CEP,
			City:         req.Address.City,
			State:        req.Address.State,
		},
		Phone:         req.Phone,
		Whatsapp:      req.Whatsapp,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
	}
}

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) getClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) createClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) updateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := req.toModel()
	client.ID = id

	saved, err := h.clients.Update(c.Request.Context(), client)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteClient(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listClientContracts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	contracts, err := h.contracts.ListByClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) lookupCEP(c *gin.Context) {
	address, err := h.cep.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalidCEP):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, cep.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("cep lookup failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "cep service unavailable"})
		}
		return
	}
	c.JSON(http.StatusOK, address)
}
