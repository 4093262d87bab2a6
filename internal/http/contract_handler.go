package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sincrotec/gestao-service/internal/http/middleware"
	"github.com/sincrotec/gestao-service/internal/model"
)

type warrantyRequest struct {
	CompletionDate string `json:"completionDate"`
	WarrantyDays   int    `json:"warrantyDays"`
}

type contractRequest struct {
	ClientID                  string           `json:"clientId" binding:"required"`
	Title                     string           `json:"title"`
	PlatformContracted        int              `json:"platformContracted"`
	PlatformInstalled         int              `json:"platformInstalled"`
	ElevatorContracted        int              `json:"elevatorContracted"`
	ElevatorInstalled         int              `json:"elevatorInstalled"`
	Value                     float64          `json:"value"`
	StartDate                 string           `json:"startDate"`
	EndDate                   string           `json:"endDate"`
	InstallationAddress       string           `json:"installationAddress"`
	EstimatedInstallationDate string           `json:"estimatedInstallationDate"`
	Status                    string           `json:"status"`
	Warranty                  *warrantyRequest `json:"warranty"`
	Observations              string           `json:"observations"`
}

func (req contractRequest) toModel() (model.Contract, error) {
	clientID, err := uuid.Parse(strings.TrimSpace(req.ClientID))
	if err != nil {
		return model.Contract{}, err
	}

	contract := model.Contract{
		ClientID:                  clientID,
		Title:                     req.Title,
		PlatformContracted:        req.PlatformContracted,
		PlatformInstalled:         req.PlatformInstalled,
		ElevatorContracted:        req.ElevatorContracted,
		ElevatorInstalled:         req.ElevatorInstalled,
		Value:                     req.Value,
		StartDate:                 parseDate(req.StartDate),
		EndDate:                   parseDate(req.EndDate),
		InstallationAddress:       req.InstallationAddress,
		EstimatedInstallationDate: parseDate(req.EstimatedInstallationDate),
		Status:                    model.ContractStatus(req.Status),
		Observations:              req.Observations,
	}

	// Garantia sem data de conclusão válida é descartada, como qualquer
	// outra data malformada.
	if req.Warranty != nil {
		if completion := parseDate(req.Warranty.CompletionDate); completion != nil {
			contract.Warranty = &model.Warranty{
				CompletionDate: *completion,
				Days:           req.Warranty.WarrantyDays,
			}
		}
	}
	return contract, nil
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.contracts.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	contract, err := h.contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clientId"})
		return
	}

	saved, err := h.contracts.Create(c.Request.Context(), contract, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) updateContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clientId"})
		return
	}
	contract.ID = id

	saved, err := h.contracts.Update(c.Request.Context(), contract, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.contracts.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
