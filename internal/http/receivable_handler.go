package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sincrotec/gestao-service/internal/http/middleware"
	"github.com/sincrotec/gestao-service/internal/model"
)

func (h *Handler) listReceivables(c *gin.Context) {
	receivables, err := h.receivables.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, receivables)
}

func (h *Handler) getReceivable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	receivable, err := h.receivables.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, receivable)
}

func (h *Handler) listEligibleContracts(c *gin.Context) {
	contracts, err := h.receivables.EligibleContracts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) generateReceivable(c *gin.Context) {
	contractID, ok := parseID(c, "contractId")
	if !ok {
		return
	}

	receivable, err := h.receivables.Generate(c.Request.Context(), contractID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receivable)
}

type receivableRequest struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	Value         float64 `json:"value"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
	Status        string  `json:"status"`
	Observations  string  `json:"observations"`
}

func (h *Handler) updateReceivable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req receivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.receivables.Update(c.Request.Context(), model.AccountsReceivable{
		ID:            id,
		InvoiceNumber: req.InvoiceNumber,
		Value:         req.Value,
		IssueDate:     parseDate(req.IssueDate),
		DueDate:       parseDate(req.DueDate),
		Status:        model.ReceivableStatus(req.Status),
		Observations:  req.Observations,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

type receivableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) advanceReceivableStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req receivableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.receivables.AdvanceStatus(c.Request.Context(), id, model.ReceivableStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) deleteReceivable(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.receivables.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
