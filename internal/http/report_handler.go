package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) clientFichaReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.reports.ClientFicha(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) salesByYearReport(c *gin.Context) {
	result, err := h.reports.SalesByYear(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) salesByStateReport(c *gin.Context) {
	result, err := h.reports.SalesByState(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) activeWarrantiesReport(c *gin.Context) {
	result, err := h.reports.ActiveWarranties(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) contractsWorkbook(c *gin.Context) {
	result, err := h.reports.ContractsWorkbook(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) receivablesWorkbook(c *gin.Context) {
	result, err := h.reports.ReceivablesWorkbook(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}
