package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sincrotec/gestao-service/internal/cep"
	"github.com/sincrotec/gestao-service/internal/service"
)

type Handler struct {
	auth        *service.AuthService
	users       *service.UserService
	clients     *service.ClientService
	contracts   *service.ContractService
	receivables *service.ReceivableService
	dashboard   *service.DashboardService
	reports     *service.ReportService
	cep         *cep.Client
	log         zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	users *service.UserService,
	clients *service.ClientService,
	contracts *service.ContractService,
	receivables *service.ReceivableService,
	dashboard *service.DashboardService,
	reports *service.ReportService,
	cepClient *cep.Client,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:        auth,
		users:       users,
		clients:     clients,
		contracts:   contracts,
		receivables: receivables,
		dashboard:   dashboard,
		reports:     reports,
		cep:         cepClient,
		log:         log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) sendFile(c *gin.Context, result *service.ReportResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(param)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate aceita os formatos usados pelo painel. Datas vazias ou
// malformadas viram nil e ficam de fora dos agregados por data.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"02/01/2006",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &date
		}
	}
	return nil
}
