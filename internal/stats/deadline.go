package stats

import (
	"math"
	"time"

	"github.com/sincrotec/gestao-service/internal/model"
)

// UrgencyWindowDays é a janela de prazo crítico usada pelo painel,
// pela listagem de contratos e pelos relatórios.
const UrgencyWindowDays = 15

// DaysUntil retorna o número de dias inteiros entre now e date,
// arredondado para cima. Negativo quando date já passou.
func DaysUntil(date, now time.Time) int {
	diff := date.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// IsUrgent indica contrato não concluído/encerrado com prazo estimado de
// instalação dentro da janela crítica. Contratos sem prazo nunca são urgentes.
func IsUrgent(c model.Contract, now time.Time) bool {
	if c.Status == model.ContractStatusCompleted || c.Status == model.ContractStatusClosed {
		return false
	}
	if c.EstimatedInstallationDate == nil || c.EstimatedInstallationDate.IsZero() {
		return false
	}
	d := DaysUntil(*c.EstimatedInstallationDate, now)
	return d >= 0 && d <= UrgencyWindowDays
}

// WarrantyExpiry calcula o fim da cobertura. O segundo retorno é false
// quando não há garantia ou a data de conclusão é inválida.
func WarrantyExpiry(c model.Contract) (time.Time, bool) {
	if c.Warranty == nil || c.Warranty.CompletionDate.IsZero() {
		return time.Time{}, false
	}
	return c.Warranty.CompletionDate.AddDate(0, 0, c.Warranty.Days), true
}

func IsWarrantyActive(c model.Contract, now time.Time) bool {
	expiry, ok := WarrantyExpiry(c)
	return ok && expiry.After(now)
}

// WarrantyRemainingDays retorna os dias restantes de garantia, 0 quando
// não há garantia válida. Pode ser negativo para garantias vencidas.
func WarrantyRemainingDays(c model.Contract, now time.Time) int {
	expiry, ok := WarrantyExpiry(c)
	if !ok {
		return 0
	}
	return DaysUntil(expiry, now)
}
