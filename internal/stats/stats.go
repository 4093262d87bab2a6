package stats

import (
	"fmt"
	"time"

	"github.com/sincrotec/gestao-service/internal/model"
)

// Compute deriva todas as métricas do painel a partir das coleções
// completas de clientes e contratos. Função pura: now é o único relógio.
func Compute(clients []model.Client, contracts []model.Contract, now time.Time) model.DashboardStats {
	currentYear := now.Year()

	s := model.DashboardStats{
		CurrentYear:          currentYear,
		ApproachingDeadlines: []model.Contract{},
	}

	for _, c := range contracts {
		switch c.Status {
		case model.ContractStatusActive:
			s.ActiveContractsCount++
		case model.ContractStatusPending:
			s.PendingContractsCount++
		}

		s.TotalValue += c.Value
		if c.StartDate != nil && c.StartDate.Year() == currentYear {
			s.AnnualValue += c.Value
		}

		s.ElevatorsInstalled += c.ElevatorInstalled
		s.ElevatorsContracted += c.ElevatorContracted
		s.PlatformsInstalled += c.PlatformInstalled
		s.PlatformsContracted += c.PlatformContracted

		if IsUrgent(c, now) {
			s.ApproachingDeadlines = append(s.ApproachingDeadlines, c)
		}
	}

	s.TotalInstalled = s.PlatformsInstalled + s.ElevatorsInstalled
	s.TotalContracted = s.PlatformsContracted + s.ElevatorsContracted

	// Divisões protegidas: taxa é 0 quando o denominador é 0, nunca NaN.
	if s.TotalContracted > 0 {
		s.InstallationRate = float64(s.TotalInstalled) / float64(s.TotalContracted) * 100
	}
	if s.TotalValue > s.AnnualValue && s.AnnualValue > 0 {
		s.GrowthRate = (s.TotalValue - s.AnnualValue) / s.AnnualValue * 100
	}

	s.CriticalContracts = len(s.ApproachingDeadlines)
	s.Insights = buildInsights(s)
	return s
}

func buildInsights(s model.DashboardStats) []model.Insight {
	efficiency := model.Insight{
		Title:       "Eficiência de Entrega",
		Value:       fmt.Sprintf("%.1f%%", s.InstallationRate),
		Description: "Excelente ritmo de conclusão. Pipeline saudável.",
		Status:      model.InsightStatusSuccess,
		Icon:        "⚙️",
	}
	if s.InstallationRate < 50 {
		efficiency.Description = "Ritmo de instalação abaixo da meta. Considere reforçar a equipe técnica."
		efficiency.Status = model.InsightStatusWarning
	}

	risk := model.Insight{
		Title:       "Risco Operacional",
		Value:       "Baixo",
		Description: fmt.Sprintf("Sem gargalos de prazo detectados para os próximos %d dias.", UrgencyWindowDays),
		Status:      model.InsightStatusSuccess,
		Icon:        "🚨",
	}
	if s.CriticalContracts > 0 {
		risk.Value = "Atenção"
		risk.Description = fmt.Sprintf("%d contratos com prazos críticos. Risco de multa contratual.", s.CriticalContracts)
		risk.Status = model.InsightStatusDanger
	}

	growth := model.Insight{
		Title:       "Potencial de Expansão",
		Value:       fmt.Sprintf("%.1f%%", s.GrowthRate),
		Description: "Crescimento do portfólio em relação ao faturamento base anual.",
		Status:      model.InsightStatusInfo,
		Icon:        "🚀",
	}

	return []model.Insight{efficiency, risk, growth}
}
