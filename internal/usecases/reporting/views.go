// Package reporting deriva as visões do dashboard a partir de um
// snapshot do documento. Todas as funções são puras: recebem o
// documento e a data de referência e devolvem structs de visão, sem
// efeitos colaterais.
package reporting

import (
	"math"
	"sort"

	"github.com/vfg2006/studio-manager-api/internal/domain"
)

// Janela do resumo de esforço, em dias, contando para trás a partir de hoje
const effortWindowDays = 30

// Meia largura da janela da semana do planner (hoje ± 3 dias)
const weekHalfWindowDays = 3

// TodayView lista os itens do planner agendados exatamente para hoje
func TodayView(doc *domain.Document, today domain.Date) []domain.PlannerItem {
	items := make([]domain.PlannerItem, 0)
	for _, item := range doc.Planner {
		if item.Date.Equal(today) {
			items = append(items, item)
		}
	}

	return items
}

// WeekView lista os itens do planner na janela [hoje-3, hoje+3],
// inclusiva nas duas pontas, ordenados por data crescente
func WeekView(doc *domain.Document, today domain.Date) []domain.PlannerItem {
	start := today.AddDays(-weekHalfWindowDays)
	end := today.AddDays(weekHalfWindowDays)

	items := make([]domain.PlannerItem, 0)
	for _, item := range doc.Planner {
		if !item.Date.Before(start) && !item.Date.After(end) {
			items = append(items, item)
		}
	}

	sortPlannerByDate(items)

	return items
}

// OverdueContent lista os itens de conteúdo vencidos: a união dos já
// marcados como overdue com os recalculados pela regra de data. A união
// é deduplicada por ID, então um item normalizado no início da sessão
// aparece uma única vez.
func OverdueContent(doc *domain.Document, today domain.Date) []domain.PlannerItem {
	seen := make(map[int64]struct{})
	items := make([]domain.PlannerItem, 0)

	for _, item := range doc.Planner {
		flagged := item.Status == domain.PlannerStatusOverdue
		recomputed := !item.Status.Terminal() && !item.Date.IsZero() && item.Date.Before(today)

		if !flagged && !recomputed {
			continue
		}

		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}

		items = append(items, item)
	}

	sortPlannerByDate(items)

	return items
}

// SummarizeEffort agrega os minutos por cliente na janela dos últimos
// 30 dias e calcula a participação percentual de cada um
func SummarizeEffort(doc *domain.Document, today domain.Date) domain.EffortSummary {
	start := today.AddDays(-effortWindowDays)

	minutesByClient := make(map[int64]int)
	order := make([]int64, 0)

	for _, effort := range doc.Efforts {
		if effort.Date.Before(start) || effort.Date.After(today) {
			continue
		}

		if _, ok := minutesByClient[effort.ClientID]; !ok {
			order = append(order, effort.ClientID)
		}
		minutesByClient[effort.ClientID] += effort.Minutes
	}

	summary := domain.EffortSummary{
		Rows: make([]domain.EffortSummaryRow, 0, len(order)),
	}

	for _, clientID := range order {
		summary.TotalMinutes += minutesByClient[clientID]
	}

	for _, clientID := range order {
		row := domain.EffortSummaryRow{
			ClientID:   clientID,
			ClientName: doc.ClientName(clientID),
			Minutes:    minutesByClient[clientID],
		}

		if summary.TotalMinutes > 0 {
			row.Pct = roundOneDecimal(float64(row.Minutes) / float64(summary.TotalMinutes) * 100)
		}

		summary.Rows = append(summary.Rows, row)
	}

	sort.SliceStable(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Minutes > summary.Rows[j].Minutes
	})

	if len(summary.Rows) > 0 {
		summary.Top = &summary.Rows[0]
	}

	return summary
}

// ActiveProjection retorna a primeira projeção (na ordem da coleção)
// cujo intervalo contém hoje, ou nil se nenhuma estiver ativa
func ActiveProjection(doc *domain.Document, today domain.Date) *domain.Projection {
	for i := range doc.Projections {
		if doc.Projections[i].Contains(today) {
			p := doc.Projections[i]
			return &p
		}
	}

	return nil
}

// ProjectionProgress mede o avanço de uma projeção: receita das faturas
// pagas com vencimento dentro do intervalo e contagem de clientes
// distintos entre elas. Percentuais são 0 quando a meta é 0.
func ProjectionProgress(doc *domain.Document, projection domain.Projection) domain.ProjectionProgress {
	progress := domain.ProjectionProgress{
		Projection: projection,
	}

	clients := make(map[int64]struct{})

	for _, invoice := range doc.Invoices {
		if invoice.Status != domain.InvoiceStatusPaid {
			continue
		}

		if invoice.DueDate.Before(projection.StartDate) || invoice.DueDate.After(projection.EndDate) {
			continue
		}

		progress.AchievedRevenue += invoice.Amount
		clients[invoice.ClientID] = struct{}{}
	}

	progress.AchievedClients = len(clients)

	if projection.RevenueTarget > 0 {
		progress.RevenuePct = roundOneDecimal(progress.AchievedRevenue / projection.RevenueTarget * 100)
	}

	if projection.ClientTarget > 0 {
		progress.ClientPct = roundOneDecimal(float64(progress.AchievedClients) / float64(projection.ClientTarget) * 100)
	}

	return progress
}

// OverdueInvoices lista as faturas vencidas: as já marcadas overdue e
// as não pagas com vencimento anterior a hoje, ordenadas por vencimento
func OverdueInvoices(doc *domain.Document, today domain.Date) []domain.Invoice {
	invoices := make([]domain.Invoice, 0)

	for _, invoice := range doc.Invoices {
		flagged := invoice.Status == domain.InvoiceStatusOverdue
		recomputed := invoice.Status != domain.InvoiceStatusPaid &&
			!invoice.DueDate.IsZero() && invoice.DueDate.Before(today)

		if flagged || recomputed {
			invoices = append(invoices, invoice)
		}
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].DueDate.Before(invoices[j].DueDate)
	})

	return invoices
}

// PendingTotal soma o valor de todas as faturas não pagas,
// independentemente de estarem vencidas ou não
func PendingTotal(doc *domain.Document) float64 {
	total := 0.0
	for _, invoice := range doc.Invoices {
		if invoice.Status != domain.InvoiceStatusPaid {
			total += invoice.Amount
		}
	}

	return total
}

// BuildDashboard monta todas as visões derivadas de uma vez
func BuildDashboard(doc *domain.Document, today domain.Date) *domain.Dashboard {
	dashboard := &domain.Dashboard{
		TodayItems:      TodayView(doc, today),
		WeekItems:       WeekView(doc, today),
		OverdueContent:  OverdueContent(doc, today),
		EffortSummary:   SummarizeEffort(doc, today),
		OverdueInvoices: OverdueInvoices(doc, today),
		PendingTotal:    PendingTotal(doc),
	}

	if projection := ActiveProjection(doc, today); projection != nil {
		progress := ProjectionProgress(doc, *projection)
		dashboard.Projection = &progress
	}

	return dashboard
}

func sortPlannerByDate(items []domain.PlannerItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

func roundOneDecimal(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
