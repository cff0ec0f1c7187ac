// Package normalizing recalcula os status derivados de "vencido" do
// documento, comparando as datas gravadas com a data atual.
package normalizing

import (
	"github.com/vfg2006/studio-manager-api/internal/domain"
)

// Normalize marca como vencidos os itens do planner e as faturas cuja
// data alvo já passou. Statuses terminais (done, skipped, paid) nunca
// são sobrescritos. A passagem é idempotente: rodar duas vezes sobre o
// mesmo documento não muda nada na segunda. Retorna quantos registros
// foram alterados.
func Normalize(doc *domain.Document, today domain.Date) int {
	changed := 0

	for i := range doc.Planner {
		item := &doc.Planner[i]
		if item.Status.Terminal() || item.Status == domain.PlannerStatusOverdue {
			continue
		}

		if !item.Date.IsZero() && item.Date.Before(today) {
			item.Status = domain.PlannerStatusOverdue
			changed++
		}
	}

	for i := range doc.Invoices {
		invoice := &doc.Invoices[i]
		if invoice.Status == domain.InvoiceStatusPaid || invoice.Status == domain.InvoiceStatusOverdue {
			continue
		}

		if !invoice.DueDate.IsZero() && invoice.DueDate.Before(today) {
			invoice.Status = domain.InvoiceStatusOverdue
			changed++
		}
	}

	return changed
}
