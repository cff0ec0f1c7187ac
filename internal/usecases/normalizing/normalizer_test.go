package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/studio-manager-api/internal/domain"
)

var today = domain.NewDate(2024, time.January, 16)

func TestNormalize_PlannerItems(t *testing.T) {
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	tests := []struct {
		name       string
		item       domain.PlannerItem
		wantStatus domain.PlannerStatus
		wantChange bool
	}{
		{
			name:       "item planejado com data passada vira overdue",
			item:       domain.PlannerItem{ID: 1, Date: yesterday, Status: domain.PlannerStatusPlanned},
			wantStatus: domain.PlannerStatusOverdue,
			wantChange: true,
		},
		{
			name:       "item planejado para hoje não muda",
			item:       domain.PlannerItem{ID: 2, Date: today, Status: domain.PlannerStatusPlanned},
			wantStatus: domain.PlannerStatusPlanned,
		},
		{
			name:       "item planejado para amanhã não muda",
			item:       domain.PlannerItem{ID: 3, Date: tomorrow, Status: domain.PlannerStatusPlanned},
			wantStatus: domain.PlannerStatusPlanned,
		},
		{
			name:       "done é terminal mesmo com data passada",
			item:       domain.PlannerItem{ID: 4, Date: yesterday, Status: domain.PlannerStatusDone},
			wantStatus: domain.PlannerStatusDone,
		},
		{
			name:       "skipped é terminal mesmo com data passada",
			item:       domain.PlannerItem{ID: 5, Date: yesterday, Status: domain.PlannerStatusSkipped},
			wantStatus: domain.PlannerStatusSkipped,
		},
		{
			name:       "item já overdue não conta como mudança",
			item:       domain.PlannerItem{ID: 6, Date: yesterday, Status: domain.PlannerStatusOverdue},
			wantStatus: domain.PlannerStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.NewDocument()
			doc.Planner = append(doc.Planner, tt.item)

			changed := Normalize(doc, today)

			assert.Equal(t, tt.wantStatus, doc.Planner[0].Status)
			if tt.wantChange {
				assert.Equal(t, 1, changed)
			} else {
				assert.Equal(t, 0, changed)
			}
		})
	}
}

func TestNormalize_Invoices(t *testing.T) {
	yesterday := today.AddDays(-1)

	doc := domain.NewDocument()
	doc.Invoices = append(doc.Invoices,
		domain.Invoice{ID: 1, Amount: 1000, DueDate: yesterday, Status: domain.InvoiceStatusPending},
		domain.Invoice{ID: 2, Amount: 500, DueDate: yesterday, Status: domain.InvoiceStatusPaid},
		domain.Invoice{ID: 3, Amount: 700, DueDate: today.AddDays(5), Status: domain.InvoiceStatusPending},
	)

	changed := Normalize(doc, today)

	assert.Equal(t, 1, changed)
	assert.Equal(t, domain.InvoiceStatusOverdue, doc.Invoices[0].Status)
	// Fatura paga nunca é sobrescrita
	assert.Equal(t, domain.InvoiceStatusPaid, doc.Invoices[1].Status)
	assert.Equal(t, domain.InvoiceStatusPending, doc.Invoices[2].Status)
}

func TestNormalize_Idempotent(t *testing.T) {
	doc := domain.NewDocument()
	doc.Planner = append(doc.Planner,
		domain.PlannerItem{ID: 1, Date: today.AddDays(-2), Status: domain.PlannerStatusPlanned},
		domain.PlannerItem{ID: 2, Date: today.AddDays(-1), Status: domain.PlannerStatusDone},
	)
	doc.Invoices = append(doc.Invoices,
		domain.Invoice{ID: 3, DueDate: today.AddDays(-1), Status: domain.InvoiceStatusPending},
	)

	first := Normalize(doc, today)
	assert.Equal(t, 2, first)

	// Segunda passada sobre o documento já normalizado não muda nada
	second := Normalize(doc, today)
	assert.Equal(t, 0, second)

	assert.Equal(t, domain.PlannerStatusOverdue, doc.Planner[0].Status)
	assert.Equal(t, domain.PlannerStatusDone, doc.Planner[1].Status)
	assert.Equal(t, domain.InvoiceStatusOverdue, doc.Invoices[0].Status)
}

func TestNormalize_DatelessRecordsUntouched(t *testing.T) {
	doc := domain.NewDocument()
	doc.Planner = append(doc.Planner, domain.PlannerItem{ID: 1, Status: domain.PlannerStatusPlanned})
	doc.Invoices = append(doc.Invoices, domain.Invoice{ID: 2, Status: domain.InvoiceStatusPending})

	changed := Normalize(doc, today)

	assert.Equal(t, 0, changed)
	assert.Equal(t, domain.PlannerStatusPlanned, doc.Planner[0].Status)
	assert.Equal(t, domain.InvoiceStatusPending, doc.Invoices[0].Status)
}
