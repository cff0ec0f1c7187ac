package domain

// InvoiceStatus representa a situação de pagamento de uma fatura
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice representa uma cobrança mensal de um cliente
type Invoice struct {
	ID        int64         `json:"id"`
	Reference string        `json:"reference"` // identificador curto para exibição (ex.: INV-x7Kd9a)
	ClientID  int64         `json:"clientId"`
	Month     Month         `json:"month"`
	Amount    float64       `json:"amount"`
	DueDate   Date          `json:"dueDate"`
	Status    InvoiceStatus `json:"status"`
	PaidDate  *Date         `json:"paidDate,omitempty"`
}
