package domain

// ClientStatus representa a situação comercial de um cliente
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusPaused   ClientStatus = "paused"
	ClientStatusInactive ClientStatus = "inactive"
)

// UnknownClientName é o rótulo exibido para referências de cliente inexistentes
const UnknownClientName = "Unknown"

// Client representa um cliente do estúdio com seu fee mensal recorrente
type Client struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Brand     string       `json:"brand"`
	Retainer  float64      `json:"retainer"`
	StartDate Date         `json:"startDate"`
	Status    ClientStatus `json:"status"`
	Notes     string       `json:"notes"`
}
