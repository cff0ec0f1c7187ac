package domain

// PlannerStatus representa o estado de um conteúdo agendado
type PlannerStatus string

const (
	PlannerStatusPlanned PlannerStatus = "planned"
	PlannerStatusDone    PlannerStatus = "done"
	PlannerStatusOverdue PlannerStatus = "overdue"
	PlannerStatusSkipped PlannerStatus = "skipped"
)

// Terminal indica se o status nunca é sobrescrito pela normalização
func (s PlannerStatus) Terminal() bool {
	return s == PlannerStatusDone || s == PlannerStatusSkipped
}

// PlannerItem representa um conteúdo agendado para um cliente em uma data
type PlannerItem struct {
	ID       int64         `json:"id"`
	ClientID int64         `json:"clientId"`
	Date     Date          `json:"date"`
	Platform string        `json:"platform"`
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Caption  string        `json:"caption"`
	Status   PlannerStatus `json:"status"`
}
