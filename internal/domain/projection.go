package domain

// ProjectionType representa o horizonte de uma projeção de receita
type ProjectionType string

const (
	ProjectionTypeMonthly   ProjectionType = "monthly"
	ProjectionTypeQuarterly ProjectionType = "quarterly"
	ProjectionTypeYearly    ProjectionType = "yearly"
)

// Projection representa uma meta de receita e de carteira de clientes
// para um intervalo de datas
type Projection struct {
	ID            int64          `json:"id"`
	StartDate     Date           `json:"startDate"`
	EndDate       Date           `json:"endDate"`
	Type          ProjectionType `json:"type"`
	RevenueTarget float64        `json:"revenueTarget"`
	ClientTarget  int            `json:"clientTarget"`
	Note          string         `json:"note"`
}

// Contains indica se a data está dentro do intervalo da projeção (inclusivo)
func (p Projection) Contains(d Date) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}
