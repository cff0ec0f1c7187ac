package domain

// EffortSummaryRow é a linha do resumo de esforço de um cliente na janela
// de 30 dias
type EffortSummaryRow struct {
	ClientID   int64   `json:"clientId"`
	ClientName string  `json:"clientName"`
	Minutes    int     `json:"minutes"`
	Pct        float64 `json:"pct"`
}

// EffortSummary agrega os minutos registrados por cliente
type EffortSummary struct {
	Rows         []EffortSummaryRow `json:"rows"`
	TotalMinutes int                `json:"totalMinutes"`
	Top          *EffortSummaryRow  `json:"top,omitempty"`
}

// ProjectionProgress mede o avanço da projeção ativa contra suas metas
type ProjectionProgress struct {
	Projection      Projection `json:"projection"`
	AchievedRevenue float64    `json:"achievedRevenue"`
	AchievedClients int        `json:"achievedClients"`
	RevenuePct      float64    `json:"revenuePct"`
	ClientPct       float64    `json:"clientPct"`
}

// Dashboard reúne todas as visões derivadas exibidas na tela principal
type Dashboard struct {
	TodayItems      []PlannerItem       `json:"today"`
	WeekItems       []PlannerItem       `json:"week"`
	OverdueContent  []PlannerItem       `json:"overdueContent"`
	EffortSummary   EffortSummary       `json:"effortSummary"`
	Projection      *ProjectionProgress `json:"projection,omitempty"`
	OverdueInvoices []Invoice           `json:"overdueInvoices"`
	PendingTotal    float64             `json:"pendingTotal"`
}

// SearchResults agrupa os registros que casam com uma consulta de busca
type SearchResults struct {
	Clients  []Client      `json:"clients"`
	Planner  []PlannerItem `json:"planner"`
	Tasks    []Task        `json:"tasks"`
	Invoices []Invoice     `json:"invoices"`
}
