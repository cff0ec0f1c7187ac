package domain

// EffortLog registra tempo e produção dedicados a um cliente em uma data
type EffortLog struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"clientId"`
	Date     Date   `json:"date"`
	Posts    int    `json:"posts"`
	Reels    int    `json:"reels"`
	Minutes  int    `json:"minutes"`
	Notes    string `json:"notes"`
}
