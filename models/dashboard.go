package models

// MonthCount is one bucket of events grouped by calendar month.
// Month uses the "YYYY-MM" form produced by to_char.
type MonthCount struct {
	Month string `json:"mes"`
	Total int64  `json:"total"`
}

// StatusCount is one bucket of actions grouped by lifecycle status.
type StatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// DashboardSummary aggregates the figures shown on the landing dashboard:
// per-entity totals plus events-by-month and actions-by-status groupings.
type DashboardSummary struct {
	Communities     int64         `json:"total_comunidades"`
	Pastorals       int64         `json:"total_pastorais"`
	People          int64         `json:"total_pessoas"`
	Events          int64         `json:"total_eventos"`
	Actions         int64         `json:"total_acoes"`
	EventsByMonth   []MonthCount  `json:"eventos_por_mes"`
	ActionsByStatus []StatusCount `json:"acoes_por_status"`
}
