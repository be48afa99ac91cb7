package models

import "time"

// Action status values stored in the acoes.status column.
const (
	ActionStatusPlanned    = "planejada"
	ActionStatusInProgress = "em_andamento"
	ActionStatusDone       = "concluida"
	ActionStatusCancelled  = "cancelada"
)

// Action is an acao record: a planned pastoral activity with an objective
// and a lifecycle status.
type Action struct {
	ID         int64      `json:"id"`
	Title      string     `json:"titulo"`
	Objective  *string    `json:"objetivo"`
	Status     string     `json:"status"`
	PastoralID *int64     `json:"pastoral_id"`
	StartDate  *time.Time `json:"data_inicio"`
	EndDate    *time.Time `json:"data_fim"`
	CreatedAt  time.Time  `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Action model.
func (a Action) TableName() string {
	return "acoes"
}
