package models

import "time"

// Pastoral is a pastoral group attached to a community.
type Pastoral struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nome"`
	Description   *string   `json:"descricao"`
	CommunityID   *int64    `json:"comunidade_id"`
	CoordinatorID *int64    `json:"coordenador_id"`
	Active        bool      `json:"ativa"`
	CreatedAt     time.Time `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Pastoral model.
func (p Pastoral) TableName() string {
	return "pastorais"
}
