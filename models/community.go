package models

import "time"

// Community is a parish community (comunidade) record.
type Community struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Address   *string   `json:"endereco"`
	City      *string   `json:"cidade"`
	Phone     *string   `json:"telefone"`
	CreatedAt time.Time `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Community model.
func (c Community) TableName() string {
	return "comunidades"
}
