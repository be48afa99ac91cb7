package models

import "time"

// Venue is a local record: a physical place where events happen.
type Venue struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Address   *string   `json:"endereco"`
	Capacity  *int      `json:"capacidade"`
	CreatedAt time.Time `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Venue model.
func (v Venue) TableName() string {
	return "locais"
}
