package models

import "time"

// Event is an evento record: a dated parish event held at a venue.
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao"`
	Date        time.Time `json:"data"`
	VenueID     *int64    `json:"local_id"`
	CommunityID *int64    `json:"comunidade_id"`
	CreatedAt   time.Time `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "eventos"
}
