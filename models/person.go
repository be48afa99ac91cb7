package models

import "time"

// Person is a pessoa record: a parish member or contact that may also be
// referenced by a user account.
type Person struct {
	ID          int64      `json:"id"`
	Name        string     `json:"nome"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"telefone"`
	BirthDate   *time.Time `json:"data_nascimento"`
	CommunityID *int64     `json:"comunidade_id"`
	CreatedAt   time.Time  `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p Person) TableName() string {
	return "pessoas"
}
