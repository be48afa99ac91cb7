package models

import "time"

// Partial-update carriers for the PUT endpoints. A nil field means
// "leave the column untouched"; a non-nil field is written as-is, so a
// pointer to an empty string clears a nullable text column.

// CommunityUpdate carries the updatable fields of a Community.
type CommunityUpdate struct {
	Name    *string `json:"nome"`
	Address *string `json:"endereco"`
	City    *string `json:"cidade"`
	Phone   *string `json:"telefone"`
}

// PastoralUpdate carries the updatable fields of a Pastoral.
type PastoralUpdate struct {
	Name          *string `json:"nome"`
	Description   *string `json:"descricao"`
	CommunityID   *int64  `json:"comunidade_id"`
	CoordinatorID *int64  `json:"coordenador_id"`
	Active        *bool   `json:"ativa"`
}

// PersonUpdate carries the updatable fields of a Person.
type PersonUpdate struct {
	Name        *string    `json:"nome"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"telefone"`
	BirthDate   *time.Time `json:"data_nascimento"`
	CommunityID *int64     `json:"comunidade_id"`
}

// VenueUpdate carries the updatable fields of a Venue.
type VenueUpdate struct {
	Name     *string `json:"nome"`
	Address  *string `json:"endereco"`
	Capacity *int    `json:"capacidade"`
}

// ActionUpdate carries the updatable fields of an Action.
type ActionUpdate struct {
	Title      *string    `json:"titulo"`
	Objective  *string    `json:"objetivo"`
	Status     *string    `json:"status"`
	PastoralID *int64     `json:"pastoral_id"`
	StartDate  *time.Time `json:"data_inicio"`
	EndDate    *time.Time `json:"data_fim"`
}

// EventUpdate carries the updatable fields of an Event.
type EventUpdate struct {
	Name        *string    `json:"nome"`
	Description *string    `json:"descricao"`
	Date        *time.Time `json:"data"`
	VenueID     *int64     `json:"local_id"`
	CommunityID *int64     `json:"comunidade_id"`
}
