package dto

import (
	"encoding/json"
	"time"

	"epicevents/internal/models"
)

// CreateEventRequest references the client by email and the contract by
// numeric id. ContractID is a json.Number so both `12` and `"12"` are
// accepted; a non-numeric value is reported as an unknown contract id.
type CreateEventRequest struct {
	ClientEmail string      `json:"client_mail" validate:"required,email"`
	ContractID  json.Number `json:"contract_id" validate:"required"`
	Attendees   int         `json:"attendees" validate:"required,gt=0"`
	EventDate   string      `json:"event_date" validate:"required,datetime=2006-01-02"`
	Notes       string      `json:"notes" validate:"omitempty,max=3000"`
}

type UpdateEventRequest struct {
	Attendees *int    `json:"attendees,omitempty" validate:"omitempty,gt=0"`
	EventDate *string `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=3000"`

	// SupportContact (a username) may only be set by a manager.
	SupportContact *string `json:"support_contact,omitempty" validate:"omitempty,max=100"`
}

type EventListQuery struct {
	Lastname    string
	Email       string
	EventDate   string
	Responsible string
}

type EventResponse struct {
	ID             uint      `json:"id"`
	DateCreated    time.Time `json:"date_created"`
	DateUpdated    time.Time `json:"date_updated"`
	Attendees      int       `json:"attendees"`
	EventDate      string    `json:"event_date"`
	Notes          string    `json:"notes"`
	Client         string    `json:"client"`
	Contract       string    `json:"contract"`
	SupportContact string    `json:"support_contact"`
}

func NewEventResponse(e *models.Event) *EventResponse {
	return &EventResponse{
		ID:             e.ID,
		DateCreated:    e.DateCreated,
		DateUpdated:    e.DateUpdated,
		Attendees:      e.Attendees,
		EventDate:      e.EventDate.Format("2006-01-02"),
		Notes:          e.Notes,
		Client:         e.Client.Label(),
		Contract:       e.Contract.Label(),
		SupportContact: e.SupportContact.Label(),
	}
}

func NewEventListResponse(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *NewEventResponse(&events[i]))
	}
	return out
}
