package dto

import (
	"time"

	"epicevents/internal/models"
)

type CreateClientRequest struct {
	Firstname   string            `json:"firstname" validate:"required,max=25"`
	Lastname    string            `json:"lastname" validate:"required,max=25"`
	Email       string            `json:"email" validate:"required,email,max=200"`
	Phone       string            `json:"phone" validate:"omitempty,max=20"`
	Mobile      string            `json:"mobile" validate:"required,max=20"`
	Role        models.ClientRole `json:"role" validate:"omitempty,client-role"`
	CompanyName string            `json:"company_name" validate:"omitempty,max=250"`
}

type UpdateClientRequest struct {
	Firstname   *string            `json:"firstname,omitempty" validate:"omitempty,max=25"`
	Lastname    *string            `json:"lastname,omitempty" validate:"omitempty,max=25"`
	Email       *string            `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone       *string            `json:"phone,omitempty" validate:"omitempty,max=20"`
	Mobile      *string            `json:"mobile,omitempty" validate:"omitempty,max=20"`
	Role        *models.ClientRole `json:"role,omitempty" validate:"omitempty,client-role"`
	CompanyName *string            `json:"company_name,omitempty" validate:"omitempty,max=250"`
}

// ReassignClientRequest transfers ownership to another seller, by username.
type ReassignClientRequest struct {
	SaleContact string `json:"sale_contact" validate:"required,max=100"`
}

// ClientListQuery carries the raw list-endpoint query parameters; the
// responsible flag stays a string until the service decodes it.
type ClientListQuery struct {
	Lastname    string
	Email       string
	Responsible string
}

type ClientResponse struct {
	ID          uint              `json:"id"`
	Firstname   string            `json:"firstname"`
	Lastname    string            `json:"lastname"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Mobile      string            `json:"mobile"`
	Role        models.ClientRole `json:"role"`
	CompanyName string            `json:"company_name"`
	DateCreated time.Time         `json:"date_created"`
	DateUpdated time.Time         `json:"date_updated"`
	SaleContact string            `json:"sale_contact"`
}

func NewClientResponse(c *models.Client) *ClientResponse {
	return &ClientResponse{
		ID:          c.ID,
		Firstname:   c.Firstname,
		Lastname:    c.Lastname,
		Email:       c.Email,
		Phone:       c.Phone,
		Mobile:      c.Mobile,
		Role:        c.Role,
		CompanyName: c.CompanyName,
		DateCreated: c.DateCreated,
		DateUpdated: c.DateUpdated,
		SaleContact: c.SaleContact.Label(),
	}
}

func NewClientListResponse(clients []models.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *NewClientResponse(&clients[i]))
	}
	return out
}
