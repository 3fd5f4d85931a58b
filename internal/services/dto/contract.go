package dto

import (
	"time"

	"epicevents/internal/models"
)

// CreateContractRequest references the client by its business key (email).
// Status is not accepted: a new contract is always unsigned.
type CreateContractRequest struct {
	Client     string  `json:"client" validate:"required,email"`
	Amount     float64 `json:"amount" validate:"required,gte=0"`
	PaymentDue *string `json:"payment_due,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateContractRequest struct {
	Client     *string                `json:"client,omitempty" validate:"omitempty,email"`
	Status     *models.ContractStatus `json:"status,omitempty" validate:"omitempty,contract-status"`
	Amount     *float64               `json:"amount,omitempty" validate:"omitempty,gte=0"`
	PaymentDue *string                `json:"payment_due,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ContractListQuery struct {
	Lastname    string
	Email       string
	DateCreated string
	Amount      string
	Responsible string
}

type ContractResponse struct {
	ID           uint                  `json:"id"`
	DateCreated  time.Time             `json:"date_created"`
	DateUpdated  time.Time             `json:"date_updated"`
	Status       models.ContractStatus `json:"status"`
	Amount       float64               `json:"amount"`
	PaymentDue   *string               `json:"payment_due"`
	Client       string                `json:"client"`
	SalesContact string                `json:"sales_contact"`
}

func NewContractResponse(c *models.Contract) *ContractResponse {
	resp := &ContractResponse{
		ID:           c.ID,
		DateCreated:  c.DateCreated,
		DateUpdated:  c.DateUpdated,
		Status:       c.Status,
		Amount:       c.Amount,
		Client:       c.Client.Label(),
		SalesContact: c.SalesContact.Label(),
	}
	if c.PaymentDue != nil {
		due := c.PaymentDue.Format("2006-01-02")
		resp.PaymentDue = &due
	}
	return resp
}

func NewContractListResponse(contracts []models.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		out = append(out, *NewContractResponse(&contracts[i]))
	}
	return out
}
