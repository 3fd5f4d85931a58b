package models

import (
	"fmt"
	"time"
)

type Contract struct {
	BaseModel
	Status     ContractStatus `gorm:"type:varchar(8);default:'unsigned'" json:"status"`
	Amount     float64        `json:"amount"`
	PaymentDue *time.Time     `json:"payment_due"`

	ClientID uint    `gorm:"not null;index" json:"-"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`

	SalesContactID *uint `json:"-"`
	SalesContact   *User `gorm:"foreignKey:SalesContactID;constraint:OnDelete:SET NULL" json:"-"`

	Event *Event `gorm:"foreignKey:ContractID" json:"-"`
}

func (c *Contract) Label() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("contract '%s' of %s", c.Status, c.Client.Label())
}
