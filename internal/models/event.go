package models

import "time"

type Event struct {
	BaseModel
	Attendees int       `json:"attendees"`
	EventDate time.Time `json:"event_date"`
	Notes     string    `gorm:"size:3000" json:"notes"`

	ClientID uint    `gorm:"not null;index" json:"-"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`

	// uniqueIndex enforces one event per contract at the store, so a racing
	// second insert fails even when the service-level check passed.
	ContractID uint      `gorm:"not null;uniqueIndex" json:"-"`
	Contract   *Contract `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"-"`

	SupportContactID *uint `gorm:"index" json:"-"`
	SupportContact   *User `gorm:"foreignKey:SupportContactID;constraint:OnDelete:SET NULL" json:"-"`
}
