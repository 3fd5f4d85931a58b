package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(7);not null" json:"role"`
	IsAdmin      bool     `gorm:"default:false" json:"is_admin"`

	// Relations. Deleting a user orphans the records it was responsible
	// for (SET NULL), it never cascades.
	Clients   []Client   `gorm:"foreignKey:SaleContactID" json:"-"`
	Contracts []Contract `gorm:"foreignKey:SalesContactID" json:"-"`
	Events    []Event    `gorm:"foreignKey:SupportContactID" json:"-"`
}

// Label is the human-readable rendering used wherever a user is embedded
// in another entity's representation.
func (u *User) Label() string {
	if u == nil {
		return ""
	}
	return u.Username
}

type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
