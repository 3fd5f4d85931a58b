package models

type Client struct {
	BaseModel
	Firstname   string     `gorm:"size:25" json:"firstname"`
	Lastname    string     `gorm:"size:25;index" json:"lastname"`
	Email       string     `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Mobile      string     `gorm:"size:20;uniqueIndex" json:"mobile"`
	Role        ClientRole `gorm:"type:varchar(8);default:'client'" json:"role"`
	CompanyName string     `gorm:"size:250" json:"company_name"`

	// Single owner: the seller accountable for this client. Nullable so the
	// record survives the owner's deletion.
	SaleContactID *uint `json:"-"`
	SaleContact   *User `gorm:"foreignKey:SaleContactID;constraint:OnDelete:SET NULL" json:"-"`

	Contracts []Contract `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Events    []Event    `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Client) Label() string {
	if c == nil {
		return ""
	}
	return c.Email
}
