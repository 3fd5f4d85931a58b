package models

import "time"

type BaseModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	DateUpdated time.Time `gorm:"autoUpdateTime" json:"date_updated"`
}
