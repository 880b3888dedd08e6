package model

import "time"

// Trip timestamps are assigned by the service layer, not by gorm callbacks,
// so that created_at stays write-once and updated_at moves only on a
// successful mutation.
type Trip struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Destination string    `gorm:"size:255;not null" json:"destination"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Description *string   `gorm:"type:text" json:"description"`
	Budget      *string   `gorm:"type:decimal(10,2)" json:"budget"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
