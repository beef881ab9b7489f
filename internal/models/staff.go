package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Badge number used by staff to log in, distinct from the row id.
	StaffID int `gorm:"uniqueIndex;not null" json:"staff_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:50" json:"role"`
	Status       string `gorm:"size:20;default:'active'" json:"status"`
	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
