package models

import (
	"time"

	"gorm.io/datatypes"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;index" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Slot coordinates. Stored as plain date / HH:MM strings so the
	// booking index compares exact slots, not instants.
	Date string `gorm:"size:10;not null;index:idx_reservations_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_reservations_slot" json:"time"`

	People  int    `gorm:"not null" json:"people"`
	Message string `gorm:"size:500" json:"message"`

	TableNumber string `gorm:"size:10" json:"table_number"`

	OrderItems datatypes.JSON `json:"order_items,omitempty"`
	Feedback   string         `gorm:"size:500" json:"feedback,omitempty"`

	Status        string `gorm:"size:20;default:'Pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'Pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
