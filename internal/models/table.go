package models

import "time"

const (
	TableAvailable   = "available"
	TableMaintenance = "maintenance"
)

type Table struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TableNumber string `gorm:"size:10;uniqueIndex;not null" json:"table_number"`
	Capacity    int    `gorm:"not null" json:"capacity"`
	Location    string `gorm:"size:50" json:"location"`
	Status      string `gorm:"size:20;default:'available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
