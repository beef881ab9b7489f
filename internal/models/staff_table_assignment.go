package models

import "time"

type StaffTableAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID      uint   `gorm:"not null;uniqueIndex:idx_staff_table_date" json:"staff_id"`
	TableNumber  string `gorm:"size:10;not null;uniqueIndex:idx_staff_table_date" json:"table_number"`
	AssignedDate string `gorm:"size:10;not null;uniqueIndex:idx_staff_table_date" json:"assigned_date"`

	CreatedAt time.Time `json:"created_at"`
}
