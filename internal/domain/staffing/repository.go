package staffing

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type AssignedTable struct {
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
}

type Repository interface {
	GetStaffByBadge(
		ctx context.Context,
		badge int,
	) (*models.Staff, error)

	TableExists(
		ctx context.Context,
		tableNumber string,
	) (bool, error)

	// UpsertAssignment is idempotent per (staff, table, date);
	// re-assigning refreshes the timestamp instead of erroring.
	UpsertAssignment(
		ctx context.Context,
		staffID uint,
		tableNumber string,
		assignedDate string,
	) error

	// DeleteAssignment reports whether a row was removed.
	DeleteAssignment(
		ctx context.Context,
		staffID uint,
		tableNumber string,
		assignedDate string,
	) (bool, error)

	ListAssignedTablesForDate(
		ctx context.Context,
		staffID uint,
		assignedDate string,
	) ([]AssignedTable, error)

	// ListAssignedTableNumbers returns the staff member's distinct
	// table numbers across all dates.
	ListAssignedTableNumbers(
		ctx context.Context,
		staffID uint,
	) ([]string, error)
}
