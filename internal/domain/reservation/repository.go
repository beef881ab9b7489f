package reservation

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type ListFilter struct {
	Date   string
	Status string
	Search string
}

type Repository interface {
	// -------- Availability --------

	// ListSuitableTables returns available tables in the capacity tier
	// for the party size, not held by an active reservation at the
	// slot, ordered by capacity then table number.
	ListSuitableTables(
		ctx context.Context,
		date string,
		slot string,
		people int,
	) ([]models.Table, error)

	CountReservationsAtSlot(
		ctx context.Context,
		date string,
		slot string,
	) (int64, error)

	// -------- Reservation (create / conflict) --------

	// CreateReservation persists the record. When another active
	// reservation already holds the same (date, time, table_number)
	// it fails with the "table_taken" business error.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	CountConfirmedAtSlot(
		ctx context.Context,
		date string,
		slot string,
		tableNumber string,
		excludeID uint,
	) (int64, error)

	// -------- Reservation (read / mutate) --------

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	PatchReservation(
		ctx context.Context,
		id uint,
		patch Patch,
	) error

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error

	// -------- Staff visibility --------

	// ListUnpaidConfirmedForTables is the one place that couples
	// payment status to staff dashboards: a reservation drops out of
	// staff view the moment it is marked Paid.
	ListUnpaidConfirmedForTables(
		ctx context.Context,
		tableNumbers []string,
	) ([]models.Reservation, error)
}
