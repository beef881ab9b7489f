package staff

import (
	"context"

	reservationdomain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type StaffReservationsResult struct {
	AssignedTables []string             `json:"assignedTables"`
	Reservations   []models.Reservation `json:"data"`
}

// StaffReservations resolves a staff member's assigned tables (all
// dates) and filters down to confirmed, unpaid reservations on them.
// Marking a reservation Paid is what frees the table from staff view.
type StaffReservations struct {
	staffing     domain.Repository
	reservations reservationdomain.Repository
}

func NewStaffReservations(
	staffing domain.Repository,
	reservations reservationdomain.Repository,
) *StaffReservations {
	return &StaffReservations{
		staffing:     staffing,
		reservations: reservations,
	}
}

func (uc *StaffReservations) Execute(
	ctx context.Context,
	badge int,
) (*StaffReservationsResult, error) {

	staff, err := uc.staffing.GetStaffByBadge(ctx, badge)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	tables, err := uc.staffing.ListAssignedTableNumbers(ctx, staff.ID)
	if err != nil {
		return nil, err
	}

	if len(tables) == 0 {
		return &StaffReservationsResult{
			AssignedTables: []string{},
			Reservations:   []models.Reservation{},
		}, nil
	}

	reservations, err := uc.reservations.ListUnpaidConfirmedForTables(ctx, tables)
	if err != nil {
		return nil, err
	}

	return &StaffReservationsResult{
		AssignedTables: tables,
		Reservations:   reservations,
	}, nil
}
