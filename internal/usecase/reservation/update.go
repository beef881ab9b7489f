package reservation

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. Date/time changes are not re-run
// through table allocation; the slot index still rejects a move onto
// an occupied table, surfacing as a conflict.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	reservationID uint,
	patch domain.Patch,
) (*models.Reservation, error) {

	if _, err := uc.repo.GetReservation(ctx, reservationID); err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if patch.Empty() {
		return nil, httperr.ErrBusiness("no_fields_to_update")
	}

	if err := uc.repo.PatchReservation(ctx, reservationID, patch); err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
