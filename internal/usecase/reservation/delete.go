package reservation

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
) error {

	if _, err := uc.repo.GetReservation(ctx, reservationID); err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.DeleteReservation(ctx, reservationID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &reservationID,
	})

	return nil
}
