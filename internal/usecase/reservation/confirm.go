package reservation

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type ConfirmReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	// Defensive: creation always assigns a table, but confirm must not
	// promote a record without one.
	if res.TableNumber == "" {
		return nil, httperr.ErrBusiness("no_table_assigned")
	}

	// Re-check the slot against other Confirmed holders; catches races
	// the creation path could not see.
	conflicts, err := uc.repo.CountConfirmedAtSlot(
		ctx,
		res.Date,
		res.Time,
		res.TableNumber,
		res.ID,
	)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, httperr.ErrBusiness("table_conflict")
	}

	if err := domain.Confirm(res); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
