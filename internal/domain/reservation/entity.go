package reservation

import (
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(res *models.Reservation) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	return nil
}

// Cancel is unconditional: cancelling an already-Cancelled reservation
// is a no-op success, not an error.
func Cancel(res *models.Reservation) {
	res.Status = string(StatusCancelled)
}
