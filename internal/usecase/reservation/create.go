package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// How many candidate tables the insert loop tries before giving up.
// A lost race on one table moves on to the next.
const maxAllocationAttempts = 3

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Name  string
	Email string
	Phone string

	Date   string
	Time   string
	People int

	Message    string
	OrderItems datatypes.JSON
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// Validation, in contract order
	// --------------------------------------------------
	if in.Name == "" || in.Date == "" || in.Time == "" || in.People == 0 {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if err := domain.ValidateDate(in.Date, uc.now()); err != nil {
		return nil, err
	}

	if err := domain.ValidateTime(in.Time); err != nil {
		return nil, err
	}

	if err := domain.ValidatePartySize(in.People); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Resolve candidate tables, smallest first
	// --------------------------------------------------
	candidates, err := uc.repo.ListSuitableTables(ctx, in.Date, in.Time, in.People)
	if err != nil {
		return nil, err
	}

	if len(candidates) > maxAllocationAttempts {
		candidates = candidates[:maxAllocationAttempts]
	}

	// --------------------------------------------------
	// Insert, advancing on a lost slot race
	// --------------------------------------------------
	for _, table := range candidates {

		res := &models.Reservation{
			ReferenceCode: uuid.NewString(),
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			Date:          in.Date,
			Time:          in.Time,
			People:        in.People,
			Message:       in.Message,
			TableNumber:   table.TableNumber,
			OrderItems:    in.OrderItems,
			Status:        string(domain.InitialStatus()),
			PaymentStatus: string(domain.InitialPaymentStatus()),
		}

		err := uc.repo.CreateReservation(ctx, res)
		if httperr.IsBusiness(err, "table_taken") {
			continue
		}
		if err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: &res.ID,
			Metadata: map[string]any{
				"date":  res.Date,
				"time":  res.Time,
				"table": res.TableNumber,
			},
		})

		return res, nil
	}

	return nil, httperr.ErrBusiness("no_table_available")
}
