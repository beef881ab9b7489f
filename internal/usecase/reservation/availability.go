package reservation

import (
	"context"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// Coarse per-slot booking cap, independent of table allocation.
const maxBookingsPerSlot = 3

type SlotAvailabilityResult struct {
	IsAvailable     bool  `json:"isAvailable"`
	CurrentBookings int64 `json:"currentBookings"`
	MaxBookings     int   `json:"maxBookings"`
}

type SlotAvailability struct {
	repo domain.Repository
}

func NewSlotAvailability(repo domain.Repository) *SlotAvailability {
	return &SlotAvailability{repo: repo}
}

func (uc *SlotAvailability) Execute(
	ctx context.Context,
	date string,
	slot string,
) (*SlotAvailabilityResult, error) {

	count, err := uc.repo.CountReservationsAtSlot(ctx, date, slot)
	if err != nil {
		return nil, err
	}

	return &SlotAvailabilityResult{
		IsAvailable:     count < maxBookingsPerSlot,
		CurrentBookings: count,
		MaxBookings:     maxBookingsPerSlot,
	}, nil
}

// TableAvailability lists the suitable free tables for a slot and
// party size, in allocation order. Preview only, nothing is held.
type TableAvailability struct {
	repo domain.Repository
}

func NewTableAvailability(repo domain.Repository) *TableAvailability {
	return &TableAvailability{repo: repo}
}

func (uc *TableAvailability) Execute(
	ctx context.Context,
	date string,
	slot string,
	people int,
) ([]models.Table, error) {

	if err := domain.ValidatePartySize(people); err != nil {
		return nil, err
	}

	return uc.repo.ListSuitableTables(ctx, date, slot, people)
}
