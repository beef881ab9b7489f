package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// SlotTableConstraint is the partial unique index over
// (date, time, table_number) for non-Cancelled rows. It is what makes
// concurrent allocation of the same table impossible at the store.
const SlotTableConstraint = "idx_reservations_slot_table"

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) ListSuitableTables(
	ctx context.Context,
	date string,
	slot string,
	people int,
) ([]models.Table, error) {

	minCap, maxCap := domain.TierBounds(people)

	q := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("status = ?", models.TableAvailable).
		Where("capacity >= ?", minCap).
		Where(
			"table_number NOT IN (?)",
			r.db.Model(&models.Reservation{}).
				Select("table_number").
				Where(
					"date = ? AND time = ? AND status <> ? AND table_number <> ''",
					date, slot, string(domain.StatusCancelled),
				),
		)

	if maxCap > 0 {
		q = q.Where("capacity <= ?", maxCap)
	}

	var tables []models.Table
	if err := q.
		Order("capacity ASC, table_number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	return tables, nil
}

func (r *ReservationGormRepository) CountReservationsAtSlot(
	ctx context.Context,
	date string,
	slot string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("date = ? AND time = ?", date, slot).
		Count(&count).Error

	return count, err
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Create(res).Error
	if httperr.IsUniqueViolation(err, SlotTableConstraint) {
		return httperr.ErrBusiness("table_taken")
	}
	return err
}

func (r *ReservationGormRepository) CountConfirmedAtSlot(
	ctx context.Context,
	date string,
	slot string,
	tableNumber string,
	excludeID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"date = ? AND time = ? AND table_number = ? AND status = ? AND id <> ?",
			date, slot, tableNumber, string(domain.StatusConfirmed), excludeID,
		).
		Count(&count).Error

	return count, err
}

// --------------------------------------------------
// Reservation (read / mutate)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) PatchReservation(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) error {

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(fields).Error

	if httperr.IsUniqueViolation(err, SlotTableConstraint) {
		return httperr.ErrBusiness("table_taken")
	}
	return err
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Reservation{}, id).Error
}

// --------------------------------------------------
// Staff visibility
// --------------------------------------------------

func (r *ReservationGormRepository) ListUnpaidConfirmedForTables(
	ctx context.Context,
	tableNumbers []string,
) ([]models.Reservation, error) {

	if len(tableNumbers) == 0 {
		return []models.Reservation{}, nil
	}

	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusConfirmed)).
		Where(
			"(payment_status IS NULL OR payment_status <> ?)",
			string(domain.PaymentPaid),
		).
		Where("table_number IN ?", tableNumbers).
		Order("date DESC, time ASC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
