package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type StaffingGormRepository struct {
	db *gorm.DB
}

func NewStaffingGormRepository(db *gorm.DB) *StaffingGormRepository {
	return &StaffingGormRepository{db: db}
}

func (r *StaffingGormRepository) GetStaffByBadge(
	ctx context.Context,
	badge int,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", badge).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffingGormRepository) TableExists(
	ctx context.Context,
	tableNumber string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("table_number = ?", tableNumber).
		Count(&count).Error

	return count > 0, err
}

func (r *StaffingGormRepository) UpsertAssignment(
	ctx context.Context,
	staffID uint,
	tableNumber string,
	assignedDate string,
) error {

	assignment := models.StaffTableAssignment{
		StaffID:      staffID,
		TableNumber:  tableNumber,
		AssignedDate: assignedDate,
		CreatedAt:    time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "staff_id"},
				{Name: "table_number"},
				{Name: "assigned_date"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"created_at": time.Now(),
			}),
		}).
		Create(&assignment).Error
}

func (r *StaffingGormRepository) DeleteAssignment(
	ctx context.Context,
	staffID uint,
	tableNumber string,
	assignedDate string,
) (bool, error) {

	result := r.db.WithContext(ctx).
		Where(
			"staff_id = ? AND table_number = ? AND assigned_date = ?",
			staffID, tableNumber, assignedDate,
		).
		Delete(&models.StaffTableAssignment{})

	return result.RowsAffected > 0, result.Error
}

func (r *StaffingGormRepository) ListAssignedTablesForDate(
	ctx context.Context,
	staffID uint,
	assignedDate string,
) ([]domain.AssignedTable, error) {

	var out []domain.AssignedTable
	err := r.db.WithContext(ctx).
		Model(&models.StaffTableAssignment{}).
		Select("staff_table_assignments.table_number, tables.capacity, tables.location").
		Joins("JOIN tables ON tables.table_number = staff_table_assignments.table_number").
		Where(
			"staff_table_assignments.staff_id = ? AND staff_table_assignments.assigned_date = ?",
			staffID, assignedDate,
		).
		Scan(&out).Error

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StaffingGormRepository) ListAssignedTableNumbers(
	ctx context.Context,
	staffID uint,
) ([]string, error) {

	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&models.StaffTableAssignment{}).
		Distinct("table_number").
		Where("staff_id = ?", staffID).
		Pluck("table_number", &numbers).Error

	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// Compile-time check
var _ domain.Repository = (*StaffingGormRepository)(nil)
