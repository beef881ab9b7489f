package staff

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	reservationdomain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

func noopAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

type assignmentKey struct {
	staffID     uint
	tableNumber string
	date        string
}

type fakeStaffing struct {
	staff       map[int]*models.Staff
	tables      map[string]bool
	assignments map[assignmentKey]bool
}

func newFakeStaffing() *fakeStaffing {
	return &fakeStaffing{
		staff:       map[int]*models.Staff{},
		tables:      map[string]bool{},
		assignments: map[assignmentKey]bool{},
	}
}

func (f *fakeStaffing) GetStaffByBadge(_ context.Context, badge int) (*models.Staff, error) {
	s, ok := f.staff[badge]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStaffing) TableExists(_ context.Context, tableNumber string) (bool, error) {
	return f.tables[tableNumber], nil
}

func (f *fakeStaffing) UpsertAssignment(
	_ context.Context,
	staffID uint,
	tableNumber string,
	assignedDate string,
) error {
	f.assignments[assignmentKey{staffID, tableNumber, assignedDate}] = true
	return nil
}

func (f *fakeStaffing) DeleteAssignment(
	_ context.Context,
	staffID uint,
	tableNumber string,
	assignedDate string,
) (bool, error) {
	key := assignmentKey{staffID, tableNumber, assignedDate}
	if !f.assignments[key] {
		return false, nil
	}
	delete(f.assignments, key)
	return true, nil
}

func (f *fakeStaffing) ListAssignedTablesForDate(
	_ context.Context,
	staffID uint,
	assignedDate string,
) ([]domain.AssignedTable, error) {
	out := []domain.AssignedTable{}
	for key := range f.assignments {
		if key.staffID == staffID && key.date == assignedDate {
			out = append(out, domain.AssignedTable{TableNumber: key.tableNumber})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TableNumber < out[j].TableNumber })
	return out, nil
}

func (f *fakeStaffing) ListAssignedTableNumbers(
	_ context.Context,
	staffID uint,
) ([]string, error) {
	seen := map[string]bool{}
	for key := range f.assignments {
		if key.staffID == staffID {
			seen[key.tableNumber] = true
		}
	}
	out := []string{}
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

var _ domain.Repository = (*fakeStaffing)(nil)

// fakeReservations covers only the read path staff usecases touch.
type fakeReservations struct {
	reservations []models.Reservation
}

func (f *fakeReservations) ListUnpaidConfirmedForTables(
	_ context.Context,
	tableNumbers []string,
) ([]models.Reservation, error) {
	want := map[string]bool{}
	for _, t := range tableNumbers {
		want[t] = true
	}

	out := []models.Reservation{}
	for _, r := range f.reservations {
		if r.Status != "Confirmed" || r.PaymentStatus == "Paid" {
			continue
		}
		if want[r.TableNumber] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservations) ListSuitableTables(context.Context, string, string, int) ([]models.Table, error) {
	return nil, nil
}

func (f *fakeReservations) CountReservationsAtSlot(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeReservations) CreateReservation(context.Context, *models.Reservation) error {
	return nil
}

func (f *fakeReservations) CountConfirmedAtSlot(context.Context, string, string, string, uint) (int64, error) {
	return 0, nil
}

func (f *fakeReservations) GetReservation(context.Context, uint) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReservations) UpdateReservation(context.Context, *models.Reservation) error {
	return nil
}

func (f *fakeReservations) PatchReservation(context.Context, uint, reservationdomain.Patch) error {
	return nil
}

func (f *fakeReservations) DeleteReservation(context.Context, uint) error {
	return nil
}

var _ reservationdomain.Repository = (*fakeReservations)(nil)
