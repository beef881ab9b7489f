package reservation

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// fakeRepo is an in-memory Repository that enforces the slot uniqueness
// constraint under a mutex, like the partial index does in postgres.
// That makes it usable for real goroutine races in tests.
type fakeRepo struct {
	mu sync.Mutex

	tables       []models.Table
	reservations map[uint]*models.Reservation
	nextID       uint
}

func newFakeRepo(tables ...models.Table) *fakeRepo {
	return &fakeRepo{
		tables:       tables,
		reservations: map[uint]*models.Reservation{},
		nextID:       1,
	}
}

func (f *fakeRepo) heldLocked(date, slot string) map[string]bool {
	held := map[string]bool{}
	for _, r := range f.reservations {
		if r.Date == date && r.Time == slot &&
			r.Status != string(domain.StatusCancelled) && r.TableNumber != "" {
			held[r.TableNumber] = true
		}
	}
	return held
}

func (f *fakeRepo) ListSuitableTables(
	_ context.Context,
	date string,
	slot string,
	people int,
) ([]models.Table, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	minCap, maxCap := domain.TierBounds(people)
	held := f.heldLocked(date, slot)

	var out []models.Table
	for _, t := range f.tables {
		if t.Status != models.TableAvailable {
			continue
		}
		if t.Capacity < minCap {
			continue
		}
		if maxCap > 0 && t.Capacity > maxCap {
			continue
		}
		if held[t.TableNumber] {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].TableNumber < out[j].TableNumber
	})

	return out, nil
}

func (f *fakeRepo) CountReservationsAtSlot(
	_ context.Context,
	date string,
	slot string,
) (int64, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, r := range f.reservations {
		if r.Date == date && r.Time == slot {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CreateReservation(
	_ context.Context,
	res *models.Reservation,
) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	if res.TableNumber != "" && f.heldLocked(res.Date, res.Time)[res.TableNumber] {
		return httperr.ErrBusiness("table_taken")
	}

	res.ID = f.nextID
	f.nextID++

	clone := *res
	f.reservations[res.ID] = &clone
	return nil
}

func (f *fakeRepo) CountConfirmedAtSlot(
	_ context.Context,
	date string,
	slot string,
	tableNumber string,
	excludeID uint,
) (int64, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, r := range f.reservations {
		if r.ID == excludeID {
			continue
		}
		if r.Date == date && r.Time == slot &&
			r.TableNumber == tableNumber &&
			r.Status == string(domain.StatusConfirmed) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetReservation(
	_ context.Context,
	id uint,
) (*models.Reservation, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	clone := *r
	return &clone, nil
}

func (f *fakeRepo) UpdateReservation(
	_ context.Context,
	res *models.Reservation,
) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *res
	f.reservations[res.ID] = &clone
	return nil
}

func (f *fakeRepo) PatchReservation(
	_ context.Context,
	id uint,
	patch domain.Patch,
) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reservations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	fields := patch.Fields()
	if v, ok := fields["name"]; ok {
		r.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		r.Email = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		r.Phone = v.(string)
	}
	if v, ok := fields["date"]; ok {
		r.Date = v.(string)
	}
	if v, ok := fields["time"]; ok {
		r.Time = v.(string)
	}
	if v, ok := fields["people"]; ok {
		r.People = v.(int)
	}
	if v, ok := fields["message"]; ok {
		r.Message = v.(string)
	}
	if v, ok := fields["feedback"]; ok {
		r.Feedback = v.(string)
	}
	if v, ok := fields["status"]; ok {
		r.Status = v.(string)
	}
	if v, ok := fields["payment_status"]; ok {
		r.PaymentStatus = v.(string)
	}

	return nil
}

func (f *fakeRepo) DeleteReservation(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.reservations, id)
	return nil
}

func (f *fakeRepo) ListUnpaidConfirmedForTables(
	_ context.Context,
	tableNumbers []string,
) ([]models.Reservation, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	want := map[string]bool{}
	for _, t := range tableNumbers {
		want[t] = true
	}

	out := []models.Reservation{}
	for _, r := range f.reservations {
		if r.Status != string(domain.StatusConfirmed) {
			continue
		}
		if r.PaymentStatus == string(domain.PaymentPaid) {
			continue
		}
		if !want[r.TableNumber] {
			continue
		}
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func defaultTables() []models.Table {
	return []models.Table{
		{TableNumber: "T1", Capacity: 2, Status: models.TableAvailable},
		{TableNumber: "T2", Capacity: 2, Status: models.TableAvailable},
		{TableNumber: "T6", Capacity: 4, Status: models.TableAvailable},
		{TableNumber: "T11", Capacity: 6, Status: models.TableAvailable},
	}
}
