package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

func newCreateUC(repo domain.Repository) *CreateReservation {
	uc := NewCreateReservation(repo, audit.NewDispatcher(audit.New(nil)))
	uc.now = func() time.Time {
		return time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func validInput() CreateReservationInput {
	return CreateReservationInput{
		Name:   "Alice",
		Email:  "alice@example.com",
		Phone:  "555-0101",
		Date:   "2026-08-01",
		Time:   "12:30",
		People: 2,
	}
}

func TestCreateReservation_AssignsSmallestSuitableTable(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "T1", res.TableNumber)
	assert.Equal(t, string(domain.StatusPending), res.Status)
	assert.Equal(t, string(domain.PaymentPending), res.PaymentStatus)
	assert.NotEmpty(t, res.ReferenceCode)
	assert.NotZero(t, res.ID)
}

func TestCreateReservation_SkipsBookedTables(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "T1", first.TableNumber)

	in := validInput()
	in.Name = "Bob"
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "T2", second.TableNumber)
}

func TestCreateReservation_NeverWastesLargeTableOnSmallParty(t *testing.T) {
	repo := newFakeRepo(
		models.Table{TableNumber: "T6", Capacity: 4, Status: models.TableAvailable},
		models.Table{TableNumber: "T1", Capacity: 2, Status: models.TableAvailable},
	)
	uc := newCreateUC(repo)

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "T1", res.TableNumber)

	// tier exhausted: a party of 2 never spills onto the four-top
	in := validInput()
	in.Name = "Bob"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "no_table_available"))
}

func TestCreateReservation_LargeParty(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	in := validInput()
	in.People = 5
	res, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "T11", res.TableNumber)
}

func TestCreateReservation_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateReservationInput)
		wantCode string
	}{
		{
			name:     "missing name",
			mutate:   func(in *CreateReservationInput) { in.Name = "" },
			wantCode: "missing_required_fields",
		},
		{
			name:     "missing people",
			mutate:   func(in *CreateReservationInput) { in.People = 0 },
			wantCode: "missing_required_fields",
		},
		{
			name:     "past date",
			mutate:   func(in *CreateReservationInput) { in.Date = "2020-01-01" },
			wantCode: "invalid_date",
		},
		{
			name:     "malformed date",
			mutate:   func(in *CreateReservationInput) { in.Date = "01/08/2026" },
			wantCode: "invalid_date",
		},
		{
			name:     "malformed time",
			mutate:   func(in *CreateReservationInput) { in.Time = "12.30" },
			wantCode: "invalid_time",
		},
		{
			name:     "before opening",
			mutate:   func(in *CreateReservationInput) { in.Time = "09:00" },
			wantCode: "outside_hours",
		},
		{
			name:     "at closing",
			mutate:   func(in *CreateReservationInput) { in.Time = "22:00" },
			wantCode: "outside_hours",
		},
		{
			name:     "party too large",
			mutate:   func(in *CreateReservationInput) { in.People = 25 },
			wantCode: "invalid_party_size",
		},
		{
			name:     "negative party",
			mutate:   func(in *CreateReservationInput) { in.People = -2 },
			wantCode: "invalid_party_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(defaultTables()...)
			uc := newCreateUC(repo)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				"want %s, got %v", tt.wantCode, err)
		})
	}
}

func TestCreateReservation_NothingPersistedOnRejection(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	in := validInput()
	in.People = 25
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)

	count, err := repo.CountReservationsAtSlot(context.Background(), in.Date, in.Time)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateReservation_TodayIsNotPast(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2026-08-01" // same day as the fixed clock
	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

// Two concurrent requests, one suitable table: exactly one wins.
func TestCreateReservation_ConcurrentAllocationSingleTable(t *testing.T) {
	repo := newFakeRepo(
		models.Table{TableNumber: "T1", Capacity: 2, Status: models.TableAvailable},
	)
	uc := newCreateUC(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validInput()
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, "no_table_available"):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, rejections)

	count, err := repo.CountReservationsAtSlot(context.Background(), "2026-08-01", "12:30")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

// Losing the race on one table falls through to the next candidate.
func TestCreateReservation_RetriesNextCandidateOnConflict(t *testing.T) {
	repo := newFakeRepo(defaultTables()...)
	uc := newCreateUC(repo)

	const n = 2
	var wg sync.WaitGroup
	results := make([]*models.Reservation, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validInput()
			results[i], errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[results[i].TableNumber],
			"table %s double-booked", results[i].TableNumber)
		seen[results[i].TableNumber] = true
	}
}
