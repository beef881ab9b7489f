package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

var testNow = time.Date(2026, 8, 1, 15, 0, 0, 0, time.UTC)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantCode string
	}{
		{"future date", "2026-09-15", ""},
		{"today", "2026-08-01", ""},
		{"yesterday", "2026-07-31", "invalid_date"},
		{"garbage", "not-a-date", "invalid_date"},
		{"wrong format", "01-08-2026", "invalid_date"},
		{"empty", "", "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date, testNow)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
			}
		})
	}
}

func TestValidateTime(t *testing.T) {
	tests := []struct {
		name     string
		slot     string
		wantCode string
	}{
		{"opening", "11:00", ""},
		{"midday", "13:30", ""},
		{"last slot", "21:59", ""},
		{"single digit hour", "9:00", "outside_hours"},
		{"before opening", "10:59", "outside_hours"},
		{"at close", "22:00", "outside_hours"},
		{"after close", "23:30", "outside_hours"},
		{"no colon", "1230", "invalid_time"},
		{"bad minutes", "12:60", "invalid_time"},
		{"bad hour", "25:00", "invalid_time"},
		{"empty", "", "invalid_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTime(tt.slot)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
			}
		})
	}
}

func TestValidatePartySize(t *testing.T) {
	assert.NoError(t, ValidatePartySize(1))
	assert.NoError(t, ValidatePartySize(20))

	for _, people := range []int{0, -1, 21, 100} {
		err := ValidatePartySize(people)
		assert.True(t, httperr.IsBusiness(err, "invalid_party_size"), "people=%d", people)
	}
}
