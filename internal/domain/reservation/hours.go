package reservation

import (
	"regexp"
	"time"

	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

// Service window. Reservations are taken for slots in [11:00, 22:00).
const (
	OpenHour  = 11
	CloseHour = 22

	MinPartySize = 1
	MaxPartySize = 20
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateDate rejects unparseable dates and dates before today
// (day granularity).
func ValidateDate(date string, now time.Time) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return httperr.ErrBusiness("invalid_date")
	}

	return nil
}

// ValidateTime checks HH:MM shape and the service window.
func ValidateTime(slot string) error {
	if !timePattern.MatchString(slot) {
		return httperr.ErrBusiness("invalid_time")
	}

	t, err := time.Parse("15:04", slot)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	if t.Hour() < OpenHour || t.Hour() >= CloseHour {
		return httperr.ErrBusiness("outside_hours")
	}

	return nil
}

func ValidatePartySize(people int) error {
	if people < MinPartySize || people > MaxPartySize {
		return httperr.ErrBusiness("invalid_party_size")
	}
	return nil
}
