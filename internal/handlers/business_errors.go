package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

// Business error code -> HTTP status and operator-facing message.
var businessErrors = map[string]struct {
	status  int
	message string
}{
	"missing_required_fields": {http.StatusBadRequest, "Name, date, time, and number of people are required."},
	"invalid_date":            {http.StatusBadRequest, "Reservation date is invalid or in the past."},
	"invalid_time":            {http.StatusBadRequest, "Invalid time format. Use HH:MM."},
	"outside_hours":           {http.StatusBadRequest, "Reservations are only accepted between 11:00 and 22:00."},
	"invalid_party_size":      {http.StatusBadRequest, "Number of people must be between 1 and 20."},
	"no_fields_to_update":     {http.StatusBadRequest, "No fields to update."},
	"no_table_assigned":       {http.StatusBadRequest, "No table assigned to this reservation."},
	"invalid_state":           {http.StatusBadRequest, "Reservation state does not allow this transition."},
	"reservation_not_found":   {http.StatusNotFound, "Reservation not found."},
	"staff_not_found":         {http.StatusNotFound, "Staff member not found."},
	"table_not_found":         {http.StatusNotFound, "Table not found."},
	"assignment_not_found":    {http.StatusNotFound, "Table assignment not found."},
	"no_table_available":      {http.StatusConflict, "No suitable tables are available for this time slot."},
	"table_conflict":          {http.StatusConflict, "Table is already assigned for this time slot."},
	"table_taken":             {http.StatusConflict, "Table was taken by a concurrent booking."},
}

// writeBusiness maps a business error to its HTTP response and reports
// whether it handled the error.
func writeBusiness(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	m, ok := businessErrors[be.Code]
	if !ok {
		httperr.BadRequest(c, be.Code, "Request rejected.")
		return true
	}

	httperr.Write(c, m.status, be.Code, m.message)
	return true
}
