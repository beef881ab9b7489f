package reservation

import "gorm.io/datatypes"

// Patch carries the optional fields of a partial reservation update.
// Nil means "leave unchanged".
type Patch struct {
	Name          *string
	Email         *string
	Phone         *string
	Date          *string
	Time          *string
	People        *int
	Message       *string
	OrderItems    *datatypes.JSON
	Feedback      *string
	Status        *string
	PaymentStatus *string
}

// Fields flattens the patch into a column -> value map for a single
// parameterized update.
func (p Patch) Fields() map[string]any {
	out := map[string]any{}

	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Email != nil {
		out["email"] = *p.Email
	}
	if p.Phone != nil {
		out["phone"] = *p.Phone
	}
	if p.Date != nil {
		out["date"] = *p.Date
	}
	if p.Time != nil {
		out["time"] = *p.Time
	}
	if p.People != nil {
		out["people"] = *p.People
	}
	if p.Message != nil {
		out["message"] = *p.Message
	}
	if p.OrderItems != nil {
		out["order_items"] = *p.OrderItems
	}
	if p.Feedback != nil {
		out["feedback"] = *p.Feedback
	}
	if p.Status != nil {
		out["status"] = *p.Status
	}
	if p.PaymentStatus != nil {
		out["payment_status"] = *p.PaymentStatus
	}

	return out
}

func (p Patch) Empty() bool {
	return len(p.Fields()) == 0
}
