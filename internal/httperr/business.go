package httperr

import "errors"

// BusinessError is a rule violation identified by a stable snake_case
// code such as "no_table_available" or "invalid_party_size". Handlers
// map codes to HTTP statuses; everything else treats them as opaque.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given code. Used on paths
// that branch on a specific rejection, like the create loop advancing
// past a "table_taken" slot race.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
