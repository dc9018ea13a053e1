package httperr

import "errors"

// Stable business error codes returned by the domain and use case layers.
const (
	CodeAppointmentNotFound = "appointment_not_found"
	CodeDoctorNotFound      = "doctor_not_found"
	CodePatientNotFound     = "patient_not_found"
	CodeSlotConflict        = "slot_conflict"
	CodeInvalidState        = "invalid_state"
	CodeValidation          = "validation"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsNotFound matches any of the not-found code family.
func IsNotFound(err error) bool {
	return IsBusiness(err, CodeAppointmentNotFound) ||
		IsBusiness(err, CodeDoctorNotFound) ||
		IsBusiness(err, CodePatientNotFound)
}
