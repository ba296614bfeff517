package httperr

import "errors"

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

// Códigos de negócio do fluxo de agendamento.
const (
	CodeSlotTaken           = "slot_taken"
	CodeSlotBusy            = "slot_busy"
	CodeNonWorkingDay       = "non_working_day"
	CodeInvalidTime         = "invalid_time"
	CodeInvalidDate         = "invalid_date"
	CodeInvalidPhone        = "invalid_phone"
	CodeInvalidStatus       = "invalid_status"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeBarberNotFound      = "barber_not_found"
	CodeServiceNotFound     = "service_not_found"
)
