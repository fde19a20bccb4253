package services

import "net/http"

// ErrorKind is the stable machine-checkable category of a service failure.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindPastDate      ErrorKind = "past_date"
	KindForbidden     ErrorKind = "forbidden"
	KindInvalidAction ErrorKind = "invalid_action"
	KindInternal      ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindPastDate, KindInvalidAction:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrMissingFields       = &Error{KindValidation, "Artist, date and time are required"}
	ErrArtistNotFound      = &Error{KindNotFound, "Artist not found"}
	ErrPastDate            = &Error{KindPastDate, "Cannot book an appointment in the past"}
	ErrSlotTaken           = &Error{KindConflict, "Another appointment already exists at this date and time"}
	ErrAppointmentNotFound = &Error{KindNotFound, "Appointment not found"}
	ErrForbidden           = &Error{KindForbidden, "Forbidden"}
	ErrInvalidAction       = &Error{KindInvalidAction, "Invalid action"}
	ErrInternal            = &Error{KindInternal, "Internal server error"}
)
