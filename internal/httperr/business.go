package httperr

import "errors"

// Value-level errors returned by use cases. Handlers translate them to
// HTTP statuses; nothing here knows about gin.

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func IsValidation(err error, code string) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ConflictError carries the occupying appointment so the client can
// pick another slot instead.
type ConflictError struct {
	AppointmentID uint
	Time          string
}

func (e ConflictError) Error() string {
	return "slot_conflict"
}

func ErrConflict(appointmentID uint, hhmm string) error {
	return ConflictError{AppointmentID: appointmentID, Time: hhmm}
}

func AsConflict(err error) (ConflictError, bool) {
	var ce ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

type AuthorizationError struct {
	Message string
}

func (e AuthorizationError) Error() string {
	return "not_authorized"
}

func ErrForbidden(message string) error {
	return AuthorizationError{Message: message}
}

func IsForbidden(err error) bool {
	var ae AuthorizationError
	return errors.As(err, &ae)
}

type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return "storage_error: " + e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func ErrStorage(err error) error {
	if err == nil {
		return nil
	}
	return StorageError{Err: err}
}
