package domain

import "errors"

// ValidationError carries a message that must reach the client verbatim,
// rendered with the API's nonstandard 449 validation status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Registration validation failures, in the order they are checked.
var (
	ErrNameTooLong      = &ValidationError{Message: "Name must be less than 50 character."}
	ErrSurnameTooLong   = &ValidationError{Message: "Surname must be less than 20 character."}
	ErrPseudoTooLong    = &ValidationError{Message: "Pseudo must be less than 20 character."}
	ErrEmailTooLong     = &ValidationError{Message: "Email must be less than 100 character."}
	ErrPasswordTooShort = &ValidationError{Message: "Password must be more than 8 character."}
	ErrPasswordTooWeak  = &ValidationError{Message: "The password must contain at least one lowercase letter, one uppercase letter, one digit, and one special character."}
)

var (
	ErrEmailTaken         = &ValidationError{Message: "Email already used."}
	ErrInvalidCredentials = &ValidationError{Message: "Wrong password or email."}
	ErrFieldNotAllowed    = &ValidationError{Message: "One of the fields cannot be used."}
	ErrEmptySearch        = &ValidationError{Message: "At least one search field is required."}
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotOwner denies mutation of a user-scoped record by a caller who is
	// neither its owner nor an admin.
	ErrNotOwner = errors.New("caller does not own the record")
)
