// Package common defines the sentinel errors shared by stores, services and
// handlers. Callers match them with errors.Is / errors.As.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound      = errors.New("not found")
	ErrPhotoNotFound = errors.New("photo not found")

	// Photo upload errors.
	ErrPhotoTooLarge = errors.New("photo exceeds maximum upload size")
)

// ValidationError carries a message that is safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err wraps a *ValidationError and returns its message.
func IsValidation(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}
