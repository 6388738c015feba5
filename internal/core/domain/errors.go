package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")

	ErrSuperAdminProtected = fmt.Errorf("%w: cannot delete SUPERADMIN", ErrForbidden)
	ErrSuperAdminImmutable = fmt.Errorf("%w: cannot change SUPERADMIN role", ErrForbidden)

	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrSubmissionNotFound = errors.New("submission not found")

	ErrEmailTaken = errors.New("email already registered")

	ErrUnsupportedResumeType = errors.New("only PDF/DOC/DOCX allowed")
	ErrResumeTooLarge        = errors.New("resume exceeds the maximum upload size")
)

// ValidationError reports malformed or missing input. Its message is safe
// to return to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
