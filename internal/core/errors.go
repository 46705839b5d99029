package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     error = errors.New("validation failed")
	ErrAuthentication error = errors.New("authentication required")
	ErrAuthorization  error = errors.New("not authorized")
	ErrAlreadyVoted   error = errors.New("already voted in this category")
	ErrNotFound       error = errors.New("not found")
)

var (
	ErrUsernameTaken      error = fmt.Errorf("%w: username already taken", ErrValidation)
	ErrEmailTaken         error = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrAccountExists      error = fmt.Errorf("%w: username or email already registered", ErrValidation)
	ErrNomineeExists      error = fmt.Errorf("%w: nominee already exists in this category", ErrValidation)
	ErrInvalidCredentials error = fmt.Errorf("%w: invalid username or password", ErrAuthentication)
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
