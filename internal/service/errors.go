package service

import (
	"errors"
	"fmt"

	"notekeeper/internal/repository"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoteNotFound  = errors.New("note not found")
	ErrInternalFault = errors.New("internal fault")
)

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// storeError classifies a repository failure. Anything that is not a missing
// document is an internal fault.
func storeError(err error) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	return internalFault(err)
}

func internalFault(err error) error {
	return fmt.Errorf("%w: %w", ErrInternalFault, err)
}
