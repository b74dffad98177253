package repository

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-kivik/kivik/v4"
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrRevisionConflict = errors.New("note revision conflict")
)

// classify maps document-level CouchDB statuses onto the repository
// sentinels. The driver error stays in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch kivik.HTTPStatus(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrRevisionConflict, err)
	default:
		return err
	}
}
