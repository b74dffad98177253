package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"notekeeper/pkg/response"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotFound     = errors.New("note not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx answer from the notes API. It unwraps to one of the
// package sentinels.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []response.FieldError
	kind       error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, f := range e.Fields {
		b.WriteString("; ")
		b.WriteString(f.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*response.Response); ok && body != nil {
		apiErr.Message = body.Error
		apiErr.Fields = body.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		apiErr.kind = ErrInvalidInput
	default:
		apiErr.kind = fmt.Errorf("%w: http %d", ErrServer, resp.StatusCode())
	}
	return apiErr
}
