package handler

import (
	"errors"
	"net/http"
	"strings"

	"notekeeper/internal/service"
	"notekeeper/pkg/response"

	"github.com/go-playground/validator/v10"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:  http.StatusUnprocessableEntity,
	service.ErrNoteNotFound:  http.StatusNotFound,
	service.ErrInternalFault: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fieldErrors flattens validator failures into the response shape. A bare
// variable check (the path id) has no field name and is reported as "id".
func fieldErrors(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []response.FieldError{{Field: "body", Rule: "invalid", Message: err.Error()}}
	}

	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = "id"
		}
		out = append(out, response.FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: fieldMessage(field, fe),
		})
	}
	return out
}

func fieldMessage(field string, fe validator.FieldError) string {
	label := field
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return label + " must be at least " + fe.Param() + " characters long"
	case "uuid":
		return "ID is not a valid note identifier"
	default:
		return label + " is invalid"
	}
}
