package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func write(w http.ResponseWriter, statusCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	write(w, statusCode, Response{
		Success: statusCode < 400,
		Data:    data,
	})
}

// Message writes a success envelope carrying a human readable message and
// optional data.
func Message(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	write(w, statusCode, Response{
		Success: statusCode < 400,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, err string) {
	write(w, statusCode, Response{
		Success: false,
		Error:   err,
	})
}

// ValidationFailed writes a 422 with one entry per failed rule.
func ValidationFailed(w http.ResponseWriter, errs []FieldError) {
	write(w, http.StatusUnprocessableEntity, Response{
		Success: false,
		Error:   "Invalid inputs passed, please check your data.",
		Errors:  errs,
	})
}

func NotFound(w http.ResponseWriter, err string) {
	Error(w, http.StatusNotFound, err)
}

func InternalError(w http.ResponseWriter, err string) {
	Error(w, http.StatusInternalServerError, err)
}
