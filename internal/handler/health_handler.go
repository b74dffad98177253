package handler

import (
	"net/http"

	"notekeeper/pkg/response"
)

const serviceName = "notekeeper"

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// Root describes the API surface.
func Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Notekeeper API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/notes/":            "GET",
			"/notes/note/{id}":   "GET",
			"/notes/create":      "POST",
			"/notes/update/{id}": "PATCH",
			"/notes/delete/{id}": "DELETE",
			"/ws":                "GET (change feed)",
		},
	})
}
