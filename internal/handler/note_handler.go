package handler

import (
	"encoding/json"
	"net/http"

	"notekeeper/internal/domain"
	"notekeeper/internal/logger"
	"notekeeper/internal/service"
	"notekeeper/pkg/response"

	"github.com/gorilla/mux"
)

const (
	msgNotesFetched = "Notes fetched successfully!"
	msgNoteFetched  = "Note fetched successfully!"
	msgNoteCreated  = "Note created successfully!"
	msgNoteUpdated  = "Note updated successfully!"
	msgNoteDeleted  = "Note deleted successfully!"

	msgNoSuchNote       = "There is no note with this ID."
	msgCannotFindNote   = "Can't find this note."
	msgSomethingWrong   = "Something went wrong, please try again later."
	msgMalformedPayload = "request body must be a JSON object"
)

type NoteHandler struct {
	service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service: service,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err, msgSomethingWrong)
		return
	}

	response.Message(w, http.StatusOK, msgNotesFetched, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, err := h.service.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, msgNoSuchNote)
		return
	}

	response.Message(w, http.StatusOK, msgNoteFetched, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		malformedPayload(w)
		return
	}

	note, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	response.Message(w, http.StatusCreated, msgNoteCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	// The id is checked first so a bad id is reported even with a bad body.
	if err := h.service.ValidateID(noteID); err != nil {
		h.fail(w, r, err, "")
		return
	}

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		malformedPayload(w)
		return
	}

	if _, err := h.service.Update(r.Context(), noteID, &req); err != nil {
		h.fail(w, r, err, msgCannotFindNote)
		return
	}

	response.Message(w, http.StatusCreated, msgNoteUpdated, nil)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, msgCannotFindNote)
		return
	}

	response.Message(w, http.StatusCreated, msgNoteDeleted, nil)
}

// fail writes the response for a service error. notFound is the message used
// when the note does not exist. Internal faults are logged with their cause
// and reported with a generic message.
func (h *NoteHandler) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status := statusFromError(err)

	switch status {
	case http.StatusUnprocessableEntity:
		response.ValidationFailed(w, fieldErrors(err))
	case http.StatusNotFound:
		response.NotFound(w, notFound)
	default:
		logger.FromRequest(r).Error().Err(err).Str("route", routeName(r)).Msg("note operation failed")
		response.InternalError(w, msgSomethingWrong)
	}
}

func malformedPayload(w http.ResponseWriter) {
	response.ValidationFailed(w, []response.FieldError{{
		Field:   "body",
		Rule:    "json",
		Message: msgMalformedPayload,
	}})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
