package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notekeeper/internal/domain"
	"notekeeper/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) NotesAPI {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func TestList(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notes/", r.URL.Path)
		response.Message(w, http.StatusOK, "Notes fetched successfully!", []*domain.NoteResponse{
			{ID: "1", Title: "Groceries", Content: "milk, eggs"},
			{ID: "2", Title: "Todo", Content: "call mom"},
		})
	})

	notes, err := api.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Groceries", notes[0].Title)
}

func TestList_EmptyIsNonNil(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		response.Message(w, http.StatusOK, "Notes fetched successfully!", []*domain.NoteResponse{})
	})

	notes, err := api.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestGet_NotFound(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/note/abc", r.URL.Path)
		response.NotFound(w, "There is no note with this ID.")
	})

	_, err := api.Get(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "There is no note with this ID.", apiErr.Message)
}

func TestCreate(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes/create", r.URL.Path)

		var req domain.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		response.Message(w, http.StatusCreated, "Note created successfully!", &domain.NoteResponse{
			ID: "new-id", Title: req.Title, Content: req.Content,
		})
	})

	note, err := api.Create(context.Background(), domain.CreateNoteRequest{Title: "Groceries", Content: "milk, eggs"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", note.ID)
	assert.Equal(t, "milk, eggs", note.Content)
}

func TestCreate_ValidationFailed(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		response.ValidationFailed(w, []response.FieldError{{
			Field: "title", Rule: "min", Message: "Title must be at least 3 characters long",
		}})
	})

	_, err := api.Create(context.Background(), domain.CreateNoteRequest{Title: "ab", Content: "valid"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "Title must be at least 3 characters long")
}

func TestUpdate_SendsOnlyPresentFields(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/notes/update/id-1", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]*string
		require.NoError(t, json.Unmarshal(raw, &body))
		require.NotNil(t, body["title"])
		assert.Equal(t, "Shopping", *body["title"])
		assert.Nil(t, body["content"])

		response.Message(w, http.StatusCreated, "Note updated successfully!", nil)
	})

	title := "Shopping"
	require.NoError(t, api.Update(context.Background(), "id-1", domain.UpdateNoteRequest{Title: &title}))
}

func TestDelete_ServerError(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		response.InternalError(w, "Something went wrong, please try again later.")
	})

	err := api.Delete(context.Background(), "id-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServer))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestDelete_Success(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/delete/id-1", r.URL.Path)
		response.Message(w, http.StatusCreated, "Note deleted successfully!", nil)
	})

	assert.NoError(t, api.Delete(context.Background(), "id-1"))
}
