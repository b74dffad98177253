package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusCreated, "Note created successfully!", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Note created successfully!", body.Message)
	assert.Equal(t, map[string]interface{}{"id": "1"}, body.Data)
}

func TestJSON_EmptySliceIsKept(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, []string{})

	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "There is no note with this ID.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "There is no note with this ID.", body.Error)
}

func TestValidationFailed(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFailed(rec, []FieldError{{Field: "title", Rule: "min", Message: "title must be at least 3 characters long"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
}
