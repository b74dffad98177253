package domain

import "time"

// MinFieldLength is the minimum number of characters for a note title or content.
const MinFieldLength = 3

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Rev is the store revision of the document, required for writes.
	Rev string `json:"-"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,min=3"`
	Content string `json:"content" validate:"required,min=3"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitnil,min=3"`
	Content *string `json:"content,omitempty" validate:"omitnil,min=3"`
}

type NoteResponse struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (n *Note) ToResponse() *NoteResponse {
	return &NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
