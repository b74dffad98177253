package domain

type ChangeOperation string

const (
	OperationCreated ChangeOperation = "created"
	OperationUpdated ChangeOperation = "updated"
	OperationDeleted ChangeOperation = "deleted"
)

// NoteChange describes a committed mutation of a note. Note is nil for
// deletions.
type NoteChange struct {
	Operation ChangeOperation `json:"operation"`
	NoteID    string          `json:"note_id"`
	Note      *NoteResponse   `json:"note,omitempty"`
}
