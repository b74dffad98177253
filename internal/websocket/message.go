package websocket

import (
	"encoding/json"
	"time"

	"notekeeper/internal/domain"
)

type MessageType string

const (
	TypeNoteCreated MessageType = "note_created"
	TypeNoteUpdated MessageType = "note_updated"
	TypeNoteDeleted MessageType = "note_deleted"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type NoteDeletePayload struct {
	NoteID string `json:"note_id"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payloadBytes,
	}, nil
}

// MessageFromChange converts a committed note mutation to a feed message.
func MessageFromChange(change domain.NoteChange) (*Message, error) {
	switch change.Operation {
	case domain.OperationCreated:
		return NewMessage(TypeNoteCreated, change.Note)
	case domain.OperationUpdated:
		return NewMessage(TypeNoteUpdated, change.Note)
	default:
		return NewMessage(TypeNoteDeleted, NoteDeletePayload{NoteID: change.NoteID})
	}
}

func (m *Message) UnmarshalPayload(v interface{}) error {
	if m.Payload == nil {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
