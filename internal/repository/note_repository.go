//go:generate mockgen -source=note_repository.go -destination=../mock/note_repository_mock.go -package=mock

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notekeeper/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

const (
	noteDocType   = "note"
	noteDocPrefix = "note:"

	defaultPageSize = 200
)

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, rev string) error
}

// noteDocument is the CouchDB representation of a note.
type noteDocument struct {
	DocID     string    `json:"_id"`
	Rev       string    `json:"_rev,omitempty"`
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNoteDocument(note *domain.Note) *noteDocument {
	return &noteDocument{
		DocID:     docID(note.ID),
		Rev:       note.Rev,
		Type:      noteDocType,
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (d *noteDocument) toDomain() *domain.Note {
	id := d.ID
	if id == "" {
		id = strings.TrimPrefix(d.DocID, noteDocPrefix)
	}
	return &domain.Note{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Rev:       d.Rev,
	}
}

func docID(id string) string {
	return noteDocPrefix + id
}

type noteRepository struct {
	client   *kivik.Client
	dbName   string
	pageSize int
}

func NewNoteRepository(client *kivik.Client, dbName string) NoteRepository {
	return &noteRepository{
		client:   client,
		dbName:   dbName,
		pageSize: defaultPageSize,
	}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	db := r.client.DB(r.dbName)

	doc := newNoteDocument(note)
	doc.Rev = ""

	rev, err := db.Put(ctx, doc.DocID, doc)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", classify(err))
	}

	note.Rev = rev
	return nil
}

func (r *noteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	db := r.client.DB(r.dbName)

	var doc noteDocument
	if err := db.Get(ctx, docID(id)).ScanDoc(&doc); err != nil {
		return nil, fmt.Errorf("failed to find note: %w", classify(err))
	}

	return doc.toDomain(), nil
}

// List pages through _find with an explicit limit. CouchDB caps an unbounded
// _find at 25 docs, so each page hands its bookmark to the next request.
// Errors are not classified: a 404 here means the database is missing, not
// a note.
func (r *noteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	db := r.client.DB(r.dbName)

	notes := make([]*domain.Note, 0)
	bookmark := ""
	for {
		page, next, err := r.findPage(ctx, db, bookmark)
		if err != nil {
			return nil, err
		}
		notes = append(notes, page...)

		if len(page) < r.pageSize || next == "" || next == bookmark {
			return notes, nil
		}
		bookmark = next
	}
}

func (r *noteRepository) findPage(ctx context.Context, db *kivik.DB, bookmark string) ([]*domain.Note, string, error) {
	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"type": noteDocType,
		},
		"limit": r.pageSize,
	}
	if bookmark != "" {
		query["bookmark"] = bookmark
	}

	rows := db.Find(ctx, query)
	defer rows.Close()

	notes := make([]*domain.Note, 0, r.pageSize)
	for rows.Next() {
		var doc noteDocument
		if err := rows.ScanDoc(&doc); err != nil {
			return nil, "", fmt.Errorf("failed to decode note: %w", err)
		}
		notes = append(notes, doc.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to list notes: %w", err)
	}

	meta, err := rows.Metadata()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read list metadata: %w", err)
	}

	return notes, meta.Bookmark, nil
}

// Update writes note over the revision it carries. A stale revision yields
// ErrRevisionConflict.
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	db := r.client.DB(r.dbName)

	doc := newNoteDocument(note)
	rev, err := db.Put(ctx, doc.DocID, doc)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", classify(err))
	}

	note.Rev = rev
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id, rev string) error {
	db := r.client.DB(r.dbName)

	if _, err := db.Delete(ctx, docID(id), rev); err != nil {
		return fmt.Errorf("failed to delete note: %w", classify(err))
	}

	return nil
}
