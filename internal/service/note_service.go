package service

import (
	"context"
	"reflect"
	"strings"
	"time"

	"notekeeper/internal/domain"
	"notekeeper/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ChangeNotifier receives every committed note mutation.
type ChangeNotifier interface {
	NotifyNoteChange(change domain.NoteChange)
}

type NoteService struct {
	repo     repository.NoteRepository
	notifier ChangeNotifier
	validate *validator.Validate
	now      func() time.Time
}

// NewNoteService builds the service. notifier may be nil.
func NewNoteService(repo repository.NoteRepository, notifier ChangeNotifier) *NoteService {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &NoteService{
		repo:     repo,
		notifier: notifier,
		validate: validate,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// jsonFieldName reports validation failures under the JSON field name.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateID reports whether id has the identifier format notes are stored under.
func (s *NoteService) ValidateID(id string) error {
	if err := s.validate.Var(id, "required,uuid"); err != nil {
		return invalidInput(err)
	}
	return nil
}

func (s *NoteService) Create(ctx context.Context, req *domain.CreateNoteRequest) (*domain.NoteResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	now := s.now()
	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, storeError(err)
	}

	response := note.ToResponse()
	s.notify(domain.NoteChange{Operation: domain.OperationCreated, NoteID: note.ID, Note: response})

	return response, nil
}

// List returns every note in store order. An empty store yields an empty,
// non-nil slice.
func (s *NoteService) List(ctx context.Context) ([]*domain.NoteResponse, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		// Listing names no note, so nothing here can be a missing note.
		return nil, internalFault(err)
	}

	responses := make([]*domain.NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, n.ToResponse())
	}

	return responses, nil
}

func (s *NoteService) GetByID(ctx context.Context, noteID string) (*domain.NoteResponse, error) {
	if err := s.ValidateID(noteID); err != nil {
		return nil, err
	}

	note, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		return nil, storeError(err)
	}

	return note.ToResponse(), nil
}

// Update applies a partial update: only the fields present in req change.
func (s *NoteService) Update(ctx context.Context, noteID string, req *domain.UpdateNoteRequest) (*domain.NoteResponse, error) {
	if err := s.ValidateID(noteID); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	note, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		return nil, storeError(err)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, storeError(err)
	}

	response := note.ToResponse()
	s.notify(domain.NoteChange{Operation: domain.OperationUpdated, NoteID: note.ID, Note: response})

	return response, nil
}

func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	if err := s.ValidateID(noteID); err != nil {
		return err
	}

	note, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		return storeError(err)
	}

	if err := s.repo.Delete(ctx, note.ID, note.Rev); err != nil {
		return storeError(err)
	}

	s.notify(domain.NoteChange{Operation: domain.OperationDeleted, NoteID: note.ID})

	return nil
}

func (s *NoteService) notify(change domain.NoteChange) {
	if s.notifier != nil {
		s.notifier.NotifyNoteChange(change)
	}
}
