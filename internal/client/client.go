// Package client talks to the notes HTTP API.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notekeeper/internal/domain"
	"notekeeper/pkg/response"

	"github.com/go-resty/resty/v2"
)

// NotesAPI is the set of remote operations the terminal client needs.
type NotesAPI interface {
	List(ctx context.Context) ([]*domain.NoteResponse, error)
	Get(ctx context.Context, id string) (*domain.NoteResponse, error)
	Create(ctx context.Context, req domain.CreateNoteRequest) (*domain.NoteResponse, error)
	Update(ctx context.Context, id string, req domain.UpdateNoteRequest) error
	Delete(ctx context.Context, id string) error
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpNotesClient struct {
	client *resty.Client
}

func New(cfg Config) NotesAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpNotesClient{client: cli}
}

// envelope mirrors response.Response with a typed data field.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (c *httpNotesClient) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetError(&response.Response{})
}

func (c *httpNotesClient) List(ctx context.Context) ([]*domain.NoteResponse, error) {
	var out envelope[[]*domain.NoteResponse]
	resp, err := c.request(ctx).
		SetResult(&out).
		Get("/notes/")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out.Data == nil {
		out.Data = make([]*domain.NoteResponse, 0)
	}
	return out.Data, nil
}

func (c *httpNotesClient) Get(ctx context.Context, id string) (*domain.NoteResponse, error) {
	var out envelope[*domain.NoteResponse]
	resp, err := c.request(ctx).
		SetResult(&out).
		SetPathParam("id", id).
		Get("/notes/note/{id}")
	if err != nil {
		return nil, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("get note: %w: empty payload", ErrServer)
	}

	return out.Data, nil
}

func (c *httpNotesClient) Create(ctx context.Context, req domain.CreateNoteRequest) (*domain.NoteResponse, error) {
	var out envelope[*domain.NoteResponse]
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/notes/create")
	if err != nil {
		return nil, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("create note: %w: empty payload", ErrServer)
	}

	return out.Data, nil
}

func (c *httpNotesClient) Update(ctx context.Context, id string, req domain.UpdateNoteRequest) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetPathParam("id", id).
		Patch("/notes/update/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpNotesClient) Delete(ctx context.Context, id string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		Delete("/notes/delete/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}
