package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// NoteService defines note operations for the CLI. Create and Update
// validate the title locally before issuing any request; the per-view data
// is transient and no client-side cache is kept between calls.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, title string, content string, tags []string) (*models.Note, error)
	Update(ctx context.Context, id int64, title string, content string, tags []string) (*models.Note, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type noteService struct {
	client client.Client
}

// NewNoteService constructs a NoteService bound to the given API client.
func NewNoteService(client client.Client) NoteService {
	return &noteService{client: client}
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.client.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := s.client.GetNote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (s *noteService) Create(ctx context.Context, title string, content string, tags []string) (*models.Note, error) {
	payload, err := buildPayload(title, content, tags)
	if err != nil {
		return nil, err
	}
	note, err := s.client.CreateNote(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// Update is a full replacement of title, content and tags.
func (s *noteService) Update(ctx context.Context, id int64, title string, content string, tags []string) (*models.Note, error) {
	payload, err := buildPayload(title, content, tags)
	if err != nil {
		return nil, err
	}
	note, err := s.client.UpdateNote(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) (string, error) {
	msg, err := s.client.DeleteNote(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete note: %w", err)
	}
	return msg, nil
}

// buildPayload enforces the client-side contract: a trimmed, non-empty
// title, and tags that marshal as an array even when there are none.
func buildPayload(title string, content string, tags []string) (models.NotePayload, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.NotePayload{}, common.ErrEmptyTitle
	}
	if tags == nil {
		tags = []string{}
	}
	return models.NotePayload{Title: title, Content: content, Tags: tags}, nil
}

// ParseTags splits comma-delimited user input into tags, trimming
// whitespace and dropping empty items. Order is preserved.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatTags joins tags for display, mirroring ParseTags.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
