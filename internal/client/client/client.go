package client

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the notes
// backend. Register and Login are unauthenticated; every other operation
// sends the current bearer token.
type Client interface {
	Register(ctx context.Context, username string, password string) (*models.User, error)
	Login(ctx context.Context, username string, password string) (*models.LoginResponse, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	CreateNote(ctx context.Context, payload models.NotePayload) (*models.Note, error)
	UpdateNote(ctx context.Context, id int64, payload models.NotePayload) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) (string, error)
	Ping(ctx context.Context) error
}
