package services

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// fakeClient implements client.Client for service unit tests: fixed
// results/errors per method, plus recorded arguments for assertions.
type fakeClient struct {
	RegisterRet *models.User
	RegisterErr error

	LoginRet *models.LoginResponse
	LoginErr error

	ListRet []models.Note
	ListErr error

	GetRet *models.Note
	GetErr error

	CreateRet *models.Note
	CreateErr error

	UpdateRet *models.Note
	UpdateErr error

	DeleteRet string
	DeleteErr error

	PingErr error

	Calls []string

	LastUsername string
	LastPassword string
	LastID       int64
	LastPayload  models.NotePayload
}

func (f *fakeClient) Register(ctx context.Context, username, password string) (*models.User, error) {
	f.Calls = append(f.Calls, "register")
	f.LastUsername, f.LastPassword = username, password
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.Calls = append(f.Calls, "login")
	f.LastUsername, f.LastPassword = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	f.Calls = append(f.Calls, "list")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	f.Calls = append(f.Calls, "get")
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateNote(ctx context.Context, payload models.NotePayload) (*models.Note, error) {
	f.Calls = append(f.Calls, "create")
	f.LastPayload = payload
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateNote(ctx context.Context, id int64, payload models.NotePayload) (*models.Note, error) {
	f.Calls = append(f.Calls, "update")
	f.LastID, f.LastPayload = id, payload
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteNote(ctx context.Context, id int64) (string, error) {
	f.Calls = append(f.Calls, "delete")
	f.LastID = id
	return f.DeleteRet, f.DeleteErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.Calls = append(f.Calls, "ping")
	return f.PingErr
}
