package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/google/uuid"
)

// TokenProvider yields the current bearer token, or "" when there is none.
type TokenProvider func() string

// HTTPClient implements Client over the backend's REST/JSON contract.
//
// When an authenticated request comes back with status 401 the configured
// onSessionInvalid callback is invoked exactly once for that response,
// before the error is returned. The hosting application decides what the
// "redirect" means (the CLI forces a logout); the client itself never
// touches session state.
type HTTPClient struct {
	baseURL          string
	http             *http.Client
	tokens           TokenProvider
	onSessionInvalid func()
	log              logging.Logger
}

// NewHTTPClient builds a client for the given base URL. tokens and
// onSessionInvalid may be nil: requests are then sent without credentials
// and 401 responses surface as plain errors.
func NewHTTPClient(baseURL string, tokens TokenProvider, onSessionInvalid func(), log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPClient{
		baseURL:          baseURL,
		http:             &http.Client{},
		tokens:           tokens,
		onSessionInvalid: onSessionInvalid,
		log:              log,
	}
}

const (
	fallbackRequestFailed = "request failed"
	fallbackRegister      = "registration failed"
	fallbackLogin         = "invalid credentials"
)

// errorDetail extracts the machine-readable failure reason from an error
// body of the form {"detail": "..."}. Anything else (absent body, malformed
// JSON, structured detail such as validation issues) degrades to fallback.
func errorDetail(r io.Reader, fallback string) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return fallback
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil || detail == "" {
		return fallback
	}
	return detail
}

// doJSON performs one round-trip: marshal body (if any), send, normalize
// errors, decode the success body into out (if non-nil). No retries and no
// timeout beyond what ctx and the transport impose.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, authed bool, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", common.ContentTypeJSON)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if authed && c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api transport error", "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "request_id", requestID, "status", resp.StatusCode)

	if authed && resp.StatusCode == http.StatusUnauthorized {
		// Session-fatal: the credential itself was rejected. Signal the host
		// once, then fail with a fixed message. Not recoverable by retry.
		if c.onSessionInvalid != nil {
			c.onSessionInvalid()
		}
		return &APIError{Status: http.StatusUnauthorized, Message: "unauthorized"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, Message: errorDetail(resp.Body, fallback)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, username string, password string) (*models.User, error) {
	var user models.User
	creds := models.Credentials{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/register", creds, &user, false, fallbackRegister); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	creds := models.Credentials{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/login", creds, &resp, false, fallbackLogin); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes", nil, &notes, true, fallbackRequestFailed); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/notes/%d", id), nil, &note, true, fallbackRequestFailed); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, payload models.NotePayload) (*models.Note, error) {
	var note models.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes", payload, &note, true, fallbackRequestFailed); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id int64, payload models.NotePayload) (*models.Note, error) {
	var note models.Note
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), payload, &note, true, fallbackRequestFailed); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id int64) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, &resp, true, fallbackRequestFailed); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Ping probes the backend's root endpoint. Any 2xx means reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/", nil, nil, false, fallbackRequestFailed)
}
