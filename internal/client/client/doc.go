// Package client contains the gateway to the notes backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login plus CRUD over notes and a liveness probe.
//  2. A concrete REST/JSON implementation (see HTTPClient) that attaches
//     the bearer token and a correlation id to every request, normalizes
//     non-2xx responses into *APIError, and reports a rejected credential
//     through a session-invalidated callback.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations for the
//     session store.
//
// # Error Handling
//
// Non-2xx responses become *APIError values carrying the HTTP status and
// the server's "detail" message (or a fixed fallback when the body is
// absent or unparsable). errors.Is matches ErrUnauthorized (401) and
// ErrNotFound (404); transport failures wrap ErrUnavailable.
//
// A 401 on an authenticated request is session-fatal: the callback given
// to NewHTTPClient fires exactly once per such response so the hosting
// application can clear its session. No retry is attempted.
package client
