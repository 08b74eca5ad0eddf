// Package cli provides the interactive gophnotes command-line client.
//
// It wires configuration, the local session database, the API services and
// an interactive REPL. Typical flow: restore a persisted session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout with a durably persisted session
//   - List / Show / Add / Edit / Delete notes
//   - whoami with session details
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
