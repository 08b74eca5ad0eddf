package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophnotes/internal/client/services"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/dmitrijs2005/gophnotes/internal/filex"
	"github.com/dmitrijs2005/gophnotes/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires configuration, the local session database, the API services and
// the interactive REPL together.
type App struct {
	config  *config.Config
	auth    services.AuthService
	notes   services.NoteService
	session *session.Manager
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader
	Mode    Mode
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureDir(c.DatabaseDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "session.db"))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.NewManager(metadata.NewSQLiteRepository(db))

	a := &App{
		config:  c,
		session: sess,
		db:      db,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		Mode:    ModeOffline,
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, sess.Token, a.onSessionInvalidated, logger)
	a.auth = services.NewAuthService(apiClient, sess)
	a.notes = services.NewNoteService(apiClient)

	return a, nil
}

// onSessionInvalidated is the client's 401 signal: the backend rejected the
// stored credential, so the persisted session is erased and the user is
// sent back to the logged-out prompt.
func (a *App) onSessionInvalidated() {
	if err := a.auth.Logout(context.Background()); err != nil {
		a.log.Error(context.Background(), "error clearing session", "error", err)
	}
	printlnFn("Session expired, please log in again")
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Info().Authenticated
}

func (a *App) getStatus() string {
	s := ""
	if info := a.auth.Info(); info.Authenticated {
		s = info.Username + " "
	}
	s = s + string(a.Mode)
	return fmt.Sprintf("(%s)", s)
}

// Run restores a persisted session, starts the connectivity watcher and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	log.Println("Welcome to gophnotes (type 'help' for commands)")

	// Consumers must not see gated state before the restore completes.
	if err := a.auth.Restore(ctx); err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	if info := a.auth.Info(); info.Authenticated {
		log.Printf("Restored session for %s\n", info.Username)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

// StartOnlineStatusWatcher periodically probes the backend and flips the
// online/offline mode indicator.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
