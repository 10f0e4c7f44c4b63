package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/tdnguyen/luxauto/internal/config"
	"github.com/tdnguyen/luxauto/internal/contacts"
	"github.com/tdnguyen/luxauto/internal/listings"
	"github.com/tdnguyen/luxauto/internal/logging"
	"github.com/tdnguyen/luxauto/internal/models"
	"github.com/tdnguyen/luxauto/internal/session"
	"github.com/tdnguyen/luxauto/internal/storage"
	"github.com/tdnguyen/luxauto/internal/users"

	_ "modernc.org/sqlite"
)

// App is the interactive terminal client. It owns the open store and the
// domain services, plus the I/O streams the REPL reads and writes.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Store
	contacts *contacts.Service
	users    *users.Service
	listings *listings.Service

	// principal mirrors the persisted session for prompt/gating purposes.
	principal *models.Principal

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens (and migrates) the local store and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening local store", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	sessions := session.NewStore(kv, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		sessions: sessions,
		contacts: contacts.NewService(db, log),
		users:    users.NewService(db, sessions, log),
		listings: listings.NewService(db, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any persisted session and enters the REPL. It blocks until
// the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	p, err := a.sessions.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	a.principal = p

	a.Root(ctx)
}

// Close releases the store handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.principal != nil
}
