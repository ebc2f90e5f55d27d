package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/avasin/brewmart/internal/catalog"
	"github.com/avasin/brewmart/internal/config"
	"github.com/avasin/brewmart/internal/logging"
	"github.com/avasin/brewmart/internal/models"
	"github.com/avasin/brewmart/internal/session"
	"github.com/avasin/brewmart/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the session and catalog stores to the REPL. It also owns the
// non-persisted filter view state: the current search term and the selected
// category.
type App struct {
	config         *config.Config
	sessionService session.Service
	catalogService catalog.Service
	log            logging.Logger

	reader           *bufio.Reader
	searchTerm       string
	selectedCategory models.Category
}

// NewApp opens the local store at the configured path and constructs the
// application with its services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	ss := session.NewService(kv, log, c.LoginDelay)
	cs := catalog.NewService(kv, log)

	return &App{
		config:           c,
		sessionService:   ss,
		catalogService:   cs,
		log:              log,
		reader:           bufio.NewReader(os.Stdin),
		selectedCategory: models.CategoryAll,
	}, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	sess, err := a.sessionService.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if sess != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", sess.Username))
	}

	scanner := newScanner()
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sessionService.Current() != nil
}

func (a *App) getStatus() string {
	if sess := a.sessionService.Current(); sess != nil {
		return fmt.Sprintf("(%s)", sess.Username)
	}
	return ""
}
