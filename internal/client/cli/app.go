package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/config"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/services"
	"github.com/dmitrijs2005/gigdesk/internal/client/session"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
)

type App struct {
	session    *session.Store
	auth       services.AuthService
	gigs       services.GigService
	reconciler *services.Reconciler
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// NewApp opens the session database and wires the API client and services.
// Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session db: %w", err)
	}

	// the store is the API client's token source and the API client is the
	// store's profile fetcher
	var store *session.Store
	api, err := client.NewHTTPClient(cfg.APIBaseURL,
		client.TokenFunc(func() string { return store.Token() }),
		client.WithLogger(log.With("component", "api")))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store = session.NewStore(session.NewSQLitePersistence(db), api, session.WithLogger(log.With("component", "session")))

	list := services.NewGigList()
	a := newApp(store,
		services.NewAuthService(api, store, log),
		services.NewGigService(api, store, list, log),
		services.NewReconciler(api, list, log.With("component", "reconciler")),
		os.Stdin, os.Stdout, log)
	a.db = db
	return a, nil
}

func newApp(s *session.Store, auth services.AuthService, gigs services.GigService, rec *services.Reconciler, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		session:    s,
		auth:       auth,
		gigs:       gigs,
		reconciler: rec,
		log:        log,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Run restores the session in the background and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	go a.session.Restore(ctx)

	a.printf("Welcome to gigdesk (type 'help' for commands)\n")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints the user-facing line for err. Details go to the log.
func (a *App) report(ctx context.Context, err error, fallback string) {
	a.log.Debug(ctx, "command failed", "error", err)
	a.printf("%s\n", services.UserMessage(err, fallback))
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	switch {
	case snap.State.Loading():
		return "(restoring session...)"
	case snap.User != nil:
		return fmt.Sprintf("(%s, %s)", snap.User.Name, snap.User.Role)
	default:
		return "(guest)"
	}
}

// currentUser waits for restoration and returns the signed-in user, if any.
func (a *App) currentUser(ctx context.Context) *models.UserProfile {
	if err := a.session.Wait(ctx); err != nil {
		return nil
	}
	return a.session.User()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.currentUser(ctx) != nil
}

func (a *App) isFreelancer(ctx context.Context) bool {
	u := a.currentUser(ctx)
	return u != nil && u.Role == models.RoleFreelancer
}
