// Package cli implements the interactive terminal client: a REPL that
// drives the services and renders their results. It owns the screen state
// (cached collections, the filter selection, request tokens) and keeps all
// business logic out of the loop itself.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/config"
	"github.com/cforge/cforge/internal/client/filters"
	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/client/repositories/metadata"
	"github.com/cforge/cforge/internal/client/services"
	"github.com/cforge/cforge/internal/client/storage"
	"github.com/cforge/cforge/internal/logging"
)

type App struct {
	cfg *config.Config
	log logging.Logger
	db  *sql.DB

	apiClient   *api.HTTPClient
	auth        services.AuthService
	contests    services.ContestService
	problems    services.ProblemService
	profile     services.ProfileService
	submissions services.SubmissionService

	session *storage.Session
	reader  *bufio.Reader
	out     io.Writer

	// screen state
	filter       filters.State
	problemCache []models.Problem

	contestGuard services.RequestGuard
	problemGuard services.RequestGuard
	profileGuard services.RequestGuard
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	opts := []api.Option{
		api.WithTimeout(cfg.RequestTimeout),
		api.WithRetry(cfg.RetryAttempts, cfg.RetryDelay),
		api.WithStrictDecode(cfg.StrictDecode),
	}
	if cfg.APIKey != "" && cfg.APISecret != "" {
		opts = append(opts, api.WithCredentials(api.Credentials{Key: cfg.APIKey, Secret: cfg.APISecret}))
	}
	apiClient := api.NewHTTPClient(cfg.BaseURL, log, opts...)

	repo := metadata.NewSQLiteRepository(db)
	sessions := storage.NewSessionStore(repo)
	store := storage.NewSubmissionStore(ctx, repo, log)

	app := &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		apiClient:   apiClient,
		auth:        services.NewAuthService(apiClient, sessions),
		contests:    services.NewContestService(apiClient),
		problems:    services.NewProblemService(apiClient),
		profile:     services.NewProfileService(apiClient, log),
		submissions: services.NewSubmissionService(store),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}

	// resume a previous session if one was persisted
	sess, err := sessions.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load session", "error", err)
	} else {
		app.session = sess
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	printlnFn("CForge CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "signed out"
	}
	return a.session.Handle
}
