// Package cli implements the interactive TaskKeeper client: a small
// read–eval–print loop over the HTTP API with a persisted session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/client/session"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *session.Session
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) *App {
	apiClient := client.NewHTTPClient(c.ServerBaseURL)
	storage := session.NewFileStorage(c.TokenFile)

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	return &App{
		config:  c,
		client:  apiClient,
		session: session.New(apiClient, storage),
		logger:  logging.NewZerologLogger(zl),
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Name)
	}
	return ""
}

// Run restores a previous session if a token was persisted, then hands
// control to the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	if user := a.session.User(); user != nil {
		a.logger.Info(ctx, "session restored", "user", user.Name)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
