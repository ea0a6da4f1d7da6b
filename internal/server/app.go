// Package server initializes and runs the accounts application: it validates
// configuration, wires storage, mail, and the identity minter into the
// lifecycle service, and serves the HTTP API with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lynlab/accounts/internal/logging"
	"github.com/lynlab/accounts/internal/server/accounts"
	"github.com/lynlab/accounts/internal/server/config"
	"github.com/lynlab/accounts/internal/server/firebase"
	httpapi "github.com/lynlab/accounts/internal/server/http"
	"github.com/lynlab/accounts/internal/server/mail"
	"github.com/lynlab/accounts/internal/server/shared/db"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  db.RepositoryManager
	accounts *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var sender mail.Sender
	if c.SMTPUsername != "" {
		sender = mail.NewSMTPSender(c.SMTPHost, c.SMTPPort, c.SMTPUsername, c.SMTPPassword, c.MailFrom)
	} else {
		sender = mail.NewLogSender(logger)
	}

	var minter firebase.Minter = firebase.Disabled{}
	if c.FirebaseServiceAccount != "" {
		minter, err = firebase.NewTokenMinter(c.FirebaseServiceAccount, c.FirebaseKeyFile)
		if err != nil {
			return nil, fmt.Errorf("firebase init error: %w", err)
		}
	}

	as := accounts.NewService(manager.Accounts(), minter, sender, logger, c)

	return &App{config: c, logger: logger, manager: manager, accounts: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.BindAddr, app.logger, app.accounts)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
