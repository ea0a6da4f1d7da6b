// Package http exposes the accounts service over its public REST surface.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lynlab/accounts/internal/logging"
	"github.com/lynlab/accounts/internal/server/accounts"
)

const shutdownTimeout = 5 * time.Second

// AccountService is the part of the accounts service the handlers use.
type AccountService interface {
	Register(ctx context.Context, username, password, email, redirectionURL string) (*accounts.Account, error)
	Activate(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, username, password string, services []string) (*accounts.LoginResult, error)
	WhoAmI(ctx context.Context, accessToken string) (*accounts.Identity, error)
}

type Server struct {
	address  string
	accounts AccountService
	logger   logging.Logger
}

func NewServer(address string, l logging.Logger, as AccountService) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: as,
	}
}

// Router builds the route table. All routes live under the /v1 prefix.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	v1.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	v1.HandleFunc("/activate/{token}", s.handleActivate).Methods(http.MethodGet)
	v1.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	v1.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping http server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting http server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
