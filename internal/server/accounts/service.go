// Package accounts holds the account lifecycle: registration, email-based
// activation, login with stable access tokens, and bearer-token lookups.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lynlab/accounts/internal/common"
	"github.com/lynlab/accounts/internal/cryptox"
	"github.com/lynlab/accounts/internal/logging"
	"github.com/lynlab/accounts/internal/server/config"
	"github.com/lynlab/accounts/internal/server/firebase"
	"github.com/lynlab/accounts/internal/server/mail"
)

const (
	accessTokenLength     = 64
	activationTokenLength = 16
)

// ServiceFirebase is the name a login request uses to ask for a Firebase
// custom token alongside the access token.
const ServiceFirebase = "firebase"

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	AccessToken   string
	FirebaseToken string
}

// Identity is the public identity of an authenticated account.
type Identity struct {
	ID       string
	Username string
	Email    string
}

// Service owns the account state machine:
// unregistered -> pending activation -> activated.
type Service struct {
	repo               Repository
	minter             firebase.Minter
	sender             mail.Sender
	logger             logging.Logger
	activationValidity time.Duration
	activationBaseURL  string
	now                func() time.Time
}

// NewService constructs a Service using its collaborators and server config.
func NewService(repo Repository, minter firebase.Minter, sender mail.Sender, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:               repo,
		minter:             minter,
		sender:             sender,
		logger:             logger.With("module", "accounts"),
		activationValidity: cfg.ActivationTokenValidity,
		activationBaseURL:  cfg.ActivationBaseURL,
		now:                time.Now,
	}
}

// Register creates a pending-activation account and mails the activation
// link. A username collision yields common.ErrDuplicateIdentity with no side
// effects. Mail delivery is best-effort: registration already succeeded, a
// lost mail only delays activation.
func (s *Service) Register(ctx context.Context, username, password, email, redirectionURL string) (*Account, error) {

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	activationToken, err := cryptox.GenerateToken(activationTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generating activation token: %w", err)
	}

	validUntil := s.now().Add(s.activationValidity)

	account := &Account{
		ID:                        uuid.NewString(),
		Username:                  username,
		PasswordHash:              cryptox.HashPassword(password, salt),
		PasswordSalt:              salt,
		Email:                     email,
		IsActivated:               false,
		ActivationToken:           &activationToken,
		ActivationTokenValidUntil: &validUntil,
		ActivationRedirectionURL:  &redirectionURL,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	link := s.activationBaseURL + "/activate/" + activationToken
	if err := s.sender.Send(ctx, email, mail.ActivationSubject, mail.ActivationBody(link)); err != nil {
		s.logger.Warn(ctx, "activation mail not delivered", "username", username, "error", err.Error())
	}

	return account, nil
}

// Activate consumes an activation token and returns the redirection URL
// supplied at registration. The token is usable strictly before its
// valid-until instant; an expired token stays in place, so every retry
// re-evaluates expiry. A consumed token is cleared together with flipping
// is_activated, so presenting it again yields common.ErrInvalidToken.
func (s *Service) Activate(ctx context.Context, token string) (string, error) {

	account, err := s.repo.GetByActivationToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", fmt.Errorf("finding account: %w", err)
	}

	if account.ActivationTokenValidUntil == nil || !s.now().Before(*account.ActivationTokenValidUntil) {
		return "", common.ErrTokenExpired
	}

	if err := s.repo.MarkActivated(ctx, account.ID); err != nil {
		return "", fmt.Errorf("marking activated: %w", err)
	}

	s.logger.Info(ctx, "account activated", "username", account.Username)

	var redirect string
	if account.ActivationRedirectionURL != nil {
		redirect = *account.ActivationRedirectionURL
	}
	return redirect, nil
}

// Login authenticates username/password and returns the account's access
// token, minting one on the first successful login. An account keeps the
// same token across logins. When services contains ServiceFirebase, a
// Firebase custom token is minted as well; mint failure fails the login.
func (s *Service) Login(ctx context.Context, username, password string, services []string) (*LoginResult, error) {

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownAccount
		}
		return nil, fmt.Errorf("finding account: %w", err)
	}

	if !cryptox.VerifyPassword(password, account.PasswordSalt, account.PasswordHash) {
		return nil, common.ErrWrongCredentials
	}

	if !account.IsActivated {
		return nil, common.ErrNotActivated
	}

	result := &LoginResult{}

	if account.AccessToken != nil {
		result.AccessToken = *account.AccessToken
	} else {
		token, err := s.issueAccessToken(ctx, account)
		if err != nil {
			return nil, err
		}
		result.AccessToken = token
	}

	for _, name := range services {
		if name == ServiceFirebase {
			minted, err := s.minter.Mint(account.ID)
			if err != nil {
				return nil, fmt.Errorf("minting firebase token: %w", err)
			}
			result.FirebaseToken = minted
		}
	}

	return result, nil
}

// issueAccessToken mints a fresh token and stores it with a conditional
// update. Losing the update means a concurrent login issued a token first;
// the stored one wins and is returned instead.
func (s *Service) issueAccessToken(ctx context.Context, account *Account) (string, error) {

	token, err := cryptox.GenerateToken(accessTokenLength)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}

	won, err := s.repo.SetAccessTokenIfAbsent(ctx, account.ID, token)
	if err != nil {
		return "", fmt.Errorf("storing access token: %w", err)
	}
	if won {
		return token, nil
	}

	current, err := s.repo.GetByUsername(ctx, account.Username)
	if err != nil {
		return "", fmt.Errorf("re-reading account: %w", err)
	}
	if current.AccessToken == nil {
		return "", errors.New("access token missing after concurrent issue")
	}
	return *current.AccessToken, nil
}

// WhoAmI resolves a bearer access token to the identity it belongs to.
// Unknown tokens and tokens of not-yet-activated accounts are both
// common.ErrUnauthenticated.
func (s *Service) WhoAmI(ctx context.Context, accessToken string) (*Identity, error) {

	account, err := s.repo.GetByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("finding account: %w", err)
	}

	if !account.IsActivated {
		return nil, common.ErrUnauthenticated
	}

	return &Identity{ID: account.ID, Username: account.Username, Email: account.Email}, nil
}
