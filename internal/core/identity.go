package core

import (
	"context"
	"errors"
	"fmt"

	"votehall/internal/repository"
	tokenIssuer "votehall/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewAccount validates a registration and turns it into a user record with a
// hashed password.
func NewAccount(reg Registration, isAdmin bool) (repository.User, error) {
	reg = reg.normalize()
	if err := reg.Validate(); err != nil {
		return repository.User{}, invalid(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, fmt.Errorf("hash password: %w", err)
	}

	return repository.User{
		ID:           uuid.NewString(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    TimeNow().UTC(),
	}, nil
}

// Register creates a regular user account.
func (e *Election) Register(ctx context.Context, reg Registration) error {
	user, err := NewAccount(reg, false)
	if err != nil {
		return err
	}

	err = e.repo.CreateUser(ctx, user)
	switch {
	case errors.Is(err, repository.ErrUsernameTaken):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, repository.ErrUserExists):
		return ErrAccountExists
	case err != nil:
		return fmt.Errorf("create user: %w", err)
	}

	e.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Login checks the credentials and opens a session. Unknown users and wrong
// passwords fail the same way.
func (e *Election) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, invalid(err)
	}

	user, err := e.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := TimeNow().UTC()
	session := repository.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(e.sessionTTL),
		CreatedAt: now,
	}
	if err := e.repo.CreateSession(ctx, session); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		SessionID:  session.ID,
		Expiration: e.sessionTTL,
	}
	token := e.jwtIssuer.Generate(tokenInfo)
	signed, err := e.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	e.logs.Infow("user logged in", "userId", user.ID, "sessionId", session.ID)

	return Session{
		Token:     signed,
		ExpiresAt: session.ExpiresAt,
		Principal: Principal{
			UserID:    user.ID,
			Username:  user.Username,
			SessionID: session.ID,
			IsAdmin:   user.IsAdmin,
		},
	}, nil
}

// Logout ends the session behind token. Unknown or already ended sessions are
// not an error.
func (e *Election) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := e.jwtIssuer.Validate(token)
	if err != nil {
		e.logs.Infow("logout with unusable token", "error", err)
		return nil
	}

	sessionID := tokenIssuer.StringClaim(claims, "jti")
	if sessionID == "" {
		return nil
	}

	err = e.repo.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}

	e.logs.Infow("user logged out", "sessionId", sessionID)
	return nil
}

// Authenticate resolves a session token to the principal it was issued for.
func (e *Election) Authenticate(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrAuthentication
	}

	claims, err := e.jwtIssuer.Validate(token)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	userID := tokenIssuer.StringClaim(claims, "sub")
	sessionID := tokenIssuer.StringClaim(claims, "jti")
	if userID == "" || sessionID == "" {
		return Principal{}, fmt.Errorf("%w: incomplete token claims", ErrAuthentication)
	}

	session, err := e.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return Principal{}, fmt.Errorf("%w: session ended", ErrAuthentication)
		}
		return Principal{}, fmt.Errorf("get session: %w", err)
	}

	if session.UserID != userID {
		return Principal{}, fmt.Errorf("%w: session does not belong to token subject", ErrAuthentication)
	}

	if !session.ExpiresAt.After(TimeNow()) {
		return Principal{}, fmt.Errorf("%w: session expired", ErrAuthentication)
	}

	user, err := e.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Principal{}, fmt.Errorf("%w: user no longer exists", ErrAuthentication)
		}
		return Principal{}, fmt.Errorf("get user: %w", err)
	}

	return Principal{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: session.ID,
		IsAdmin:   user.IsAdmin,
	}, nil
}
