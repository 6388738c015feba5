package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
	"github.com/netbeans/netbeans-server/internal/pkg/password"
)

// AuthService implements login and identity lookup.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, plain string) (*ports.LoginResult, error) {
	if email == "" || plain == "" {
		return nil, domain.Invalid("email and password required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !password.Compare(plain, user.PasswordHash) {
		s.log.Info().Str("user_id", user.ID).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(domain.Identity{ID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")

	return &ports.LoginResult{
		Token:     token,
		ExpiresIn: s.tokens.TTL(),
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Me returns the account behind the caller's token.
func (s *AuthService) Me(ctx context.Context, actor domain.Identity) (*domain.User, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.FindByID(ctx, actor.ID)
}
