package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
	"github.com/netbeans/netbeans-server/internal/pkg/password"
)

// UserService administers back-office accounts.
type UserService struct {
	users ports.UserRepository
	audit ports.AuditLog
	log   zerolog.Logger
	now   func() time.Time
}

func NewUserService(users ports.UserRepository, audit ports.AuditLog, log zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, log: log, now: time.Now}
}

func roleEnumError() error {
	names := make([]string, len(domain.AssignableRoles))
	for i, r := range domain.AssignableRoles {
		names[i] = string(r)
	}
	return domain.Invalid("role must be one of: %s", strings.Join(names, ", "))
}

func (s *UserService) Create(ctx context.Context, actor domain.Identity, in ports.CreateUserInput) (*domain.User, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.Invalid("full_name, email and password are required")
	}
	role, ok := domain.ParseAssignableRole(in.Role)
	if !ok {
		return nil, roleEnumError()
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	creator := actor.ID
	user := &domain.User{
		FullName:         in.FullName,
		Email:            in.Email,
		PasswordHash:     hash,
		Role:             role,
		CreatedAt:        s.now().UTC(),
		CreatedByAdminID: &creator,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, actorEvent(domain.AuditUserCreated, actor, "user", user.ID))
	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Str("by", actor.ID).Msg("user created")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateRole assigns one of the assignable roles. A SUPERADMIN account is
// never re-assigned.
func (s *UserService) UpdateRole(ctx context.Context, actor domain.Identity, id, raw string) (*domain.User, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.Invalid("role is required")
	}
	role, ok := domain.ParseAssignableRole(raw)
	if !ok {
		return nil, roleEnumError()
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Role == domain.RoleSuperAdmin {
		return nil, domain.ErrSuperAdminImmutable
	}

	updated, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	ev := actorEvent(domain.AuditUserRoleUpdated, actor, "user", id)
	ev.Detail = map[string]string{"from": string(target.Role), "to": string(role)}
	recordAudit(ctx, s.audit, s.log, ev)
	return updated, nil
}

// Delete removes an account. SUPERADMIN accounts are protected whatever the
// caller's role.
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if actor.IsZero() {
		return domain.ErrUnauthenticated
	}
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleSuperAdmin {
		s.log.Warn().Str("target", id).Str("by", actor.ID).Msg("attempt to delete SUPERADMIN")
		return domain.ErrSuperAdminProtected
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	recordAudit(ctx, s.audit, s.log, actorEvent(domain.AuditUserDeleted, actor, "user", id))
	return nil
}

// SeedInput describes a bootstrap account.
type SeedInput struct {
	FullName string
	Email    string
	Password string
	Role     domain.Role
}

// Seed creates a bootstrap account unless the email is already registered,
// in which case the existing account is returned and created is false.
func (s *UserService) Seed(ctx context.Context, in SeedInput) (user *domain.User, created bool, err error) {
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleSuperAdmin {
		return nil, false, domain.Invalid("seed role must be ADMIN or SUPERADMIN")
	}
	if in.Email == "" || in.Password == "" {
		return nil, false, domain.Invalid("seed email and password are required")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("seed user: %w", err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, false, fmt.Errorf("seed user: %w", err)
	}
	user = &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
