package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
	"github.com/netbeans/netbeans-server/internal/pkg/password"
)

var admin = domain.Identity{ID: "admin-1", Role: domain.RoleAdmin}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit, zerolog.Nop())

	u, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
		FullName: "Jane", Email: "jane@example.com", Password: "pass123", Role: "admin",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("expected role normalised to ADMIN, got %s", u.Role)
	}
	if u.CreatedByAdminID == nil || *u.CreatedByAdminID != admin.ID {
		t.Fatalf("expected created_by_admin_id %q, got %v", admin.ID, u.CreatedByAdminID)
	}
	if !password.Compare("pass123", u.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if got := audit.actions(); len(got) != 1 || got[0] != domain.AuditUserCreated {
		t.Fatalf("unexpected audit trail: %v", got)
	}
}

func TestUserService_Create_DefaultRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	u, err := svc.Create(context.Background(), admin, ports.CreateUserInput{FullName: "J", Email: "j@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.Role != domain.RoleJobManager {
		t.Fatalf("expected JOB_MANAGER default, got %s", u.Role)
	}
}

func TestUserService_Create_RejectsRoles(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	for _, role := range []string{"SUPERADMIN", "superadmin", "root", "ADMINISTRATOR"} {
		_, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
			FullName: "X", Email: role + "@example.com", Password: "p", Role: role,
		})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("role %q: expected validation error, got %v", role, err)
		}
		if ve.Msg != "role must be one of: ADMIN, JOB_MANAGER" {
			t.Fatalf("unexpected message: %s", ve.Msg)
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "taken@example.com", Role: domain.RoleAdmin})
	svc := NewUserService(repo, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), admin, ports.CreateUserInput{FullName: "X", Email: "taken@example.com", Password: "p"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Create_RequiresIdentityAndFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.Identity{}, ports.CreateUserInput{}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	var ve *domain.ValidationError
	if _, err := svc.Create(context.Background(), admin, ports.CreateUserInput{Email: "x@example.com"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "jm", Email: "jm@example.com", Role: domain.RoleJobManager},
		&domain.User{ID: "root", Email: "root@example.com", Role: domain.RoleSuperAdmin},
	)
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit, zerolog.Nop())
	ctx := context.Background()

	u, err := svc.UpdateRole(ctx, admin, "jm", "admin")
	if err != nil || u.Role != domain.RoleAdmin {
		t.Fatalf("UpdateRole: %v %+v", err, u)
	}
	if got := audit.events[0].Detail["from"]; got != "JOB_MANAGER" {
		t.Fatalf("expected audit detail from=JOB_MANAGER, got %q", got)
	}

	if _, err := svc.UpdateRole(ctx, admin, "jm", "SUPERADMIN"); err == nil {
		t.Fatalf("expected SUPERADMIN assignment to be rejected")
	}
	if _, err := svc.UpdateRole(ctx, admin, "jm", " "); err == nil {
		t.Fatalf("expected blank role to be rejected")
	}
	if _, err := svc.UpdateRole(ctx, admin, "root", "ADMIN"); !errors.Is(err, domain.ErrSuperAdminImmutable) {
		t.Fatalf("expected ErrSuperAdminImmutable, got %v", err)
	}
	if _, err := svc.UpdateRole(ctx, admin, "missing", "ADMIN"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_SuperAdminAlwaysProtected(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "root", Email: "root@example.com", Role: domain.RoleSuperAdmin})
	svc := NewUserService(repo, nil, zerolog.Nop())

	for _, actor := range []domain.Identity{
		admin,
		{ID: "root", Role: domain.RoleSuperAdmin},
		{ID: "other", Role: domain.RoleSuperAdmin},
	} {
		err := svc.Delete(context.Background(), actor, "root")
		if !errors.Is(err, domain.ErrSuperAdminProtected) || !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("actor %s: expected protected forbidden error, got %v", actor.Role, err)
		}
	}
	if _, ok := repo.users["root"]; !ok {
		t.Fatalf("SUPERADMIN row was deleted")
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "jm", Email: "jm@example.com", Role: domain.RoleJobManager})
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit, zerolog.Nop())

	if err := svc.Delete(context.Background(), admin, "jm"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), admin, "jm"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != domain.AuditUserDeleted {
		t.Fatalf("unexpected audit trail: %v", got)
	}
}

func TestUserService_AuditFailureIsNotFatal(t *testing.T) {
	audit := &recordingAudit{err: errors.New("mongo down")}
	svc := NewUserService(newStubUserRepo(), audit, zerolog.Nop())

	if _, err := svc.Create(context.Background(), admin, ports.CreateUserInput{FullName: "X", Email: "x@example.com", Password: "p"}); err != nil {
		t.Fatalf("audit failure leaked into Create: %v", err)
	}
}

func TestUserService_Seed_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	in := SeedInput{FullName: "Root", Email: "root@example.com", Password: "pw", Role: domain.RoleSuperAdmin}

	first, created, err := svc.Seed(context.Background(), in)
	if err != nil || !created {
		t.Fatalf("first seed: created=%v err=%v", created, err)
	}
	if first.Role != domain.RoleSuperAdmin || first.CreatedByAdminID != nil {
		t.Fatalf("unexpected seeded user: %+v", first)
	}

	second, created, err := svc.Seed(context.Background(), in)
	if err != nil || created {
		t.Fatalf("second seed: created=%v err=%v", created, err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing account to be returned")
	}

	if _, _, err := svc.Seed(context.Background(), SeedInput{Email: "x@example.com", Password: "p", Role: domain.RoleJobManager}); err == nil {
		t.Fatalf("expected JOB_MANAGER seed to be rejected")
	}
}
