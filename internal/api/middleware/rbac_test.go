package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

func contextWithRole(e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		req = req.WithContext(domain.WithIdentity(req.Context(), domain.Identity{ID: "u1", Role: role}))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireRoles_Allows(t *testing.T) {
	e := echo.New()
	c, rec := contextWithRole(e, domain.RoleJobManager)

	called := false
	handler := RequireRoles(domain.RoleAdmin, domain.RoleJobManager)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbids(t *testing.T) {
	e := echo.New()

	for _, role := range []domain.Role{domain.RoleJobManager, domain.RoleSuperAdmin, "admin", "GUEST"} {
		c, _ := contextWithRole(e, role)
		handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
			t.Fatalf("role %s should not reach next handler", role)
			return nil
		})
		expectHTTPError(t, handler(c), http.StatusForbidden, "Forbidden")
	}
}

func TestRequireRoles_EmptyAllowListAdvances(t *testing.T) {
	e := echo.New()
	c, _ := contextWithRole(e, "ANY_ROLE")

	called := false
	handler := RequireRoles()(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("empty allow-list must advance")
	}
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	e := echo.New()
	for name, mw := range map[string]echo.MiddlewareFunc{
		"with roles": RequireRoles(domain.RoleAdmin),
		"open route": RequireRoles(),
	} {
		c, _ := contextWithRole(e, "")
		handler := mw(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next handler", name)
			return nil
		})
		expectHTTPError(t, handler(c), http.StatusUnauthorized, "Unauthorized")
	}
}
