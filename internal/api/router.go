package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/netbeans/netbeans-server/internal/api/handler"
	"github.com/netbeans/netbeans-server/internal/api/middleware"
	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

const defaultBodyLimit = 6 << 20

// Deps carries everything the router needs to build the handler graph.
type Deps struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Jobs     ports.JobService
	Forms    ports.FormService
	Notifier ports.Notifier
	Tokens   ports.TokenVerifier

	// HealthChecks are probed by /health/ready, keyed by dependency name.
	HealthChecks map[string]func(ctx context.Context) error

	Log zerolog.Logger
}

// Options controls mount points and optional surfaces.
type Options struct {
	AuthBasePath string
	APIBasePath  string

	// SuperAdminPrivileged adds SUPERADMIN to the admin and job-mutator gates.
	SuperAdminPrivileged bool

	// MaxBodyBytes caps request bodies; it must leave room for a resume upload.
	MaxBodyBytes int64

	// Metrics registers the HTTP metrics middleware and /metrics on the
	// default Prometheus registry.
	Metrics bool
	Docs    bool

	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	if opts.AuthBasePath == "" {
		opts.AuthBasePath = "/auth"
	}
	if opts.APIBasePath == "" {
		opts.APIBasePath = "/api"
	}
	bodyLimit := opts.MaxBodyBytes
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dB", bodyLimit)))
	if len(opts.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: opts.CORSOrigins}))
	} else {
		e.Use(echomiddleware.CORS())
	}
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace: "netbeans",
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if opts.Docs {
		e.GET("/api-docs/*", echoSwagger.WrapHandler)
	}

	authGate := middleware.Auth(deps.Tokens)
	adminGate := middleware.RequireRoles(domain.AdminRoles(opts.SuperAdminPrivileged)...)
	mutatorGate := middleware.RequireRoles(domain.JobMutatorRoles(opts.SuperAdminPrivileged)...)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group(opts.AuthBasePath)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authGate)

	api := e.Group(opts.APIBasePath)

	// --- Users (admin only) ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := api.Group("/users", authGate, adminGate)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id/role", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Jobs ---
	jobHandler := handler.NewJobHandler(deps.Jobs)
	jobs := api.Group("/jobs", authGate)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, mutatorGate)
	jobs.PATCH("/:id", jobHandler.Update, mutatorGate)
	jobs.DELETE("/:id", jobHandler.Delete, mutatorGate)

	// --- Forms: public submissions, admin review ---
	formHandler := handler.NewFormHandler(deps.Forms, deps.Notifier)
	formAdmin := handler.NewFormAdminHandler(deps.Forms)
	forms := api.Group("/forms")
	forms.POST("/contact", formHandler.SubmitContact)
	forms.POST("/consultation", formHandler.SubmitConsultation)
	forms.POST("/job-application", formHandler.SubmitApplication)

	admin := forms.Group("", authGate, adminGate)
	admin.GET("/contact", formAdmin.ListContacts)
	admin.GET("/contact/:id", formAdmin.GetContact)
	admin.PATCH("/contact/:id/read", formAdmin.MarkContactRead)
	admin.DELETE("/contact/:id", formAdmin.DeleteContact)

	admin.GET("/consultation", formAdmin.ListConsultations)
	admin.GET("/consultation/:id", formAdmin.GetConsultation)
	admin.PATCH("/consultation/:id/read", formAdmin.MarkConsultationContacted)
	admin.DELETE("/consultation/:id", formAdmin.DeleteConsultation)

	admin.GET("/job-applications", formAdmin.ListApplications)
	admin.GET("/job-applications/:id", formAdmin.GetApplication)
	admin.GET("/job-applications/:id/resume", formAdmin.DownloadResume)
	admin.DELETE("/job-applications/:id", formAdmin.DeleteApplication)

	return e
}
