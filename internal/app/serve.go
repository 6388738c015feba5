package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/netbeans/netbeans-server/docs" // registers the OpenAPI document
	"github.com/netbeans/netbeans-server/internal/api"
	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
	"github.com/netbeans/netbeans-server/internal/core/service"
	"github.com/netbeans/netbeans-server/internal/infrastructure/db/mongo"
	redisdb "github.com/netbeans/netbeans-server/internal/infrastructure/db/redis"
	"github.com/netbeans/netbeans-server/internal/infrastructure/db/sqlstore"
	"github.com/netbeans/netbeans-server/internal/infrastructure/mail"
	"github.com/netbeans/netbeans-server/internal/infrastructure/queue"
	"github.com/netbeans/netbeans-server/internal/infrastructure/storage"
	"github.com/netbeans/netbeans-server/internal/pkg/config"
	"github.com/netbeans/netbeans-server/internal/pkg/token"
)

const (
	shutdownTimeout  = 15 * time.Second
	uploadBodyMargin = 1 << 20
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, log)
	},
}

// serve wires every component, runs the HTTP server and blocks until ctx is
// cancelled, then drains HTTP requests and queued mail.
func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET is not set: logins will fail until it is configured")
	}

	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = sqlstore.Close(db) }()

	checks := map[string]func(context.Context) error{
		"sql": func(ctx context.Context) error { return sqlstore.Ping(ctx, db) },
	}

	var dedup ports.NotificationDedup
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		dedup = redisdb.NewDedupChecker(rdb, cfg.Redis.DedupTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("notification de-duplication enabled")
	}

	var audit ports.AuditLog
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		repo := mongo.NewAuditRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("audit indexes not created")
		}
		audit = repo
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	resumes, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		return err
	}

	sender := mail.NewSMTPSender(mail.Config{
		Host:               cfg.SMTP.Host,
		Port:               cfg.SMTP.Port,
		Secure:             cfg.SMTP.Secure,
		User:               cfg.SMTP.User,
		Pass:               cfg.SMTP.Pass,
		InsecureSkipVerify: cfg.SMTP.InsecureSkipVerify,
		From:               cfg.Mail.From,
		Timeout:            cfg.Mail.SendTimeout,
	})
	dispatcher := queue.NewMailDispatcher(queue.Config{
		Workers:     cfg.Mail.Workers,
		QueueSize:   cfg.Mail.QueueSize,
		SendTimeout: cfg.Mail.SendTimeout,
	}, sender, dedup, audit, log.With().Str("component", "mail").Logger())
	// Workers outlive ctx so queued mail can drain during shutdown.
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	codec := token.NewCodec(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	userRepo := sqlstore.NewUserRepository(db)

	router := api.NewRouter(api.Deps{
		Auth:  service.NewAuthService(userRepo, codec, log),
		Users: service.NewUserService(userRepo, audit, log),
		Jobs:  service.NewJobService(sqlstore.NewJobRepository(db), audit, domain.JobMutatorRoles(cfg.SuperAdminPrivileged), log),
		Forms: service.NewFormService(service.FormRepositories{
			Contacts:      sqlstore.NewContactRepository(db),
			Consultations: sqlstore.NewConsultationRepository(db),
			Applications:  sqlstore.NewApplicationRepository(db),
		}, resumes, audit, log),
		Notifier: service.NewMailNotifier(dispatcher, resumes, service.NotifierConfig{
			From:  cfg.Mail.From,
			Admin: cfg.AdminRecipient(),
		}, log),
		Tokens:       codec,
		HealthChecks: checks,
		Log:          log,
	}, api.Options{
		AuthBasePath:         cfg.AuthBasePath,
		APIBasePath:          cfg.APIBasePath,
		SuperAdminPrivileged: cfg.SuperAdminPrivileged,
		MaxBodyBytes:         cfg.Upload.MaxBytes + uploadBodyMargin,
		Metrics:              cfg.MetricsEnabled,
		Docs:                 cfg.DocsEnabled,
		CORSOrigins:          cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("mail queue not fully drained")
	}
	log.Info().Msg("server stopped")
	return nil
}
