package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// JobService manages job postings. Mutations re-check the caller's role
// even though the route is already gated.
type JobService struct {
	jobs     ports.JobRepository
	audit    ports.AuditLog
	mutators []domain.Role
	log      zerolog.Logger
	now      func() time.Time
}

func NewJobService(jobs ports.JobRepository, audit ports.AuditLog, mutators []domain.Role, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, audit: audit, mutators: mutators, log: log, now: time.Now}
}

func (s *JobService) authorize(actor domain.Identity) error {
	if actor.IsZero() {
		return domain.ErrUnauthenticated
	}
	if !actor.HasAnyRole(s.mutators...) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *JobService) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.jobs.List(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, actor domain.Identity, in ports.CreateJobInput) (*domain.Job, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if in.Title == "" || in.Description == "" || in.Location == "" || in.Type == "" {
		return nil, domain.Invalid("title, description, location and type are required")
	}

	job := &domain.Job{
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: nonEmpty(in.ShortDescription),
		Location:         in.Location,
		Department:       nonEmpty(in.Department),
		Type:             in.Type,
		IsActive:         true,
		PostedByUserID:   actor.ID,
		PostedAt:         s.now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, actorEvent(domain.AuditJobCreated, actor, "job", job.ID))
	return job, nil
}

func (s *JobService) Update(ctx context.Context, actor domain.Identity, id string, upd ports.JobUpdate) (*domain.Job, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, domain.Invalid("No updatable fields provided")
	}
	for _, f := range []*string{upd.Title, upd.Description, upd.Location, upd.Type} {
		if f != nil && *f == "" {
			return nil, domain.Invalid("title, description, location and type cannot be empty")
		}
	}

	job, err := s.jobs.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, actorEvent(domain.AuditJobUpdated, actor, "job", id))
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}

	recordAudit(ctx, s.audit, s.log, actorEvent(domain.AuditJobDeleted, actor, "job", id))
	return nil
}

// nonEmpty maps an empty optional string to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
