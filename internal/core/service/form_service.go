package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// FormService stores public form submissions and serves them to admins.
type FormService struct {
	contacts      ports.ContactRepository
	consultations ports.ConsultationRepository
	applications  ports.ApplicationRepository
	resumes       ports.ResumeStore
	audit         ports.AuditLog
	log           zerolog.Logger
	now           func() time.Time
}

// FormRepositories groups the submission stores.
type FormRepositories struct {
	Contacts      ports.ContactRepository
	Consultations ports.ConsultationRepository
	Applications  ports.ApplicationRepository
}

func NewFormService(repos FormRepositories, resumes ports.ResumeStore, audit ports.AuditLog, log zerolog.Logger) *FormService {
	return &FormService{
		contacts:      repos.Contacts,
		consultations: repos.Consultations,
		applications:  repos.Applications,
		resumes:       resumes,
		audit:         audit,
		log:           log,
		now:           time.Now,
	}
}

// ── Public submissions ────────────────────────────────────────────────────────

func (s *FormService) SubmitContact(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, domain.Invalid("name, email and message are required")
	}
	c := &domain.Contact{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       nonEmpty(in.Phone),
		Message:     in.Message,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	s.log.Info().Str("contact_id", c.ID).Msg("contact form stored")
	return c, nil
}

func (s *FormService) SubmitConsultation(ctx context.Context, in ports.ConsultationInput) (*domain.Consultation, error) {
	if in.FullName == "" || in.Email == "" || in.ConsultationType == "" || in.ProjectMessage == "" {
		return nil, domain.Invalid("Required fields missing")
	}
	c := &domain.Consultation{
		FullName:         in.FullName,
		Email:            in.Email,
		Phone:            nonEmpty(in.Phone),
		ConsultationType: in.ConsultationType,
		OtherTypeDetails: nonEmpty(in.OtherTypeDetails),
		PreferredDate:    in.PreferredDate,
		MeetingMode:      nonEmpty(in.MeetingMode),
		ProjectMessage:   in.ProjectMessage,
		SubmittedAt:      s.now().UTC(),
	}
	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("submit consultation: %w", err)
	}
	s.log.Info().Str("consultation_id", c.ID).Msg("consultation request stored")
	return c, nil
}

// SubmitApplication validates the form, stores the resume and persists the
// application. The stored resume is removed again if persistence fails.
func (s *FormService) SubmitApplication(ctx context.Context, in ports.ApplicationInput) (*domain.Application, error) {
	if in.FullName == "" || in.Email == "" || in.PositionApplyingFor == "" {
		return nil, domain.Invalid("full_name, email & position_applying_for are required")
	}
	if in.Resume == nil || in.Resume.Reader == nil {
		return nil, domain.Invalid("Resume file is required")
	}
	if !IsAccepted(in.Declaration) {
		return nil, domain.Invalid("You must accept the declaration")
	}

	stored, err := s.resumes.Save(ctx, in.Resume.Name, in.Resume.Reader)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &domain.Application{
		FullName:             in.FullName,
		Email:                in.Email,
		Phone:                nonEmpty(in.Phone),
		CurrentCity:          nonEmpty(in.CurrentCity),
		PositionApplyingFor:  in.PositionApplyingFor,
		HighestQualification: nonEmpty(in.HighestQualification),
		IsFresher:            in.IsFresher == "true",
		CompanyName:          nonEmpty(in.CompanyName),
		Designation:          nonEmpty(in.Designation),
		YearsExperience:      CleanNumber(in.YearsExperience),
		LastCTC:              CleanNumber(in.LastCTC),
		ExpectedCTC:          CleanNumber(in.ExpectedCTC),
		LinkedInURL:          nonEmpty(in.LinkedInURL),
		PortfolioURL:         nonEmpty(in.PortfolioURL),
		ResumePath:           stored.Path,
		ResumeFileName:       stored.OriginalName,
		ResumeContentType:    stored.ContentType,
		ResumeUploadedAt:     now,
		Declaration:          true,
		Notes:                nonEmpty(in.Notes),
		SubmittedAt:          now,
	}
	if err := s.applications.Create(ctx, a); err != nil {
		if rmErr := s.resumes.Remove(ctx, stored.Path); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("path", stored.Path).Msg("failed to remove orphaned resume")
		}
		return nil, fmt.Errorf("submit application: %w", err)
	}

	s.log.Info().Str("application_id", a.ID).Str("position", a.PositionApplyingFor).Msg("job application stored")
	return a, nil
}

// IsAccepted reports whether a checkbox-style form value means yes.
func IsAccepted(v string) bool {
	return v == "true" || v == "on"
}

// CleanNumber parses a numeric form field. Blank, placeholder and
// non-numeric values yield nil.
func CleanNumber(raw string) *float64 {
	v := strings.TrimSpace(raw)
	switch v {
	case "", "NA", "null", "undefined":
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ── Contacts ──────────────────────────────────────────────────────────────────

func (s *FormService) ListContacts(ctx context.Context, page ports.Page) ([]*domain.Contact, error) {
	return s.contacts.List(ctx, page)
}

func (s *FormService) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.FindByID(ctx, id)
}

func (s *FormService) MarkContactRead(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.MarkRead(ctx, id)
}

func (s *FormService) DeleteContact(ctx context.Context, actor domain.Identity, id string) error {
	if actor.IsZero() {
		return domain.ErrUnauthenticated
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}
	s.auditDeletion(ctx, actor, domain.FormContact, id)
	return nil
}

// ── Consultations ─────────────────────────────────────────────────────────────

func (s *FormService) ListConsultations(ctx context.Context, page ports.Page) ([]*domain.Consultation, error) {
	return s.consultations.List(ctx, page)
}

func (s *FormService) GetConsultation(ctx context.Context, id string) (*domain.Consultation, error) {
	return s.consultations.FindByID(ctx, id)
}

func (s *FormService) MarkConsultationContacted(ctx context.Context, id string) (*domain.Consultation, error) {
	return s.consultations.MarkContacted(ctx, id)
}

func (s *FormService) DeleteConsultation(ctx context.Context, actor domain.Identity, id string) error {
	if actor.IsZero() {
		return domain.ErrUnauthenticated
	}
	if err := s.consultations.Delete(ctx, id); err != nil {
		return err
	}
	s.auditDeletion(ctx, actor, domain.FormConsultation, id)
	return nil
}

// ── Applications ──────────────────────────────────────────────────────────────

func (s *FormService) ListApplications(ctx context.Context, page ports.Page) ([]*domain.Application, error) {
	return s.applications.List(ctx, page)
}

func (s *FormService) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	return s.applications.FindByID(ctx, id)
}

func (s *FormService) ApplicationResume(ctx context.Context, id string) (*ports.ResumeDownload, error) {
	a, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := s.resumes.Resolve(a.ResumePath)
	if err != nil {
		return nil, err
	}
	return &ports.ResumeDownload{Path: path, FileName: a.ResumeFileName, ContentType: a.ResumeContentType}, nil
}

// DeleteApplication removes the record, then its resume. A resume that
// cannot be removed is only logged.
func (s *FormService) DeleteApplication(ctx context.Context, actor domain.Identity, id string) error {
	if actor.IsZero() {
		return domain.ErrUnauthenticated
	}
	a, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return err
	}
	if a.ResumePath != "" {
		if err := s.resumes.Remove(ctx, a.ResumePath); err != nil {
			s.log.Warn().Err(err).Str("application_id", id).Msg("failed to remove resume file")
		}
	}
	s.auditDeletion(ctx, actor, domain.FormApplication, id)
	return nil
}

func (s *FormService) auditDeletion(ctx context.Context, actor domain.Identity, kind domain.FormKind, id string) {
	ev := actorEvent(domain.AuditSubmissionDeleted, actor, string(kind), id)
	recordAudit(ctx, s.audit, s.log, ev)
}
