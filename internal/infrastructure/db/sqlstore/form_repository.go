package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// deleteByID removes a submission row, reporting ErrSubmissionNotFound when
// nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	res := db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// setFlag sets a boolean column on an existing submission row.
func setFlag(ctx context.Context, db *gorm.DB, model any, id, column string) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Update(column, true)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", column, res.Error)
	}
	return nil
}

// ── Contacts ──────────────────────────────────────────────────────────────────

// ContactRepository implements ports.ContactRepository.
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	row := contactRow{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Message:     c.Message,
		IsRead:      c.IsRead,
		SubmittedAt: c.SubmittedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	c.ID = row.ID
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var row contactRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrSubmissionNotFound)
	}
	return row.toDomain(), nil
}

func (r *ContactRepository) List(ctx context.Context, page ports.Page) ([]*domain.Contact, error) {
	var rows []contactRow
	err := paginate(r.db.WithContext(ctx).Order("submitted_at DESC"), page).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	out := make([]*domain.Contact, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *ContactRepository) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := setFlag(ctx, r.db, &contactRow{}, id, "is_read"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &contactRow{}, id)
}

// ── Consultations ─────────────────────────────────────────────────────────────

// ConsultationRepository implements ports.ConsultationRepository.
type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *domain.Consultation) error {
	row := consultationRow{
		ID:               uuid.NewString(),
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		ConsultationType: c.ConsultationType,
		OtherTypeDetails: c.OtherTypeDetails,
		PreferredDate:    c.PreferredDate,
		MeetingMode:      c.MeetingMode,
		ProjectMessage:   c.ProjectMessage,
		IsContacted:      c.IsContacted,
		SubmittedAt:      c.SubmittedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create consultation: %w", err)
	}
	c.ID = row.ID
	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*domain.Consultation, error) {
	var row consultationRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrSubmissionNotFound)
	}
	return row.toDomain(), nil
}

func (r *ConsultationRepository) List(ctx context.Context, page ports.Page) ([]*domain.Consultation, error) {
	var rows []consultationRow
	err := paginate(r.db.WithContext(ctx).Order("submitted_at DESC"), page).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	out := make([]*domain.Consultation, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *ConsultationRepository) MarkContacted(ctx context.Context, id string) (*domain.Consultation, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := setFlag(ctx, r.db, &consultationRow{}, id, "is_contacted"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &consultationRow{}, id)
}

// ── Applications ──────────────────────────────────────────────────────────────

// ApplicationRepository implements ports.ApplicationRepository.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	row := applicationRow{
		ID:                   uuid.NewString(),
		FullName:             a.FullName,
		Email:                a.Email,
		Phone:                a.Phone,
		CurrentCity:          a.CurrentCity,
		PositionApplyingFor:  a.PositionApplyingFor,
		HighestQualification: a.HighestQualification,
		IsFresher:            a.IsFresher,
		CompanyName:          a.CompanyName,
		Designation:          a.Designation,
		YearsExperience:      a.YearsExperience,
		LastCTC:              a.LastCTC,
		ExpectedCTC:          a.ExpectedCTC,
		LinkedInURL:          a.LinkedInURL,
		PortfolioURL:         a.PortfolioURL,
		ResumePath:           a.ResumePath,
		ResumeFileName:       a.ResumeFileName,
		ResumeContentType:    a.ResumeContentType,
		ResumeUploadedAt:     a.ResumeUploadedAt,
		Declaration:          a.Declaration,
		Notes:                a.Notes,
		SubmittedAt:          a.SubmittedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	a.ID = row.ID
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	var row applicationRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrSubmissionNotFound)
	}
	return row.toDomain(), nil
}

func (r *ApplicationRepository) List(ctx context.Context, page ports.Page) ([]*domain.Application, error) {
	var rows []applicationRow
	err := paginate(r.db.WithContext(ctx).Order("submitted_at DESC"), page).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]*domain.Application, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &applicationRow{}, id)
}
