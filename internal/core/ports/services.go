package ports

import (
	"context"
	"io"
	"time"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, actor domain.Identity) (*domain.User, error)
}

// CreateUserInput carries the fields of an admin-created account.
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Role     string // raw, normalised by the service
}

type UserService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Identity, id, role string) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}

// CreateJobInput carries the fields of a new job posting.
type CreateJobInput struct {
	Title            string
	Description      string
	ShortDescription *string
	Location         string
	Department       *string
	Type             string
}

type JobService interface {
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, actor domain.Identity, in CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, actor domain.Identity, id string, upd JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

type ConsultationInput struct {
	FullName         string
	Email            string
	Phone            *string
	ConsultationType string
	OtherTypeDetails *string
	PreferredDate    *time.Time
	MeetingMode      *string
	ProjectMessage   string
}

// UploadedFile is a resume as received from the transport layer.
type UploadedFile struct {
	Name   string
	Reader io.Reader
}

// ApplicationInput carries the raw job application form. Numeric fields
// are kept as submitted and cleaned by the service.
type ApplicationInput struct {
	FullName             string
	Email                string
	Phone                *string
	CurrentCity          *string
	PositionApplyingFor  string
	HighestQualification *string
	IsFresher            string
	CompanyName          *string
	Designation          *string
	YearsExperience      string
	LastCTC              string
	ExpectedCTC          string
	LinkedInURL          *string
	PortfolioURL         *string
	Declaration          string
	Notes                *string
	Resume               *UploadedFile
}

// ResumeDownload locates a stored resume for streaming back to an admin.
type ResumeDownload struct {
	Path        string
	FileName    string
	ContentType string
}

// FormService covers public submissions and their administration.
type FormService interface {
	SubmitContact(ctx context.Context, in ContactInput) (*domain.Contact, error)
	SubmitConsultation(ctx context.Context, in ConsultationInput) (*domain.Consultation, error)
	SubmitApplication(ctx context.Context, in ApplicationInput) (*domain.Application, error)

	ListContacts(ctx context.Context, page Page) ([]*domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	MarkContactRead(ctx context.Context, id string) (*domain.Contact, error)
	DeleteContact(ctx context.Context, actor domain.Identity, id string) error

	ListConsultations(ctx context.Context, page Page) ([]*domain.Consultation, error)
	GetConsultation(ctx context.Context, id string) (*domain.Consultation, error)
	MarkConsultationContacted(ctx context.Context, id string) (*domain.Consultation, error)
	DeleteConsultation(ctx context.Context, actor domain.Identity, id string) error

	ListApplications(ctx context.Context, page Page) ([]*domain.Application, error)
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	ApplicationResume(ctx context.Context, id string) (*ResumeDownload, error)
	DeleteApplication(ctx context.Context, actor domain.Identity, id string) error
}

// Notifier turns stored submissions into background mail. Its methods
// return immediately.
type Notifier interface {
	ContactSubmitted(c *domain.Contact)
	ConsultationSubmitted(c *domain.Consultation)
	ApplicationSubmitted(a *domain.Application)
}
