package ports

import (
	"context"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

// Page carries already-clamped pagination values.
type Page struct {
	Limit  int
	Offset int
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists u and fills in its ID. Returns domain.ErrEmailTaken on
	// a duplicate email.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// JobFilter carries the list query for job postings.
type JobFilter struct {
	OnlyActive bool
	Search     string // case-insensitive substring of title or descriptions
	Page
}

// JobUpdate holds the fields of a partial job update. Nil means unchanged.
// An empty ShortDescription or Department clears the column.
type JobUpdate struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Location         *string
	Department       *string
	Type             *string
	IsActive         *bool
}

// IsEmpty reports whether the update carries no fields.
func (u JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.ShortDescription == nil &&
		u.Location == nil && u.Department == nil && u.Type == nil && u.IsActive == nil
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	Update(ctx context.Context, id string, upd JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, page Page) ([]*domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.Consultation) error
	FindByID(ctx context.Context, id string) (*domain.Consultation, error)
	List(ctx context.Context, page Page) ([]*domain.Consultation, error)
	MarkContacted(ctx context.Context, id string) (*domain.Consultation, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, page Page) ([]*domain.Application, error)
	Delete(ctx context.Context, id string) error
}
