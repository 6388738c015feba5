package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// JobRepository implements ports.JobRepository.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	row := jobRow{
		ID:               uuid.NewString(),
		Title:            j.Title,
		Description:      j.Description,
		ShortDescription: j.ShortDescription,
		Location:         j.Location,
		Department:       j.Department,
		Type:             j.Type,
		IsActive:         j.IsActive,
		PostedByUserID:   j.PostedByUserID,
		PostedAt:         j.PostedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	j.ID = row.ID
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var row jobRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrJobNotFound)
	}
	return row.toDomain(), nil
}

// List returns postings newest first. Search matches title, short and full
// description case-insensitively.
func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	q := r.db.WithContext(ctx).Model(&jobRow{})
	if filter.OnlyActive {
		q = q.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}

	var rows []jobRow
	err := paginate(q.Order("posted_at DESC"), filter.Page).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]*domain.Job, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *JobRepository) Update(ctx context.Context, id string, upd ports.JobUpdate) (*domain.Job, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	setString := func(col string, v *string) {
		if v != nil {
			changes[col] = *v
		}
	}
	setNullable := func(col string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			changes[col] = gorm.Expr("NULL")
			return
		}
		changes[col] = *v
	}
	setString("title", upd.Title)
	setString("description", upd.Description)
	setNullable("short_description", upd.ShortDescription)
	setString("location", upd.Location)
	setNullable("department", upd.Department)
	setString("type", upd.Type)
	if upd.IsActive != nil {
		changes["is_active"] = *upd.IsActive
	}

	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).Model(&jobRow{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("update job: %w", err)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&jobRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
