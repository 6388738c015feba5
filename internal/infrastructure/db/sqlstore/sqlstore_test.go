package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(context.Background(), Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	u := &domain.User{
		FullName:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	t.Run("duplicate email", func(t *testing.T) {
		dup := &domain.User{FullName: "Other", Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleJobManager, CreatedAt: time.Now()}
		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailTaken)
	})

	t.Run("find by email and id", func(t *testing.T) {
		byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
		assert.Equal(t, "hash", byEmail.PasswordHash)

		byID, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, byID.Role)

		_, err = repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("update role", func(t *testing.T) {
		updated, err := repo.UpdateRole(ctx, u.ID, domain.RoleJobManager)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleJobManager, updated.Role)

		_, err = repo.UpdateRole(ctx, "missing", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		later := &domain.User{FullName: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: domain.RoleJobManager, CreatedAt: time.Now().UTC().Add(time.Minute)}
		require.NoError(t, repo.Create(ctx, later))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "bob@example.com", users[0].Email)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, u.ID))
		assert.ErrorIs(t, repo.Delete(ctx, u.ID), domain.ErrUserNotFound)
	})
}

func newJob(title string, active bool, postedAt time.Time) *domain.Job {
	return &domain.Job{
		Title:          title,
		Description:    title + " role description",
		Location:       "Remote",
		Type:           "Full-time",
		IsActive:       active,
		PostedByUserID: "user-1",
		PostedAt:       postedAt,
	}
}

func TestJobRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository(setupTestDB(t))
	base := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newJob("Go Engineer", true, base)))
	require.NoError(t, repo.Create(ctx, newJob("Designer", true, base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, newJob("Go Intern", false, base.Add(2*time.Minute))))

	all, err := repo.List(ctx, ports.JobFilter{Page: ports.Page{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Go Intern", all[0].Title)

	active, err := repo.List(ctx, ports.JobFilter{OnlyActive: true, Page: ports.Page{Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	search, err := repo.List(ctx, ports.JobFilter{Search: "GO", Page: ports.Page{Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	paged, err := repo.List(ctx, ports.JobFilter{Page: ports.Page{Limit: 1, Offset: 1}})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Designer", paged[0].Title)
}

func TestJobRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository(setupTestDB(t))

	dept := "Engineering"
	job := newJob("Go Engineer", true, time.Now().UTC())
	job.Department = &dept
	require.NoError(t, repo.Create(ctx, job))

	title := "Senior Go Engineer"
	empty := ""
	inactive := false
	updated, err := repo.Update(ctx, job.ID, ports.JobUpdate{Title: &title, Department: &empty, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", updated.Title)
	assert.Nil(t, updated.Department)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Remote", updated.Location)

	_, err = repo.Update(ctx, "missing", ports.JobUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	require.NoError(t, repo.Delete(ctx, job.ID))
	_, err = repo.FindByID(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, job.ID), domain.ErrJobNotFound)
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(setupTestDB(t))

	c := &domain.Contact{Name: "Ann", Email: "ann@example.com", Message: "Hello", SubmittedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEmpty(t, c.ID)

	read, err := repo.MarkRead(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	_, err = repo.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)

	list, err := repo.List(ctx, ports.Page{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrSubmissionNotFound)
}

func TestConsultationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewConsultationRepository(setupTestDB(t))

	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	c := &domain.Consultation{
		FullName:         "Ben",
		Email:            "ben@example.com",
		ConsultationType: "Web Development",
		PreferredDate:    &date,
		ProjectMessage:   "Need a site",
		SubmittedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.MarkContacted(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.IsContacted)
	require.NotNil(t, got.PreferredDate)
	assert.Equal(t, "2026-11-02", got.PreferredDate.Format(time.DateOnly))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}

func TestApplicationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(setupTestDB(t))

	years := 3.5
	a := &domain.Application{
		FullName:            "Cara",
		Email:               "cara@example.com",
		PositionApplyingFor: "Go Engineer",
		YearsExperience:     &years,
		ResumePath:          "abc.pdf",
		ResumeFileName:      "cv.pdf",
		ResumeContentType:   "application/pdf",
		ResumeUploadedAt:    time.Now().UTC(),
		Declaration:         true,
		SubmittedAt:         time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.YearsExperience)
	assert.InDelta(t, 3.5, *got.YearsExperience, 0.001)
	assert.Nil(t, got.LastCTC)
	assert.Equal(t, "abc.pdf", got.ResumePath)

	list, err := repo.List(ctx, ports.Page{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}
