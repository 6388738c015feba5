package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// ── users ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo(seed ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range seed {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ── jobs ──────────────────────────────────────────────────────────────────────

type stubJobRepo struct {
	jobs       map[string]*domain.Job
	lastFilter ports.JobFilter
	updateFn   func(id string, upd ports.JobUpdate) (*domain.Job, error)
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	j.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	clone := *j
	r.jobs[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	r.lastFilter = filter
	return nil, nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, upd ports.JobUpdate) (*domain.Job, error) {
	if r.updateFn != nil {
		return r.updateFn(id, upd)
	}
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.IsActive != nil {
		j.IsActive = *upd.IsActive
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

// ── forms ─────────────────────────────────────────────────────────────────────

type stubContactRepo struct {
	rows    map[string]*domain.Contact
	failErr error
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	if r.failErr != nil {
		return r.failErr
	}
	c.ID = fmt.Sprintf("contact-%d", len(r.rows)+1)
	r.rows[c.ID] = c
	return nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return c, nil
}

func (r *stubContactRepo) List(context.Context, ports.Page) ([]*domain.Contact, error) {
	return nil, nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id string) (*domain.Contact, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	c.IsRead = true
	return c, nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrSubmissionNotFound
	}
	delete(r.rows, id)
	return nil
}

type stubConsultationRepo struct {
	rows map[string]*domain.Consultation
}

func (r *stubConsultationRepo) Create(_ context.Context, c *domain.Consultation) error {
	c.ID = fmt.Sprintf("consultation-%d", len(r.rows)+1)
	r.rows[c.ID] = c
	return nil
}

func (r *stubConsultationRepo) FindByID(_ context.Context, id string) (*domain.Consultation, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return c, nil
}

func (r *stubConsultationRepo) List(context.Context, ports.Page) ([]*domain.Consultation, error) {
	return nil, nil
}

func (r *stubConsultationRepo) MarkContacted(_ context.Context, id string) (*domain.Consultation, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	c.IsContacted = true
	return c, nil
}

func (r *stubConsultationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrSubmissionNotFound
	}
	delete(r.rows, id)
	return nil
}

type stubApplicationRepo struct {
	rows    map[string]*domain.Application
	failErr error
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	if r.failErr != nil {
		return r.failErr
	}
	a.ID = fmt.Sprintf("application-%d", len(r.rows)+1)
	r.rows[a.ID] = a
	return nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return a, nil
}

func (r *stubApplicationRepo) List(context.Context, ports.Page) ([]*domain.Application, error) {
	return nil, nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrSubmissionNotFound
	}
	delete(r.rows, id)
	return nil
}

// ── collaborators ─────────────────────────────────────────────────────────────

type stubResumeStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (s *stubResumeStore) Save(_ context.Context, name string, r io.Reader) (domain.StoredFile, error) {
	if s.saveErr != nil {
		return domain.StoredFile{}, s.saveErr
	}
	data, _ := io.ReadAll(r)
	path := fmt.Sprintf("stored-%d.pdf", len(s.saved)+1)
	s.saved = append(s.saved, path)
	return domain.StoredFile{Path: path, OriginalName: name, ContentType: "application/pdf", Size: int64(len(data))}, nil
}

func (s *stubResumeStore) Resolve(path string) (string, error) {
	return "/srv/uploads/" + path, nil
}

func (s *stubResumeStore) Remove(_ context.Context, path string) error {
	s.removed = append(s.removed, path)
	return nil
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (a *recordingAudit) Record(_ context.Context, ev domain.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	return a.err
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, ev := range a.events {
		out[i] = ev.Action
	}
	return out
}

type recordingQueue struct {
	msgs []domain.MailMessage
}

func (q *recordingQueue) Enqueue(msg domain.MailMessage) bool {
	q.msgs = append(q.msgs, msg)
	return true
}
