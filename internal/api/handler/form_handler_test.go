package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

type stubFormService struct {
	ports.FormService
	contactFn      func(ctx context.Context, in ports.ContactInput) (*domain.Contact, error)
	consultationFn func(ctx context.Context, in ports.ConsultationInput) (*domain.Consultation, error)
	applicationFn  func(ctx context.Context, in ports.ApplicationInput) (*domain.Application, error)
	listContactsFn func(ctx context.Context, page ports.Page) ([]*domain.Contact, error)
	resumeFn       func(ctx context.Context, id string) (*ports.ResumeDownload, error)
}

func (s *stubFormService) SubmitContact(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
	return s.contactFn(ctx, in)
}

func (s *stubFormService) SubmitConsultation(ctx context.Context, in ports.ConsultationInput) (*domain.Consultation, error) {
	return s.consultationFn(ctx, in)
}

func (s *stubFormService) SubmitApplication(ctx context.Context, in ports.ApplicationInput) (*domain.Application, error) {
	return s.applicationFn(ctx, in)
}

func (s *stubFormService) ListContacts(ctx context.Context, page ports.Page) ([]*domain.Contact, error) {
	return s.listContactsFn(ctx, page)
}

func (s *stubFormService) ApplicationResume(ctx context.Context, id string) (*ports.ResumeDownload, error) {
	return s.resumeFn(ctx, id)
}

// orderingNotifier records whether the response had been written when a
// notification arrived.
type orderingNotifier struct {
	rec          *httptest.ResponseRecorder
	calls        int
	bodyAtNotify string
}

func (n *orderingNotifier) ContactSubmitted(*domain.Contact) {
	n.calls++
	n.bodyAtNotify = n.rec.Body.String()
}

func (n *orderingNotifier) ConsultationSubmitted(*domain.Consultation) {
	n.calls++
	n.bodyAtNotify = n.rec.Body.String()
}

func (n *orderingNotifier) ApplicationSubmitted(*domain.Application) {
	n.calls++
	n.bodyAtNotify = n.rec.Body.String()
}

func TestFormHandler_SubmitContact_NotifiesAfterResponse(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubFormService{
		contactFn: func(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
			return &domain.Contact{ID: "c1", Name: in.Name, Email: in.Email, Message: in.Message}, nil
		},
	}
	c, rec := newJSONContext(e, http.MethodPost, "/api/forms/contact",
		`{"name":"Ravi","email":"ravi@example.com","message":"Hello"}`)
	notifier := &orderingNotifier{rec: rec}

	if err := NewFormHandler(stub, notifier).SubmitContact(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", notifier.calls)
	}
	if !strings.Contains(notifier.bodyAtNotify, `"id":"c1"`) {
		t.Fatalf("notification ran before the response was written")
	}
}

func TestFormHandler_SubmitContact_NoNotificationOnFailure(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubFormService{
		contactFn: func(ctx context.Context, in ports.ContactInput) (*domain.Contact, error) {
			return nil, domain.Invalid("name, email and message are required")
		},
	}
	c, rec := newJSONContext(e, http.MethodPost, "/api/forms/contact", `{"name":"Ravi"}`)
	notifier := &orderingNotifier{rec: rec}

	var ve *domain.ValidationError
	if err := NewFormHandler(stub, notifier).SubmitContact(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatalf("failed submission must not notify")
	}
}

func TestFormHandler_SubmitConsultation_ParsesDate(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubFormService{
		consultationFn: func(ctx context.Context, in ports.ConsultationInput) (*domain.Consultation, error) {
			if in.PreferredDate == nil || in.PreferredDate.Format("2006-01-02") != "2026-05-01" {
				t.Fatalf("preferred date not parsed: %v", in.PreferredDate)
			}
			return &domain.Consultation{ID: "q1"}, nil
		},
	}
	c, rec := newJSONContext(e, http.MethodPost, "/api/forms/consultation",
		`{"full_name":"M","email":"m@example.com","consultation_type":"Web","project_message":"x","preferred_date":"2026-05-01"}`)

	if err := NewFormHandler(stub, &orderingNotifier{rec: rec}).SubmitConsultation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	c, _ = newJSONContext(e, http.MethodPost, "/api/forms/consultation", `{"preferred_date":"next week"}`)
	var ve *domain.ValidationError
	if err := NewFormHandler(stub, &orderingNotifier{rec: rec}).SubmitConsultation(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
}

func TestFormHandler_SubmitApplication_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("full_name", "Asha")
	_ = mw.WriteField("email", "asha@example.com")
	_ = mw.WriteField("position_applying_for", "Backend")
	_ = mw.WriteField("declaration", "on")
	_ = mw.WriteField("last_ctc", "NA")
	part, _ := mw.CreateFormFile("resume", "cv.pdf")
	_, _ = part.Write([]byte("%PDF-1.4 test"))
	_ = mw.Close()

	e := newValidatingEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/job-application", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stub := &stubFormService{
		applicationFn: func(ctx context.Context, in ports.ApplicationInput) (*domain.Application, error) {
			if in.Resume == nil || in.Resume.Name != "cv.pdf" {
				t.Fatalf("resume not forwarded: %+v", in.Resume)
			}
			data, _ := io.ReadAll(in.Resume.Reader)
			if string(data) != "%PDF-1.4 test" {
				t.Fatalf("unexpected resume content %q", data)
			}
			if in.Declaration != "on" || in.LastCTC != "NA" || in.Phone != nil {
				t.Fatalf("unexpected fields: %+v", in)
			}
			return &domain.Application{ID: "a1"}, nil
		},
	}
	notifier := &orderingNotifier{rec: rec}

	if err := NewFormHandler(stub, notifier).SubmitApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || notifier.calls != 1 {
		t.Fatalf("unexpected outcome: %d, %d notifications", rec.Code, notifier.calls)
	}
}

func TestFormAdminHandler_ListContacts_Envelope(t *testing.T) {
	e := echo.New()
	stub := &stubFormService{
		listContactsFn: func(ctx context.Context, page ports.Page) ([]*domain.Contact, error) {
			if page.Limit != maxFormLimit || page.Offset != 0 {
				t.Fatalf("unexpected page: %+v", page)
			}
			return nil, nil
		},
	}
	c, rec := newJSONContext(e, http.MethodGet, "/api/forms/contact?limit=9999&offset=-1", "")

	if err := NewFormAdminHandler(stub).ListContacts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := `{"rows":[],"limit":500,"offset":0}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func resumeStub(path string) *stubFormService {
	return &stubFormService{
		resumeFn: func(ctx context.Context, id string) (*ports.ResumeDownload, error) {
			return &ports.ResumeDownload{Path: path, FileName: "cv.pdf", ContentType: "application/pdf"}, nil
		},
	}
}

func TestFormAdminHandler_DownloadResume(t *testing.T) {
	e := echo.New()
	path := filepath.Join(t.TempDir(), "abc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	c, rec := newJSONContext(e, http.MethodGet, "/api/forms/job-applications/a1/resume", "")

	if err := NewFormAdminHandler(resumeStub(path)).DownloadResume(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "%PDF-1.4" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "cv.pdf") {
		t.Fatalf("expected attachment name in %q", cd)
	}
}

func TestFormAdminHandler_DownloadResume_MissingFile(t *testing.T) {
	e := echo.New()
	c, _ := newJSONContext(e, http.MethodGet, "/api/forms/job-applications/a1/resume", "")

	err := NewFormAdminHandler(resumeStub(filepath.Join(t.TempDir(), "gone.pdf"))).DownloadResume(c)
	if !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestFormAdminHandler_DownloadResume_ServeErrorIsNotNotFound(t *testing.T) {
	e := echo.New()
	c, _ := newJSONContext(e, http.MethodGet, "/api/forms/job-applications/a1/resume", "")

	err := NewFormAdminHandler(resumeStub("bad\x00path.pdf")).DownloadResume(c)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Fatalf("unreadable file must not be reported as not found: %v", err)
	}
}
