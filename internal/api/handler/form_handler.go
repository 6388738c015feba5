package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/api/metrics"
	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// FormHandler accepts the public site forms. Notifications are handed to
// the notifier only after the response has been written.
type FormHandler struct {
	service  ports.FormService
	notifier ports.Notifier
}

func NewFormHandler(service ports.FormService, notifier ports.Notifier) *FormHandler {
	return &FormHandler{service: service, notifier: notifier}
}

type contactRequest struct {
	Name    string  `json:"name"    validate:"max=255"`
	Email   string  `json:"email"   validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone"   validate:"omitempty,max=50"`
	Message string  `json:"message"`
}

type consultationRequest struct {
	FullName         string  `json:"full_name"          validate:"max=255"`
	Email            string  `json:"email"              validate:"omitempty,email,max=255"`
	Phone            *string `json:"phone"              validate:"omitempty,max=50"`
	ConsultationType string  `json:"consultation_type"  validate:"max=100"`
	OtherTypeDetails *string `json:"other_type_details"`
	PreferredDate    *string `json:"preferred_date"`
	MeetingMode      *string `json:"meeting_mode"       validate:"omitempty,max=50"`
	ProjectMessage   string  `json:"project_message"`
}

type contactResponse struct {
	Saved   *domain.Contact `json:"saved"`
	Message string          `json:"message"`
}

type consultationResponse struct {
	Saved   *domain.Consultation `json:"saved"`
	Message string               `json:"message"`
}

type applicationResponse struct {
	Saved   *domain.Application `json:"saved"`
	Message string              `json:"message"`
}

// afterResponse runs fn once the response body has been written.
func afterResponse(c echo.Context, fn func()) {
	var once sync.Once
	c.Response().After(func() { once.Do(fn) })
}

// SubmitContact stores a contact message.
//
// @Summary      Submit contact form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/forms/contact [post]
func (h *FormHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	saved, err := h.service.SubmitContact(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.FormsSubmittedTotal.WithLabelValues(string(domain.FormContact)).Inc()
	afterResponse(c, func() { h.notifier.ContactSubmitted(saved) })
	return c.JSON(http.StatusCreated, contactResponse{
		Saved:   saved,
		Message: "Message received, we'll contact you soon!",
	})
}

// SubmitConsultation stores a consultation request.
//
// @Summary      Submit consultation form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      consultationRequest  true  "Consultation request"
// @Success      201   {object}  consultationResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/forms/consultation [post]
func (h *FormHandler) SubmitConsultation(c echo.Context) error {
	var req consultationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	preferred, err := parseDate(req.PreferredDate)
	if err != nil {
		return err
	}

	saved, err := h.service.SubmitConsultation(c.Request().Context(), ports.ConsultationInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		ConsultationType: req.ConsultationType,
		OtherTypeDetails: req.OtherTypeDetails,
		PreferredDate:    preferred,
		MeetingMode:      req.MeetingMode,
		ProjectMessage:   req.ProjectMessage,
	})
	if err != nil {
		return err
	}

	metrics.FormsSubmittedTotal.WithLabelValues(string(domain.FormConsultation)).Inc()
	afterResponse(c, func() { h.notifier.ConsultationSubmitted(saved) })
	return c.JSON(http.StatusCreated, consultationResponse{
		Saved:   saved,
		Message: "Consultation request received successfully!",
	})
}

// SubmitApplication stores a job application and its resume.
//
// @Summary      Submit job application
// @Tags         forms
// @Accept       multipart/form-data
// @Produce      json
// @Param        full_name              formData  string  true   "Full name"
// @Param        email                  formData  string  true   "Email"
// @Param        position_applying_for  formData  string  true   "Position"
// @Param        declaration            formData  string  true   "true or on"
// @Param        resume                 formData  file    true   "PDF, DOC or DOCX, at most 5 MiB"
// @Success      201  {object}  applicationResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/forms/job-application [post]
func (h *FormHandler) SubmitApplication(c echo.Context) error {
	in := ports.ApplicationInput{
		FullName:             c.FormValue("full_name"),
		Email:                c.FormValue("email"),
		Phone:                optional(c.FormValue("phone")),
		CurrentCity:          optional(c.FormValue("current_city")),
		PositionApplyingFor:  c.FormValue("position_applying_for"),
		HighestQualification: optional(c.FormValue("highest_qualification")),
		IsFresher:            c.FormValue("is_fresher"),
		CompanyName:          optional(c.FormValue("company_name")),
		Designation:          optional(c.FormValue("designation")),
		YearsExperience:      c.FormValue("years_experience"),
		LastCTC:              c.FormValue("last_ctc"),
		ExpectedCTC:          c.FormValue("expected_ctc"),
		LinkedInURL:          optional(c.FormValue("linkedin_url")),
		PortfolioURL:         optional(c.FormValue("portfolio_url")),
		Declaration:          c.FormValue("declaration"),
		Notes:                optional(c.FormValue("notes")),
	}

	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable resume upload")
		}
		defer f.Close()
		in.Resume = &ports.UploadedFile{Name: fh.Filename, Reader: f}
	}

	saved, err := h.service.SubmitApplication(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.FormsSubmittedTotal.WithLabelValues(string(domain.FormApplication)).Inc()
	afterResponse(c, func() { h.notifier.ApplicationSubmitted(saved) })
	return c.JSON(http.StatusCreated, applicationResponse{
		Saved:   saved,
		Message: "Application submitted successfully!",
	})
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty means no date.
func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, domain.Invalid("preferred_date must be a date (YYYY-MM-DD)")
}
