package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// FormAdminHandler serves stored submissions to administrators.
type FormAdminHandler struct {
	service ports.FormService
}

func NewFormAdminHandler(service ports.FormService) *FormAdminHandler {
	return &FormAdminHandler{service: service}
}

// listResponse is the paginated envelope of submission listings.
type listResponse[T any] struct {
	Rows   []T `json:"rows"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newListResponse[T any](rows []T, page ports.Page) listResponse[T] {
	if rows == nil {
		rows = []T{}
	}
	return listResponse[T]{Rows: rows, Limit: page.Limit, Offset: page.Offset}
}

// ── Contacts ──────────────────────────────────────────────────────────────────

// ListContacts
//
// @Summary      List contact submissions
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (default 50, max 500)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/forms/contact [get]
func (h *FormAdminHandler) ListContacts(c echo.Context) error {
	page := parsePage(c, maxFormLimit)
	rows, err := h.service.ListContacts(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(rows, page))
}

// @Summary      Get contact submission
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/contact/{id} [get]
func (h *FormAdminHandler) GetContact(c echo.Context) error {
	row, err := h.service.GetContact(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// @Summary      Mark contact as read
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/contact/{id}/read [patch]
func (h *FormAdminHandler) MarkContactRead(c echo.Context) error {
	row, err := h.service.MarkContactRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// @Summary      Delete contact submission
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/contact/{id} [delete]
func (h *FormAdminHandler) DeleteContact(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteContact(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: true})
}

// ── Consultations ─────────────────────────────────────────────────────────────

// @Summary      List consultation requests
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (default 50, max 500)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  map[string]any
// @Router       /api/forms/consultation [get]
func (h *FormAdminHandler) ListConsultations(c echo.Context) error {
	page := parsePage(c, maxFormLimit)
	rows, err := h.service.ListConsultations(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(rows, page))
}

// @Summary      Get consultation request
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Consultation ID"
// @Success      200  {object}  domain.Consultation
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/consultation/{id} [get]
func (h *FormAdminHandler) GetConsultation(c echo.Context) error {
	row, err := h.service.GetConsultation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// @Summary      Mark consultation as contacted
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Consultation ID"
// @Success      200  {object}  domain.Consultation
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/consultation/{id}/read [patch]
func (h *FormAdminHandler) MarkConsultationContacted(c echo.Context) error {
	row, err := h.service.MarkConsultationContacted(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// @Summary      Delete consultation request
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Consultation ID"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/consultation/{id} [delete]
func (h *FormAdminHandler) DeleteConsultation(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteConsultation(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: true})
}

// ── Applications ──────────────────────────────────────────────────────────────

// @Summary      List job applications
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (default 50, max 500)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  map[string]any
// @Router       /api/forms/job-applications [get]
func (h *FormAdminHandler) ListApplications(c echo.Context) error {
	page := parsePage(c, maxFormLimit)
	rows, err := h.service.ListApplications(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(rows, page))
}

// @Summary      Get job application
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/job-applications/{id} [get]
func (h *FormAdminHandler) GetApplication(c echo.Context) error {
	row, err := h.service.GetApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// DownloadResume streams the stored resume as an attachment.
//
// @Summary      Download resume
// @Tags         forms-admin
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "Application ID"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/job-applications/{id}/resume [get]
func (h *FormAdminHandler) DownloadResume(c echo.Context) error {
	dl, err := h.service.ApplicationResume(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if dl.ContentType != "" {
		c.Response().Header().Set(echo.HeaderContentType, dl.ContentType)
	}
	if _, err := os.Stat(dl.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrSubmissionNotFound
		}
		return fmt.Errorf("resume %s: %w", c.Param("id"), err)
	}
	if err := c.Attachment(dl.Path, dl.FileName); err != nil {
		if errors.Is(err, echo.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return domain.ErrSubmissionNotFound
		}
		return fmt.Errorf("resume %s: %w", c.Param("id"), err)
	}
	return nil
}

// @Summary      Delete job application
// @Tags         forms-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/forms/job-applications/{id} [delete]
func (h *FormAdminHandler) DeleteApplication(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteApplication(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: true})
}
