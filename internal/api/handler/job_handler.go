package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/api/metrics"
	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// JobHandler serves job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type createJobRequest struct {
	Title            string  `json:"title"             validate:"max=255"`
	Description      string  `json:"description"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Location         string  `json:"location"          validate:"max=255"`
	Department       *string `json:"department"        validate:"omitempty,max=255"`
	Type             string  `json:"type"              validate:"max=100"`
}

type updateJobRequest struct {
	Title            *string `json:"title"             validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Location         *string `json:"location"          validate:"omitempty,max=255"`
	Department       *string `json:"department"        validate:"omitempty,max=255"`
	Type             *string `json:"type"              validate:"omitempty,max=100"`
	IsActive         *bool   `json:"is_active"`
}

// List returns job postings.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        active  query     bool    false  "Only active postings"
// @Param        q       query     string  false  "Search title and descriptions"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Param        offset  query     int     false  "Offset"
// @Success      200     {array}   domain.Job
// @Failure      401     {object}  errorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context(), ports.JobFilter{
		OnlyActive: c.QueryParam("active") == "true",
		Search:     c.QueryParam("q"),
		Page:       parsePage(c, maxJobLimit),
	})
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns a single job posting.
//
// @Summary      Get job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create publishes a job posting.
//
// @Summary      Create job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job posting"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), actor, ports.CreateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location,
		Department:       req.Department,
		Type:             req.Type,
	})
	if err != nil {
		return err
	}
	metrics.JobMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, job)
}

// Update applies a partial update to a job posting.
//
// @Summary      Update job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req updateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.JobUpdate{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location,
		Department:       req.Department,
		Type:             req.Type,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.JobMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, job)
}

// Delete removes a job posting.
//
// @Summary      Delete job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  deletedResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	metrics.JobMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deletedResponse{Deleted: true})
}
