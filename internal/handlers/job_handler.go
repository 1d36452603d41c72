package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"go-jobboard/internal/database"
	"go-jobboard/internal/dtos"
	"go-jobboard/internal/editor"
	"go-jobboard/internal/render"
	"go-jobboard/internal/services"
	"go-jobboard/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PDFGenerator turns a page into a printable document. pdf.Generator
// satisfies it.
type PDFGenerator interface {
	Generate(ctx context.Context, page render.Page) ([]byte, error)
}

type JobHandler struct {
	JobService *services.JobService
	Printer    PDFGenerator
	Logger     *zap.Logger
}

func NewJobHandler(j *services.JobService, pdf PDFGenerator, logger *zap.Logger) *JobHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobHandler{JobService: j, Printer: pdf, Logger: logger}
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, database.ErrJobNotFound), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrInvalidOp),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrUnknownRow),
		errors.Is(err, services.ErrMissingTitle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	}
	c.JSON(status, gin.H{"error": msg + ": " + err.Error()})
}

// CreateJob is POST /admin/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, "Failed to create job", err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is PUT /admin/jobs/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Logger, "Failed to update job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.JobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "Failed to delete job", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListJobs is GET /admin/jobs?limit=&offset=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}
	jobs, err := h.JobService.ListJobs(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.Logger, "Failed to list jobs", err)
		return
	}
	if jobs == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetContent is GET /admin/jobs/:id/content: the parsed content with at
// least one row per list, ready for the editors.
func (h *JobHandler) GetContent(c *gin.Context) {
	job, err := h.JobService.EditableContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "Failed to load job content", err)
		return
	}
	c.JSON(http.StatusOK, dtos.PayloadOf(job))
}

func (h *JobHandler) page(c *gin.Context) (render.Page, bool) {
	page, err := h.JobService.Page(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "Failed to load job", err)
		return render.Page{}, false
	}
	return page, true
}

func (h *JobHandler) html(c *gin.Context, s render.Surface) {
	page, ok := h.page(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.HTML(&buf, s, page); err != nil {
		respondError(c, h.Logger, "Failed to render job", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Preview is GET /admin/jobs/:id/preview.
func (h *JobHandler) Preview(c *gin.Context) { h.html(c, render.Admin) }

// PublicPage is GET /jobs/:id.
func (h *JobHandler) PublicPage(c *gin.Context) { h.html(c, render.Web) }

// MobileJob is GET /api/v1/mobile/jobs/:id.
func (h *JobHandler) MobileJob(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, render.ForMobile(page))
}

// PDF is GET /jobs/:id/pdf.
func (h *JobHandler) PDF(c *gin.Context) {
	if h.Printer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PDF rendering is not enabled"})
		return
	}
	page, ok := h.page(c)
	if !ok {
		return
	}
	data, err := h.Printer.Generate(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.Logger, "Failed to generate PDF", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="job-`+page.JobID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
