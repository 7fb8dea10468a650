package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/importer"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/middleware"
	"tenant-bulk-import/internal/service"
)

const (
	// multipartOverhead is allowed on top of the file limit for form fields
	// and part headers.
	multipartOverhead = 1 << 20
	// multipartMemory is how much of an upload is held in memory before
	// spilling to a temp file.
	multipartMemory = 32 << 20

	// TemplateNoteHeader explains that an XLSX template cannot be uploaded as is.
	TemplateNoteHeader = "X-Template-Note"
)

// ImportHandler handles import-related HTTP requests.
type ImportHandler struct {
	importService  service.ImportServiceInterface
	maxUploadBytes int64
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface, maxUploadBytes int64) *ImportHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = service.DefaultMaxUploadBytes
	}
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ImportJobResponse represents an import job in the API response.
type ImportJobResponse struct {
	ID                string                `json:"id"`
	TenantID          string                `json:"tenant_id"`
	FileName          string                `json:"file_name"`
	UploadedBy        string                `json:"uploaded_by"`
	ImportType        string                `json:"import_type"`
	Status            string                `json:"status"`
	TotalRecords      int                   `json:"total_records"`
	ProcessedRecords  int                   `json:"processed_records"`
	SuccessfulRecords int                   `json:"successful_records"`
	FailedRecords     int                   `json:"failed_records"`
	ProgressPercent   int                   `json:"progress_percent"`
	Errors            []domain.RowError     `json:"errors"`
	Results           *domain.ImportResults `json:"results,omitempty"`
	CancelRequested   bool                  `json:"cancel_requested"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
	StartedAt         *string               `json:"started_at,omitempty"`
	CompletedAt       *string               `json:"completed_at,omitempty"`
}

// toImportJobResponse converts a domain.ImportJob to an ImportJobResponse.
func toImportJobResponse(job *domain.ImportJob) ImportJobResponse {
	errs := job.Errors
	if errs == nil {
		errs = []domain.RowError{}
	}
	response := ImportJobResponse{
		ID:                job.ID,
		TenantID:          job.TenantID,
		FileName:          job.FileName,
		UploadedBy:        job.UploadedBy,
		ImportType:        string(job.ImportType),
		Status:            string(job.Status),
		TotalRecords:      job.TotalRecords,
		ProcessedRecords:  job.ProcessedRecords,
		SuccessfulRecords: job.SuccessCount,
		FailedRecords:     job.FailureCount,
		ProgressPercent:   job.ProgressPercent(),
		Errors:            errs,
		Results:           job.Results,
		CancelRequested:   job.CancelRequested,
		CreatedAt:         job.CreatedAt.Format(TimeFormat),
		UpdatedAt:         job.UpdatedAt.Format(TimeFormat),
	}
	if job.StartedAt != nil {
		startedAt := job.StartedAt.Format(TimeFormat)
		response.StartedAt = &startedAt
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// CreateImport handles POST /api/v1/imports
func (h *ImportHandler) CreateImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrFileTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "request must be multipart/form-data"})
		return
	}

	importType := c.PostForm("import_type")
	if importType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "import_type is required"})
		return
	}

	if !domain.IsValidImportType(importType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "import_type must be one of: users, products"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	uploadedBy := strings.TrimSpace(c.PostForm("uploaded_by"))
	if uploadedBy == "" {
		uploadedBy = strings.TrimSpace(c.GetHeader(middleware.UserIDHeader))
	}
	if uploadedBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded_by is required"})
		return
	}

	job, err := h.importService.StartImport(c.Request.Context(), service.StartImportRequest{
		TenantID:    middleware.GetTenantID(c),
		UploadedBy:  uploadedBy,
		ImportType:  domain.ImportType(importType),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFileType), errors.Is(err, domain.ErrInvalidImportType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			logger.FromContext(c.Request.Context()).Error("failed to start import", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process import request"})
		}
		return
	}

	c.JSON(http.StatusAccepted, toImportJobResponse(job))
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	job, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toImportJobResponse(job))
}

// CancelImport handles POST /api/v1/imports/:id/cancel
func (h *ImportHandler) CancelImport(c *gin.Context) {
	id := c.Param("id")

	job, err := h.importService.CancelImport(c.Request.Context(), middleware.GetTenantID(c), id)
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "import job not found"})
	case errors.Is(err, domain.ErrJobTerminal):
		body := gin.H{"error": "import job already finished"}
		if job != nil {
			body["status"] = string(job.Status)
		}
		c.JSON(http.StatusConflict, body)
	case err != nil:
		logger.FromContext(c.Request.Context()).Error("failed to cancel import job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel import job"})
	default:
		c.JSON(http.StatusAccepted, toImportJobResponse(job))
	}
}

// ExportErrors handles GET /api/v1/imports/:id/errors?format=csv|ndjson
func (h *ImportHandler) ExportErrors(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatCSV)
	if !service.IsValidReportFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, ndjson"})
		return
	}

	job, ok := h.lookup(c)
	if !ok {
		return
	}

	contentType := "text/csv"
	if format == service.FormatNDJSON {
		contentType = "application/x-ndjson"
	}
	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\""+job.ID+"-errors."+format+"\"")
	c.Status(http.StatusOK)

	if _, err := service.WriteErrorReport(c.Writer, format, job.Errors); err != nil {
		// Headers are already sent.
		logger.FromContext(c.Request.Context()).Error("error report failed", "job_id", job.ID, "error", err)
	}
}

// Template handles GET /api/v1/templates/:type?format=csv|xlsx. The XLSX
// variant is a reference copy; uploads accept CSV only.
func (h *ImportHandler) Template(c *gin.Context) {
	template, ok := importer.TemplateFor(domain.ImportType(c.Param("type")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown import type"})
		return
	}

	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename=\""+template.Name+"-template.csv\"")
		c.Status(http.StatusOK)
		if err := importer.WriteCSVTemplate(c.Writer, template); err != nil {
			logger.Error("csv template failed", "template", template.Name, "error", err)
		}
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=\""+template.Name+"-template-reference.xlsx\"")
		c.Header(TemplateNoteHeader, importer.XLSXTemplateNote)
		c.Status(http.StatusOK)
		if err := importer.WriteXLSXTemplate(c.Writer, template); err != nil {
			logger.Error("xlsx template failed", "template", template.Name, "error", err)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, xlsx"})
	}
}

// lookup loads the tenant's job named by the id path parameter and writes the
// error response when there is none.
func (h *ImportHandler) lookup(c *gin.Context) (*domain.ImportJob, bool) {
	id := c.Param("id")

	job, err := h.importService.GetImportJob(c.Request.Context(), middleware.GetTenantID(c), id)
	if errors.Is(err, domain.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "import job not found"})
		return nil, false
	}
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to get import job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve import job"})
		return nil, false
	}
	return job, true
}
