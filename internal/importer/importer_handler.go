package importer

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/apperror"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	uploadDir string
	logger    *zap.Logger
}

func NewHandler(service Service, uploadDir string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("importer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importer.handler")
	}
	return &Handler{
		service:   service,
		uploadDir: uploadDir,
		logger:    l,
	}
}

type importFromPathRequest struct {
	FilePath string `json:"file_path" binding:"required"`
}

// Upload receives a spreadsheet as multipart form data, stores it under a
// temporary name, runs the import, and removes the file afterwards.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "No file was uploaded", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Only .xlsx and .xls files are supported", nil)
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.Error("could not create upload directory", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Could not store uploaded file", nil)
		return
	}

	dest := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fileHeader, dest); err != nil {
		h.logger.Error("could not save uploaded file", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Could not store uploaded file", nil)
		return
	}
	defer func() {
		if err := os.Remove(dest); err != nil {
			h.logger.Warn("could not remove uploaded file", zap.String("path", dest), zap.Error(err))
		}
	}()

	result, err := h.service.ImportFromFile(c.Request.Context(), dest)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// FromPath imports a spreadsheet already present on the server filesystem.
func (h *Handler) FromPath(c *gin.Context) {
	var req importFromPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "file_path is required", nil)
		return
	}

	result, err := h.service.ImportFromFile(c.Request.Context(), req.FilePath)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("import failed",
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
