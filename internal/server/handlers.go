package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/export"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"service":           "invoice2excel",
		"pdf_processing":    "available",
		"openai_api_key":    keyStatus(s.cfg.LLM.APIKey),
		"supported_formats": []string{"PDF", "JPG", "JPEG", "PNG"},
	})
}

func keyStatus(key string) string {
	if key == "" {
		return "not configured"
	}
	return "configured"
}

// handleUpload processes one or more invoice files and responds with a single
// combined workbook. Per-file failures are collected, not fatal; only a
// request where every file fails is an error.
func (s *Server) handleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No files provided"})
		return
	}

	for _, fh := range files {
		if constants.MapExtToFormat(filepath.Ext(fh.Filename)) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": fmt.Sprintf("Unsupported file type: %s. Please upload PDF, JPG, JPEG, or PNG files only.", fh.Filename),
			})
			return
		}
	}

	var allRows []export.Row
	var failed []string
	processed := 0

	for _, fh := range files {
		rows, err := s.processUpload(c, fh)
		if err != nil {
			if common.IsInferenceError(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"detail": inferenceErrorMessage(err)})
				return
			}
			s.logger.Warn("upload.file.failed", "file", fh.Filename, "err", err)
			failed = append(failed, fh.Filename)
			continue
		}
		allRows = append(allRows, rows...)
		processed++
	}

	if len(allRows) == 0 {
		detail := "Failed to extract data from any files."
		if len(failed) > 0 {
			detail += " Failed files: " + strings.Join(failed, ", ")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": detail})
		return
	}

	workbook, err := s.export.BuildWorkbook(allRows)
	if err != nil {
		s.logger.Error("upload.workbook.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to build workbook"})
		return
	}

	filename := fmt.Sprintf("invoice_data_%d_invoices.xlsx", processed)
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		workbook)
}

// processUpload saves one upload to a temp file, runs the pipeline on it, and
// removes the temp file before returning.
func (s *Server) processUpload(c *gin.Context, fh *multipart.FileHeader) ([]export.Row, error) {
	tmp := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, tmp); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			s.logger.Warn("upload.tempfile.cleanup_failed", "path", tmp, "err", err)
		}
	}()

	return s.proc.ProcessFile(c.Request.Context(), tmp, fh.Filename)
}

// inferenceErrorMessage maps the transient inference categories onto the
// user-facing Arabic messages.
func inferenceErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrAuthentication):
		return "مفتاح API غير صحيح أو مفقود. يرجى التحقق من مفتاح OpenAI API."
	case errors.Is(err, common.ErrRateLimited):
		return "تم تجاوز حد الاستخدام لـ OpenAI API. يرجى المحاولة لاحقاً."
	case errors.Is(err, common.ErrQuotaExceeded):
		return "تم تجاوز الحصة المتاحة لـ OpenAI API. يرجى التحقق من حسابك."
	default:
		return "خطأ في المعالجة: " + err.Error()
	}
}
