package handlers

import (
	"errors"
	"net/http"
	"os"

	"medicore/middleware"
	"medicore/models"
	"medicore/services/report"

	"github.com/gin-gonic/gin"
)

func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrValidation), errors.Is(err, report.ErrNotPDF):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrNoReports):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

// UploadReportHandler accepts a PDF report for the authenticated account,
// stores it and returns the record with extracted text and summary.
func UploadReportHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetAuthClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		path, err := saveUploadedFile(c, "file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file upload", "details": err.Error()})
			return
		}
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
			return
		}
		defer os.Remove(path)

		owner := models.ReportOwner{
			ID:    claims.ID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		}
		rec, err := svc.Upload(c.Request.Context(), owner, path, c.PostForm("question"))
		if err != nil {
			respondReportError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// GetMyReportsHandler lists the authenticated account's reports.
func GetMyReportsHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetAuthClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		reports, err := svc.GetByOwner(c.Request.Context(), claims.ID)
		if err != nil {
			respondReportError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}
