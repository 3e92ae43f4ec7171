package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	reportRepo "medicore/database/repository/report"
	"medicore/models"
	"medicore/services/storage"
	"medicore/utils"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Report failure taxonomy.
var (
	ErrValidation = errors.New("all fields are required")
	ErrNoReports  = errors.New("no reports found")
	ErrNotPDF     = errors.New("uploaded file is not a readable PDF")
)

// ReportService handles uploaded medical documents: storing the file,
// extracting its text and producing a summary.
type ReportService interface {
	Upload(ctx context.Context, owner models.ReportOwner, filePath, question string) (*models.Report, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Report, error)
}

// DefaultReportService is the production ReportService.
type DefaultReportService struct {
	Repo       reportRepo.ReportRepository
	Storage    storage.StorageService
	Summarizer Summarizer
}

// Upload stores a PDF report for an account. The raw file goes to the object
// store, its text is extracted locally and the summary is generated from the
// extracted text. An optional question is answered against the text instead
// of a general summary. Summarization failures degrade to an empty summary
// rather than failing the upload.
func (s *DefaultReportService) Upload(ctx context.Context, owner models.ReportOwner, filePath, question string) (*models.Report, error) {
	if owner.ID == "" || filePath == "" {
		return nil, ErrValidation
	}

	parsed, err := extractPDFText(filePath)
	if err != nil {
		return nil, ErrNotPDF
	}
	if s.Storage == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	fileURL, err := s.Storage.UploadFile(ctx, filePath, "reports")
	if err != nil {
		return nil, fmt.Errorf("failed to store report file: %w", err)
	}

	summary := ""
	if s.Summarizer != nil {
		summary, err = s.Summarizer.Summarize(ctx, parsed, question)
		if err != nil {
			utils.GetLogger().Error("report summarization failed",
				zap.String("ownerId", owner.ID), zap.Error(err))
			summary = ""
		}
	}

	now := time.Now()
	rec := &models.Report{
		ID:            uuid.New().String(),
		Owner:         owner,
		FileURL:       fileURL,
		ParsedContent: parsed,
		Summary:       summary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return rec, nil
}

// GetByOwner lists an account's reports.
func (s *DefaultReportService) GetByOwner(ctx context.Context, ownerID string) ([]models.Report, error) {
	reports, err := s.Repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports for %s: %w", ownerID, err)
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	return reports, nil
}

// extractPDFText pulls plain text out of a PDF file.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}
