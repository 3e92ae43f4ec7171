package reportRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository is the persistence boundary for uploaded report records.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.Report, error)
}

type mongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo returns a ReportRepository backed by the reports
// collection.
func NewMongoReportRepo() ReportRepository {
	return &mongoReportRepo{
		coll: database.DB().Collection("reports"),
	}
}
