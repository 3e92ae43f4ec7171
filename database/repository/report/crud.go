package reportRepo

import (
	"context"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new report record.
func (r *mongoReportRepo) Create(ctx context.Context, report *models.Report) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, report)
	return err
}

// GetByOwnerID fetches all report records uploaded by the given account.
func (r *mongoReportRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner.id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
