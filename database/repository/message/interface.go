package messageRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository is the persistence boundary for contact-form messages.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	GetAll(ctx context.Context) ([]models.Message, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Message, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo returns a MessageRepository backed by the messages
// collection.
func NewMongoMessageRepo() MessageRepository {
	return &mongoMessageRepo{
		coll: database.DB().Collection("messages"),
	}
}
