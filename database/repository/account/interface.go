package accountRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository is the persistence boundary for patient, doctor and admin
// records. The three roles share the same document shape but live in separate
// collections; the constructor binds a repository to one of them.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Account, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo returns an AccountRepository bound to the named
// collection ("users", "doctors" or "admins").
func NewMongoAccountRepo(collection string) AccountRepository {
	return &mongoAccountRepo{
		coll: database.DB().Collection(collection),
	}
}
