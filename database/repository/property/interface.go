// File: database/repository/property/interface.go
package propertyRepo

import (
	"context"

	"terravista/database"
	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PropertyRepository gives access to the properties collection. Filters are
// built by the catalog service; the repository only runs them.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Property, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	ReplaceImages(ctx context.Context, id string, images []string) error
}

type mongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo constructs a new MongoDB PropertyRepository.
func NewMongoPropertyRepo() PropertyRepository {
	repo := &mongoPropertyRepo{coll: database.DB().Collection("properties")}
	repo.ensureIndexes()
	return repo
}
