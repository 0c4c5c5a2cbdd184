// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"terravista/database"
	"terravista/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository gives access to the availabilities collection. The
// public booking flow only reads; writes come from the admin back office and
// the maintenance cron.
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date string) (*models.Availability, error)
	// ListFrom returns records dated on or after from, ordered by date,
	// skipping records whose times list is empty.
	ListFrom(ctx context.Context, from string, limit int64) ([]models.Availability, error)
	// ListAllFrom is ListFrom without the non-empty-times filter or a limit.
	// The admin back office needs to see zeroed-out dates to edit them.
	ListAllFrom(ctx context.Context, from string) ([]models.Availability, error)
	Upsert(ctx context.Context, a *models.Availability) error
	Delete(ctx context.Context, date string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &mongoAvailabilityRepo{coll: database.DB().Collection("availabilities")}
	repo.ensureIndexes()
	return repo
}
