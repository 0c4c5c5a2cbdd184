// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"terravista/database"
	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an insert collides with an existing
// non-cancelled reservation for the same date and time.
var ErrSlotTaken = errors.New("slot already has a non-cancelled reservation")

// ReservationRepository gives access to the reservations collection.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Delete(ctx context.Context, id string) error
	// GetActiveByDate returns all non-cancelled reservations for a date.
	GetActiveByDate(ctx context.Context, date string) ([]models.Reservation, error)
	// UpdateStatus transitions a reservation whose current status is
	// fromStatus, applying extra fields. It reports whether a document
	// matched, which doubles as the optimistic concurrency check.
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, extra bson.M) (bool, error)
	List(ctx context.Context, status string, skip, limit int64) ([]models.Reservation, int64, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	repo := &mongoReservationRepo{coll: database.DB().Collection("reservations")}
	repo.ensureIndexes()
	return repo
}
