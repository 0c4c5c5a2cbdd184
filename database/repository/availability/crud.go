package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"terravista/models"
)

func (r *mongoAvailabilityRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
}

func (r *mongoAvailabilityRepo) GetByDate(ctx context.Context, date string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a models.Availability
	if err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for %s: %w", date, err)
	}
	return &a, nil
}

func (r *mongoAvailabilityRepo) ListFrom(ctx context.Context, from string, limit int64) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"date":    bson.M{"$gte": from},
		"times.0": bson.M{"$exists": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query availabilities from %s: %w", from, err)
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availabilities: %w", err)
	}
	return records, nil
}

func (r *mongoAvailabilityRepo) ListAllFrom(ctx context.Context, from string) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query availabilities from %s: %w", from, err)
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availabilities: %w", err)
	}
	return records, nil
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, a *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	update := bson.M{
		"$set":         bson.M{"times": a.Times},
		"$setOnInsert": bson.M{"id": a.ID, "date": a.Date},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"date": a.Date}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability for %s: %w", a.Date, err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("failed to delete availability for %s: %w", date, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBefore removes availability records dated strictly before the given
// date. Used by the daily maintenance job; past dates can never be offered.
func (r *mongoAvailabilityRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to prune availabilities before %s: %w", date, err)
	}
	return res.DeletedCount, nil
}
