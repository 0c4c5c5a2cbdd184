package contentRepo

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

func (r *mongoHeroSlideRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "sort_order", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create hero slide indexes: %v\n", err)
	}
}

func (r *mongoHeroSlideRepo) Create(ctx context.Context, s *models.HeroSlide) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert hero slide: %w", err)
	}
	return nil
}

func (r *mongoHeroSlideRepo) Update(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update hero slide %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoHeroSlideRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete hero slide %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoHeroSlideRepo) GetByID(ctx context.Context, id string) (*models.HeroSlide, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.HeroSlide
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hero slide %s: %w", id, err)
	}
	return &s, nil
}

func (r *mongoHeroSlideRepo) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	return r.list(ctx, bson.M{"active": true})
}

func (r *mongoHeroSlideRepo) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoHeroSlideRepo) list(ctx context.Context, filter bson.M) ([]models.HeroSlide, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query hero slides: %w", err)
	}
	defer cursor.Close(ctx)

	slides := []models.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, fmt.Errorf("failed to decode hero slides: %w", err)
	}
	return slides, nil
}
