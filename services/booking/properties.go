package booking

import (
	"context"
	"fmt"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchActiveProperties backs the desired-properties multi-select in the
// details step: a case-insensitive title/location search over active
// listings, capped at 20 rows.
func (s *DefaultBookingSessionService) SearchActiveProperties(ctx context.Context, term string) ([]models.Property, error) {
	filter := bson.M{"status": models.PropertyStatusActive}
	if term != "" {
		pattern := primitive.Regex{Pattern: term, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"location": pattern},
		}
	}

	sort := bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	properties, err := s.PropertyRepo.Find(ctx, filter, sort, 0, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}
