package catalog

import (
	"context"
	"errors"
	"fmt"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned when a property id is unknown.
	ErrNotFound = errors.New("property not found")
	// ErrImageNotFound is returned by SetCover when the key is not among the
	// property's images.
	ErrImageNotFound = errors.New("image is not attached to this property")
)

func rangeFilter(min, max float64) bson.M {
	if min <= 0 && max <= 0 {
		return nil
	}
	rng := bson.M{}
	if min > 0 {
		rng["$gte"] = min
	}
	if max > 0 {
		rng["$lte"] = max
	}
	return rng
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, p *models.Property) error {
	if p.Status == "" {
		p.Status = models.PropertyStatusActive
	}
	return s.Repo.Create(ctx, p)
}

// Update replaces the editable listing fields. Identity and timestamps are
// managed by the repository.
func (s *DefaultCatalogService) Update(ctx context.Context, id string, p *models.Property) (*models.Property, error) {
	set := bson.M{
		"title":          p.Title,
		"description":    p.Description,
		"price":          p.Price,
		"type":           p.Type,
		"status":         p.Status,
		"featured":       p.Featured,
		"location":       p.Location,
		"latitude":       p.Latitude,
		"longitude":      p.Longitude,
		"property_type":  p.PropertyType,
		"bedrooms":       p.Bedrooms,
		"bathrooms":      p.Bathrooms,
		"area":           p.Area,
		"year_built":     p.YearBuilt,
		"floor_number":   p.FloorNumber,
		"total_floors":   p.TotalFloors,
		"parking_spaces": p.ParkingSpaces,
		"furnished":      p.Furnished,
		"heating_type":   p.HeatingType,
		"cooling_type":   p.CoolingType,
		"images":         p.Images,
		"floor_plans":    p.FloorPlans,
		"rooms":          p.Rooms,
		"amenities":      p.Amenities,
	}
	if err := s.Repo.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SetCover makes the given image key the cover by moving it to the front of
// the ordered image list, keeping the rest in relative order.
func (s *DefaultCatalogService) SetCover(ctx context.Context, id, imageKey string) (*models.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.SetCoverImage(imageKey) {
		return nil, ErrImageNotFound
	}
	if err := s.Repo.ReplaceImages(ctx, id, p.Images); err != nil {
		return nil, fmt.Errorf("failed to persist cover change: %w", err)
	}
	return p, nil
}
