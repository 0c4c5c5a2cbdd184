// File: services/catalog/filter.go
package catalog

import (
	"context"
	"fmt"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
)

// publicStatuses is the status scope of the public catalog. Inactive
// listings are fully hidden.
var publicStatuses = []string{
	models.PropertyStatusActive,
	models.PropertyStatusSold,
	models.PropertyStatusRented,
}

// publicSort is the fixed, non-configurable catalog ordering.
var publicSort = bson.D{
	{Key: "featured", Value: -1},
	{Key: "created_at", Value: -1},
}

// BuildFilter translates the flat parameter set into a Mongo filter
// document. Bedrooms and bathrooms are minimum-inclusive; amenities require
// every listed tag to be present.
func BuildFilter(params FilterParams) bson.M {
	filter := bson.M{
		"status": bson.M{"$in": publicStatuses},
	}

	if params.Type != "" {
		filter["type"] = params.Type
	}
	if params.PropertyType != "" {
		filter["property_type"] = params.PropertyType
	}
	if rng := rangeFilter(params.MinPrice, params.MaxPrice); rng != nil {
		filter["price"] = rng
	}
	if rng := rangeFilter(params.MinArea, params.MaxArea); rng != nil {
		filter["area"] = rng
	}
	if params.Bedrooms > 0 {
		filter["bedrooms"] = bson.M{"$gte": params.Bedrooms}
	}
	if params.Bathrooms > 0 {
		filter["bathrooms"] = bson.M{"$gte": params.Bathrooms}
	}
	if params.MinYear > 0 || params.MaxYear > 0 {
		yr := bson.M{}
		if params.MinYear > 0 {
			yr["$gte"] = params.MinYear
		}
		if params.MaxYear > 0 {
			yr["$lte"] = params.MaxYear
		}
		filter["year_built"] = yr
	}
	if params.Furnished != nil {
		filter["furnished"] = *params.Furnished
	}
	if len(params.Amenities) > 0 {
		filter["amenities"] = bson.M{"$all": params.Amenities}
	}

	return filter
}

// TotalPages computes the page count for a result total.
func TotalPages(total int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// List runs the filtered, paginated catalog query. Pages are 1-indexed;
// pages beyond the last return zero rows without error.
func (s *DefaultCatalogService) List(ctx context.Context, params FilterParams) (*Page, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	filter := BuildFilter(params)

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog results: %w", err)
	}

	properties, err := s.Repo.Find(ctx, filter, publicSort, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	return &Page{
		Properties: properties,
		Total:      total,
		Page:       page,
		TotalPages: TotalPages(total),
	}, nil
}
