package catalog

import (
	"context"

	propertyRepo "terravista/database/repository/property"
	"terravista/models"
)

// PageSize is the fixed public catalog page size.
const PageSize int64 = 20

// FilterParams is the flat set of recognized catalog query parameters, all
// optional. Zero values mean "not filtered".
type FilterParams struct {
	Type         string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	MinArea      float64
	MaxArea      float64
	Bedrooms     int
	Bathrooms    int
	MinYear      int
	MaxYear      int
	Furnished    *bool
	Amenities    []string
	Page         int64
}

// Page is one page of catalog results plus the counts the UI needs to render
// pagination and tell an empty catalog from an over-constrained filter.
type Page struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int64             `json:"page"`
	TotalPages int64             `json:"totalPages"`
}

// CatalogService serves the public catalog and the admin listing CRUD.
type CatalogService interface {
	List(ctx context.Context, params FilterParams) (*Page, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, id string, p *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id string) error
	SetCover(ctx context.Context, id, imageKey string) (*models.Property, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo propertyRepo.PropertyRepository
}
