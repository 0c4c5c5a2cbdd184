package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"terravista/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public property listing surface.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// ListProperties returns one page of listings matching the query filters.
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	params, err := parseFilterParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return
	}

	page, err := h.Service.List(c.Request.Context(), params)
	if err != nil {
		h.Logger.Error("failed to list properties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetProperty returns a single listing by id.
func (h *CatalogHandler) GetProperty(c *gin.Context) {
	property, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		h.Logger.Error("failed to fetch property", zap.Error(err), zap.String("id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch property"})
		return
	}
	c.JSON(http.StatusOK, property)
}

func parseFilterParams(c *gin.Context) (catalog.FilterParams, error) {
	var params catalog.FilterParams

	params.Type = c.Query("type")
	params.PropertyType = c.Query("propertyType")

	if v := c.Query("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, err
		}
		params.Page = page
	}

	floatFields := map[string]*float64{
		"minPrice": &params.MinPrice,
		"maxPrice": &params.MaxPrice,
		"minArea":  &params.MinArea,
		"maxArea":  &params.MaxArea,
	}
	for key, dst := range floatFields {
		if v := c.Query(key); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return params, err
			}
			*dst = n
		}
	}

	intFields := map[string]*int{
		"bedrooms":  &params.Bedrooms,
		"bathrooms": &params.Bathrooms,
		"minYear":   &params.MinYear,
		"maxYear":   &params.MaxYear,
	}
	for key, dst := range intFields {
		if v := c.Query(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return params, err
			}
			*dst = n
		}
	}

	if v := c.Query("furnished"); v != "" {
		furnished, err := strconv.ParseBool(v)
		if err != nil {
			return params, err
		}
		params.Furnished = &furnished
	}

	if v := c.Query("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				params.Amenities = append(params.Amenities, a)
			}
		}
	}

	return params, nil
}
