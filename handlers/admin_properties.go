package handlers

import (
	"errors"
	"net/http"

	"terravista/models"
	"terravista/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminPropertyHandler serves the listing CRUD behind the admin group.
type AdminPropertyHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewAdminPropertyHandler creates a new AdminPropertyHandler.
func NewAdminPropertyHandler(svc catalog.CatalogService, logger *zap.Logger) *AdminPropertyHandler {
	return &AdminPropertyHandler{Service: svc, Logger: logger}
}

// Create inserts a new listing.
func (h *AdminPropertyHandler) Create(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if property.Title == "" || property.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and location are required"})
		return
	}

	if err := h.Service.Create(c.Request.Context(), &property); err != nil {
		h.Logger.Error("failed to create property", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}
	c.JSON(http.StatusCreated, property)
}

// Update replaces the editable fields of a listing.
func (h *AdminPropertyHandler) Update(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), &property)
	if err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a listing.
func (h *AdminPropertyHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetCover promotes one of the listing's images to cover position.
func (h *AdminPropertyHandler) SetCover(c *gin.Context) {
	var input struct {
		ImageKey string `json:"imageKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.SetCover(c.Request.Context(), c.Param("id"), input.ImageKey)
	if err != nil {
		if errors.Is(err, catalog.ErrImageNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminPropertyHandler) catalogError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	h.Logger.Error("property operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "property operation failed"})
}
