package handlers

import (
	"net/http"
	"sort"
	"time"

	availabilityRepo "terravista/database/repository/availability"
	"terravista/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAvailabilityHandler manages the per-date consultation time lists.
type AdminAvailabilityHandler struct {
	Repo   availabilityRepo.AvailabilityRepository
	Logger *zap.Logger
}

// NewAdminAvailabilityHandler creates a new AdminAvailabilityHandler.
func NewAdminAvailabilityHandler(repo availabilityRepo.AvailabilityRepository, logger *zap.Logger) *AdminAvailabilityHandler {
	return &AdminAvailabilityHandler{Repo: repo, Logger: logger}
}

// List returns availability records from today onwards, including dates
// whose time list was emptied out.
func (h *AdminAvailabilityHandler) List(c *gin.Context) {
	from := time.Now().Format("2006-01-02")
	records, err := h.Repo.ListAllFrom(c.Request.Context(), from)
	if err != nil {
		h.Logger.Error("failed to list availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": records})
}

// Upsert replaces the time list for a date, creating the record if needed.
// Duplicate times collapse and the list is stored sorted.
func (h *AdminAvailabilityHandler) Upsert(c *gin.Context) {
	var input struct {
		Date  string   `json:"date" binding:"required"`
		Times []string `json:"times"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	seen := make(map[string]bool, len(input.Times))
	times := make([]string, 0, len(input.Times))
	for _, t := range input.Times {
		if _, err := time.Parse("15:04", t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "times must be HH:MM", "details": t})
			return
		}
		if !seen[t] {
			seen[t] = true
			times = append(times, t)
		}
	}
	sort.Strings(times)

	record := &models.Availability{Date: input.Date, Times: times}
	if err := h.Repo.Upsert(c.Request.Context(), record); err != nil {
		h.Logger.Error("failed to save availability", zap.Error(err), zap.String("date", input.Date))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save availability"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes the availability record for a date, making it unbookable.
func (h *AdminAvailabilityHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("date")); err != nil {
		h.Logger.Error("failed to delete availability", zap.Error(err), zap.String("date", c.Param("date")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
