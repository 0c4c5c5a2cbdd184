package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"terravista/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the admin reservation back office.
type ReservationHandler struct {
	Service reservation.LifecycleService
	Logger  *zap.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(svc reservation.LifecycleService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: svc, Logger: logger}
}

// List returns one page of reservations, optionally filtered by status.
func (h *ReservationHandler) List(c *gin.Context) {
	var page int64 = 1
	if v := c.Query("page"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page", "details": err.Error()})
			return
		}
		page = parsed
	}

	reservations, total, err := h.Service.List(c.Request.Context(), c.Query("status"), page)
	if err != nil {
		h.Logger.Error("failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "total": total, "page": page})
}

// Get returns a single reservation.
func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Confirm transitions a pending reservation to confirmed and queues the
// confirmation email. The meeting link is optional.
func (h *ReservationHandler) Confirm(c *gin.Context) {
	var input struct {
		MeetLink string `json:"meetLink"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.Confirm(c.Request.Context(), c.Param("id"), input.MeetLink)
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Reject cancels a reservation and queues the rejection email. Rejecting an
// already cancelled reservation succeeds without side effects.
func (h *ReservationHandler) Reject(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.Reject(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete removes a reservation record entirely.
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReservationHandler) lifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
	case errors.Is(err, reservation.ErrStaleTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("reservation operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reservation operation failed"})
	}
}
