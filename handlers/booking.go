package handlers

import (
	"errors"
	"net/http"

	"terravista/models"
	"terravista/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the consultation booking wizard.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession creates a new wizard session and returns the bookable dates.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, dates, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID":     session.SessionID,
		"stage":         session.Stage,
		"bookableDates": dates,
	})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDate records the chosen date and returns that date's slots, taken
// ones included but flagged, so the client can render them disabled.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectTime records the chosen slot.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SaveDetails merges the contact/preference form into the session.
func (h *BookingHandler) SaveDetails(c *gin.Context) {
	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SaveDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back moves the wizard one stage backwards without losing entered data.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit creates the pending reservation from the session.
func (h *BookingHandler) Submit(c *gin.Context) {
	reservation, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CancelSession abandons the wizard.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SearchProperties backs the desired-properties multi-select sub-flow.
func (h *BookingHandler) SearchProperties(c *gin.Context) {
	properties, err := h.Service.SearchActiveProperties(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Logger.Error("property search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search properties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

func (h *BookingHandler) bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrDateNotBookable),
		errors.Is(err, models.ErrSlotNotOffered),
		errors.Is(err, models.ErrSlotBooked),
		errors.Is(err, models.ErrWrongStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed, please try again"})
	}
}
