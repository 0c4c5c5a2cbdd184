package handlers

import (
	"net/http"

	"terravista/models"
	"terravista/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotifyHandler exposes the transactional email endpoints. Delivery goes
// through the retry queue; the mailer is only used directly for the contact
// form, which has no persisted state to fall back on.
type NotifyHandler struct {
	Queue  notification.Queue
	Mailer notification.Mailer
	Logger *zap.Logger
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(queue notification.Queue, mailer notification.Mailer, logger *zap.Logger) *NotifyHandler {
	return &NotifyHandler{Queue: queue, Mailer: mailer, Logger: logger}
}

// SendNotification queues the office notification for a new booking.
func (h *NotifyHandler) SendNotification(c *gin.Context) {
	var payload models.BookingEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if payload.Name == "" || payload.Email == "" || payload.Date == "" || payload.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, date and time are required"})
		return
	}

	if err := h.Queue.EnqueueBooking(payload); err != nil {
		h.Logger.Error("failed to enqueue booking notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendConfirmation queues the visitor-facing confirmation email.
func (h *NotifyHandler) SendConfirmation(c *gin.Context) {
	var payload models.ConfirmationEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if payload.Email == "" || payload.Date == "" || payload.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, date and time are required"})
		return
	}

	if err := h.Queue.EnqueueConfirmation(payload); err != nil {
		h.Logger.Error("failed to enqueue confirmation email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send confirmation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendRejection queues the visitor-facing rejection email.
func (h *NotifyHandler) SendRejection(c *gin.Context) {
	var payload models.RejectionEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if payload.Email == "" || payload.Date == "" || payload.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, date and time are required"})
		return
	}

	if err := h.Queue.EnqueueRejection(payload); err != nil {
		h.Logger.Error("failed to enqueue rejection email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send rejection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Contact relays the public contact form to the office inbox. Nothing is
// persisted, so the send is synchronous and its failure is surfaced.
func (h *NotifyHandler) Contact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	if err := h.Mailer.SendContactMessage(c.Request.Context(), msg); err != nil {
		h.Logger.Error("failed to send contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
