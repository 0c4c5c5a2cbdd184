package notification

import (
	"context"

	"terravista/models"
)

// Mailer delivers transactional email. Failures are never fatal to the
// operation that triggered the send.
type Mailer interface {
	SendBookingNotification(ctx context.Context, p models.BookingEmailPayload) error
	SendConfirmation(ctx context.Context, p models.ConfirmationEmailPayload) error
	SendRejection(ctx context.Context, p models.RejectionEmailPayload) error
	SendContactMessage(ctx context.Context, m models.ContactMessage) error
}

// Queue enqueues email work for asynchronous delivery with retry. The status
// change or reservation insert that triggered the email commits first; the
// queue only ever observes committed state.
type Queue interface {
	EnqueueBooking(p models.BookingEmailPayload) error
	EnqueueConfirmation(p models.ConfirmationEmailPayload) error
	EnqueueRejection(p models.RejectionEmailPayload) error
}
