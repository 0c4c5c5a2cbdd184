// File: services/notification/queue.go
package notification

import (
	"encoding/json"
	"fmt"

	"terravista/config"
	"terravista/models"

	"github.com/hibiken/asynq"
)

// Task types processed by the email worker.
const (
	TypeBookingEmail      = "email:booking"
	TypeConfirmationEmail = "email:confirmation"
	TypeRejectionEmail    = "email:rejection"
)

// AsynqQueue implements Queue on top of an asynq client. Tasks are retried
// by the worker with asynq's default backoff, which is the durable
// replacement for an inline fire-and-forget send.
type AsynqQueue struct {
	client *asynq.Client
}

// NewAsynqQueue builds the queue client from the application configuration.
func NewAsynqQueue() *AsynqQueue {
	return &AsynqQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// Close releases the underlying asynq client.
func (q *AsynqQueue) Close() error {
	return q.client.Close()
}

func (q *AsynqQueue) enqueue(taskType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}
	if _, err := q.client.Enqueue(asynq.NewTask(taskType, data), asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", taskType, err)
	}
	return nil
}

func (q *AsynqQueue) EnqueueBooking(p models.BookingEmailPayload) error {
	return q.enqueue(TypeBookingEmail, p)
}

func (q *AsynqQueue) EnqueueConfirmation(p models.ConfirmationEmailPayload) error {
	return q.enqueue(TypeConfirmationEmail, p)
}

func (q *AsynqQueue) EnqueueRejection(p models.RejectionEmailPayload) error {
	return q.enqueue(TypeRejectionEmail, p)
}
