package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"terravista/config"
	"terravista/models"
	"terravista/services/notification"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background. Queued sends
// are retried with asynq's backoff; a send that keeps failing ends up in the
// dead queue without ever affecting the reservation it belongs to.
func InitEmailWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingEmail, handleBookingEmail(mailer))
	mux.HandleFunc(notification.TypeConfirmationEmail, handleConfirmationEmail(mailer))
	mux.HandleFunc(notification.TypeRejectionEmail, handleRejectionEmail(mailer))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingEmail(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid booking payload: %v", err)
			return err
		}
		if err := mailer.SendBookingNotification(ctx, p); err != nil {
			log.Printf("[EmailWorker] booking notification for %s failed: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}

func handleConfirmationEmail(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid confirmation payload: %v", err)
			return err
		}
		if err := mailer.SendConfirmation(ctx, p); err != nil {
			log.Printf("[EmailWorker] confirmation for %s failed: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}

func handleRejectionEmail(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.RejectionEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid rejection payload: %v", err)
			return err
		}
		if err := mailer.SendRejection(ctx, p); err != nil {
			log.Printf("[EmailWorker] rejection for %s failed: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}
