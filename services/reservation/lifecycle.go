// File: services/reservation/lifecycle.go
package reservation

import (
	"context"
	"errors"
	"fmt"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the reservation id is unknown.
	ErrNotFound = errors.New("reservation not found")
	// ErrStaleTransition is returned when the reservation is no longer in the
	// status the transition requires, typically because another admin acted
	// on it concurrently.
	ErrStaleTransition = errors.New("reservation was modified by someone else, reload and retry")
)

// Confirm transitions a pending reservation to confirmed and queues the
// confirmation email. The status precondition in the update filter is the
// optimistic concurrency check: a concurrent confirm or reject makes this
// call fail with ErrStaleTransition instead of silently overwriting.
// The status change is the source of truth; email delivery is best-effort.
func (s *DefaultLifecycleService) Confirm(ctx context.Context, id, meetLink string) (*models.Reservation, error) {
	extra := bson.M{}
	if meetLink != "" {
		extra["meet_link"] = meetLink
	}

	matched, err := s.Repo.UpdateStatus(ctx, id, models.ReservationPending, models.ReservationConfirmed, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	if !matched {
		return nil, s.transitionConflict(ctx, id)
	}

	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}

	if err := s.Queue.EnqueueConfirmation(models.ConfirmationEmailPayload{
		ReservationID: res.ID,
		Name:          res.Name,
		Email:         res.Email,
		Date:          res.Date,
		Time:          res.SlotTime(),
		MeetLink:      meetLink,
	}); err != nil {
		zap.L().Error("failed to enqueue confirmation email",
			zap.String("reservationID", res.ID), zap.Error(err))
	}

	return res, nil
}

// Reject transitions a pending reservation to cancelled, recording the
// human-readable reason, and queues the rejection email. Rejecting an
// already-cancelled reservation is a no-op; the slot it held is already free.
func (s *DefaultLifecycleService) Reject(ctx context.Context, id, reason string) (*models.Reservation, error) {
	matched, err := s.Repo.UpdateStatus(ctx, id, models.ReservationPending, models.ReservationCancelled, bson.M{"cancel_reason": reason})
	if err != nil {
		return nil, fmt.Errorf("failed to reject reservation: %w", err)
	}

	res, gerr := s.Repo.GetByID(ctx, id)
	if gerr != nil {
		return nil, gerr
	}
	if res == nil {
		return nil, ErrNotFound
	}

	if !matched {
		if res.Status == models.ReservationCancelled {
			return res, nil
		}
		return nil, ErrStaleTransition
	}

	if err := s.Queue.EnqueueRejection(models.RejectionEmailPayload{
		ReservationID: res.ID,
		Name:          res.Name,
		Email:         res.Email,
		Date:          res.Date,
		Time:          res.SlotTime(),
		Reason:        reason,
	}); err != nil {
		zap.L().Error("failed to enqueue rejection email",
			zap.String("reservationID", res.ID), zap.Error(err))
	}

	return res, nil
}

// Delete removes a reservation unconditionally regardless of status. No
// email is sent.
func (s *DefaultLifecycleService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// Get fetches a single reservation.
func (s *DefaultLifecycleService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	return res, nil
}

// List returns one admin page of reservations, newest first.
func (s *DefaultLifecycleService) List(ctx context.Context, status string, page int64) ([]models.Reservation, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.Repo.List(ctx, status, (page-1)*ListPageSize, ListPageSize)
}

func (s *DefaultLifecycleService) transitionConflict(ctx context.Context, id string) error {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrNotFound
	}
	return ErrStaleTransition
}
