// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	reservationRepo "terravista/database/repository/reservation"
	"terravista/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new wizard session, stores it in Redis and returns
// it together with the currently bookable dates.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context) (*models.BookingSession, []string, error) {
	session := models.NewBookingSession(uuid.New().String())

	dates, err := s.Resolver.BookableDates(ctx, time.Now(), s.HorizonDays)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookable dates: %w", err)
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, dates, nil
}

// GetSession loads a session by id.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SelectDate resolves the date's slots and advances the session to time
// selection. The date must be today or later and have at least one slot
// configured.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !validBookingDate(date, time.Now()) {
		return nil, ErrDateNotBookable
	}

	slots, err := s.Resolver.ResolveSlots(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, ErrDateNotBookable
	}

	if err := session.SelectDate(date, slots); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTime records the chosen slot and advances to the details stage.
func (s *DefaultBookingSessionService) SelectTime(ctx context.Context, sessionID, slotTime string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectTime(normalizeTime(slotTime)); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SaveDetails merges the contact/preference form into the session. It can be
// called repeatedly; partial input survives backward navigation.
func (s *DefaultBookingSessionService) SaveDetails(ctx context.Context, sessionID string, details models.BookingDetails) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.EnterDetails(details); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one stage backwards, keeping accumulated data.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Back()
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit validates the session, inserts the pending reservation and queues
// the office notification email. The insert alone decides success; a
// notification enqueue failure is logged and never surfaced. On insert
// failure the session stays in the details stage so the visitor can retry.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.Reservation, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.ValidateForSubmit(); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		Name:              session.Details.Name,
		Email:             session.Details.Email,
		Phone:             session.Details.Phone,
		Message:           session.Details.Message,
		Date:              session.Date,
		Time:              session.Time + ":00",
		Status:            models.ReservationPending,
		Budget:            session.Details.Budget,
		PropertyType:      session.Details.PropertyType,
		InvestmentType:    session.Details.InvestmentType,
		Reason:            session.Details.Reason,
		ReferralSource:    session.Details.ReferralSource,
		DesiredProperties: session.Details.DesiredProperties,
	}

	if err := s.ReservationRepo.Create(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	session.Stage = models.StageSubmitted
	if err := s.saveSession(ctx, session); err != nil {
		zap.L().Warn("failed to persist submitted session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	if err := s.Queue.EnqueueBooking(models.BookingEmailPayload{
		ReservationID:     res.ID,
		Name:              res.Name,
		Email:             res.Email,
		Phone:             res.Phone,
		Message:           res.Message,
		Date:              res.Date,
		Time:              res.SlotTime(),
		Budget:            res.Budget,
		PropertyType:      res.PropertyType,
		InvestmentType:    res.InvestmentType,
		Reason:            res.Reason,
		ReferralSource:    res.ReferralSource,
		DesiredProperties: res.DesiredProperties,
	}); err != nil {
		zap.L().Error("failed to enqueue booking notification", zap.String("reservationID", res.ID), zap.Error(err))
	}

	return res, nil
}

// CancelSession drops the session from Redis.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Sessions.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sessionKey(session.SessionID), data, s.SessionTTL); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}
