package booking

import (
	"context"
	"time"

	availabilityRepo "terravista/database/repository/availability"
	propertyRepo "terravista/database/repository/property"
	reservationRepo "terravista/database/repository/reservation"
	"terravista/models"
	"terravista/services/notification"
)

// BookingService drives the multi-step consultation booking wizard.
type BookingService interface {
	StartSession(ctx context.Context) (*models.BookingSession, []string, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	SelectTime(ctx context.Context, sessionID, slotTime string) (*models.BookingSession, error)
	SaveDetails(ctx context.Context, sessionID string, details models.BookingDetails) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Reservation, error)
	CancelSession(ctx context.Context, sessionID string) error
	// SearchActiveProperties backs the desired-properties multi-select.
	SearchActiveProperties(ctx context.Context, term string) ([]models.Property, error)
}

// DefaultBookingSessionService implements BookingService on top of a Redis
// session store and the availability resolver.
type DefaultBookingSessionService struct {
	Resolver        *AvailabilityResolver
	ReservationRepo reservationRepo.ReservationRepository
	PropertyRepo    propertyRepo.PropertyRepository
	Sessions        SessionStore
	Queue           notification.Queue
	SessionTTL      time.Duration
	HorizonDays     int
}

// AvailabilityResolver computes bookable slots for a calendar date from the
// configured availability minus non-cancelled reservations.
type AvailabilityResolver struct {
	Availability availabilityRepo.AvailabilityRepository
	Reservations reservationRepo.ReservationRepository
}
