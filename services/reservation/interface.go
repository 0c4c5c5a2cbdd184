package reservation

import (
	"context"

	reservationRepo "terravista/database/repository/reservation"
	"terravista/models"
	"terravista/services/notification"
)

// LifecycleService transitions reservations between pending, confirmed and
// cancelled, and dispatches the matching emails. All operations are
// admin-only; the route group enforces that.
type LifecycleService interface {
	Confirm(ctx context.Context, id, meetLink string) (*models.Reservation, error)
	Reject(ctx context.Context, id, reason string) (*models.Reservation, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, status string, page int64) ([]models.Reservation, int64, error)
}

// DefaultLifecycleService implements LifecycleService.
type DefaultLifecycleService struct {
	Repo  reservationRepo.ReservationRepository
	Queue notification.Queue
}

// ListPageSize is the admin reservation list page size.
const ListPageSize int64 = 20
