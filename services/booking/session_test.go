package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"terravista/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore keeps sessions in a map. Get mirrors the Redis client by
// returning an error for missing keys.
type fakeSessionStore struct {
	data map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string]string)}
}

func (f *fakeSessionStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (f *fakeSessionStore) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	f.data[key] = string(data)
	return nil
}

func (f *fakeSessionStore) Del(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type captureQueue struct {
	bookings []models.BookingEmailPayload
}

func (q *captureQueue) EnqueueBooking(p models.BookingEmailPayload) error {
	q.bookings = append(q.bookings, p)
	return nil
}

func (q *captureQueue) EnqueueConfirmation(models.ConfirmationEmailPayload) error { return nil }
func (q *captureQueue) EnqueueRejection(models.RejectionEmailPayload) error       { return nil }

func seedSession(t *testing.T, store *fakeSessionStore, session *models.BookingSession) {
	t.Helper()
	data, err := json.Marshal(session)
	require.NoError(t, err)
	store.data[sessionKey(session.SessionID)] = string(data)
}

func readySession(id string) *models.BookingSession {
	return &models.BookingSession{
		SessionID: id,
		Stage:     models.StageEnteringDetails,
		Date:      "2026-09-10",
		Time:      "10:00",
		Slots:     []models.SlotView{{Time: "10:00"}},
		Details: models.BookingDetails{
			Name:  "Carla Mendez",
			Email: "carla@example.com",
			Phone: "+34600111222",
		},
	}
}

func submitService(store *fakeSessionStore, res *fakeReservationRepo, queue *captureQueue) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Resolver:        newResolver(newFakeAvailabilityRepo(), res),
		ReservationRepo: res,
		Sessions:        store,
		Queue:           queue,
		SessionTTL:      time.Hour,
		HorizonDays:     60,
	}
}

func TestSubmitCreatesPendingReservation(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, readySession("s1"))
	res := &fakeReservationRepo{}
	queue := &captureQueue{}
	svc := submitService(store, res, queue)

	created, err := svc.Submit(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, created.Status)
	assert.Equal(t, "2026-09-10", created.Date)
	assert.Equal(t, "10:00:00", created.Time)

	require.Len(t, res.reservations, 1)

	stored, err := svc.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StageSubmitted, stored.Stage)

	require.Len(t, queue.bookings, 1)
	assert.Equal(t, "Carla Mendez", queue.bookings[0].Name)
	assert.Equal(t, "10:00", queue.bookings[0].Time)
}

func TestSubmitSlotConflictKeepsSessionRetryable(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, readySession("s1"))
	res := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", Date: "2026-09-10", Time: "10:00:00", Status: models.ReservationConfirmed},
	}}
	queue := &captureQueue{}
	svc := submitService(store, res, queue)

	_, err := svc.Submit(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, queue.bookings)

	stored, err := svc.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StageEnteringDetails, stored.Stage)
}

func TestSubmitInsertFailure(t *testing.T) {
	store := newFakeSessionStore()
	seedSession(t, store, readySession("s1"))
	res := &fakeReservationRepo{createErr: errors.New("write timeout")}
	queue := &captureQueue{}
	svc := submitService(store, res, queue)

	_, err := svc.Submit(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, queue.bookings)

	stored, err := svc.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StageEnteringDetails, stored.Stage)
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := submitService(newFakeSessionStore(), &fakeReservationRepo{}, &captureQueue{})

	_, err := svc.Submit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
