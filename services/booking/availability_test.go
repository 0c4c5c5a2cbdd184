package booking

import (
	"context"
	"testing"
	"time"

	reservationRepo "terravista/database/repository/reservation"
	"terravista/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeAvailabilityRepo serves availability records from memory, ordered by
// date as the real repository does.
type fakeAvailabilityRepo struct {
	records map[string]*models.Availability
	order   []string
}

func newFakeAvailabilityRepo(records ...*models.Availability) *fakeAvailabilityRepo {
	f := &fakeAvailabilityRepo{records: make(map[string]*models.Availability)}
	for _, r := range records {
		f.records[r.Date] = r
		f.order = append(f.order, r.Date)
	}
	return f
}

func (f *fakeAvailabilityRepo) GetByDate(_ context.Context, date string) (*models.Availability, error) {
	return f.records[date], nil
}

func (f *fakeAvailabilityRepo) ListFrom(_ context.Context, from string, limit int64) ([]models.Availability, error) {
	var out []models.Availability
	for _, d := range f.order {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if d >= from && len(f.records[d].Times) > 0 {
			out = append(out, *f.records[d])
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListAllFrom(_ context.Context, from string) ([]models.Availability, error) {
	var out []models.Availability
	for _, d := range f.order {
		if d >= from {
			out = append(out, *f.records[d])
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, a *models.Availability) error {
	if _, ok := f.records[a.Date]; !ok {
		f.order = append(f.order, a.Date)
	}
	f.records[a.Date] = a
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, date string) error {
	delete(f.records, date)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteBefore(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

// fakeReservationRepo holds reservations in memory and mimics the unique
// slot constraint of the real collection.
type fakeReservationRepo struct {
	reservations []models.Reservation
	createErr    error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	for i := range f.reservations {
		r := &f.reservations[i]
		if r.Date == res.Date && r.SlotTime() == res.SlotTime() && r.Status != models.ReservationCancelled {
			return reservationRepo.ErrSlotTaken
		}
	}
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeReservationRepo) GetActiveByDate(_ context.Context, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for i := range f.reservations {
		if f.reservations[i].Date == date && f.reservations[i].Status != models.ReservationCancelled {
			out = append(out, f.reservations[i])
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string, _ bson.M) (bool, error) {
	for i := range f.reservations {
		r := &f.reservations[i]
		if r.ID == id && r.Status == fromStatus {
			r.Status = toStatus
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) List(_ context.Context, status string, _, _ int64) ([]models.Reservation, int64, error) {
	var out []models.Reservation
	for i := range f.reservations {
		if status == "" || f.reservations[i].Status == status {
			out = append(out, f.reservations[i])
		}
	}
	return out, int64(len(out)), nil
}

func newResolver(avail *fakeAvailabilityRepo, res *fakeReservationRepo) *AvailabilityResolver {
	return &AvailabilityResolver{Availability: avail, Reservations: res}
}

func TestResolveSlotsExcludesActiveReservations(t *testing.T) {
	avail := newFakeAvailabilityRepo(&models.Availability{
		Date:  "2026-09-10",
		Times: []string{"09:00", "10:00", "11:00"},
	})
	res := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", Date: "2026-09-10", Time: "10:00:00", Status: models.ReservationPending},
	}}

	slots, err := newResolver(avail, res).ResolveSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, []models.SlotView{
		{Time: "09:00"},
		{Time: "10:00", Booked: true},
		{Time: "11:00"},
	}, slots)

	open, err := newResolver(avail, res).OpenTimes(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, open)
}

func TestResolveSlotsIgnoresCancelledReservations(t *testing.T) {
	avail := newFakeAvailabilityRepo(&models.Availability{
		Date:  "2026-09-10",
		Times: []string{"09:00", "10:00", "11:00"},
	})
	res := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", Date: "2026-09-10", Time: "10:00:00", Status: models.ReservationCancelled},
	}}

	open, err := newResolver(avail, res).OpenTimes(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, open)
}

func TestResolveSlotsUnknownDate(t *testing.T) {
	resolver := newResolver(newFakeAvailabilityRepo(), &fakeReservationRepo{})
	slots, err := resolver.ResolveSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBookableDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	avail := newFakeAvailabilityRepo(
		&models.Availability{Date: "2026-09-05", Times: []string{"09:00"}},
		&models.Availability{Date: "2026-09-06", Times: nil},
		&models.Availability{Date: "2026-09-07", Times: []string{"09:00", "10:00"}},
		&models.Availability{Date: "2027-01-01", Times: []string{"09:00"}},
	)
	// The only slot on the 5th is taken, so the whole date drops out.
	res := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", Date: "2026-09-05", Time: "09:00:00", Status: models.ReservationConfirmed},
	}}

	dates, err := newResolver(avail, res).BookableDates(context.Background(), now, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-07"}, dates)
}

func TestBookableDatesFullCalendarIncludesLastDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	// Every date in the inclusive three-day window is configured and open.
	avail := newFakeAvailabilityRepo(
		&models.Availability{Date: "2026-09-01", Times: []string{"09:00"}},
		&models.Availability{Date: "2026-09-02", Times: []string{"09:00"}},
		&models.Availability{Date: "2026-09-03", Times: []string{"09:00"}},
		&models.Availability{Date: "2026-09-04", Times: []string{"09:00"}},
		&models.Availability{Date: "2026-09-05", Times: []string{"09:00"}},
	)

	dates, err := newResolver(avail, &fakeReservationRepo{}).BookableDates(context.Background(), now, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04"}, dates)
}

func TestValidBookingDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
	assert.True(t, validBookingDate("2026-09-01", now))
	assert.True(t, validBookingDate("2026-09-02", now))
	assert.False(t, validBookingDate("2026-08-31", now))
	assert.False(t, validBookingDate("not-a-date", now))
}
