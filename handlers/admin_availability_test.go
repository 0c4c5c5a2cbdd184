package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"terravista/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAvailabilityRepo serves availability records from memory for the
// admin listing.
type fakeAvailabilityRepo struct {
	records []models.Availability
}

func (f *fakeAvailabilityRepo) GetByDate(_ context.Context, date string) (*models.Availability, error) {
	for i := range f.records {
		if f.records[i].Date == date {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) ListFrom(_ context.Context, from string, limit int64) ([]models.Availability, error) {
	var out []models.Availability
	for _, r := range f.records {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if r.Date >= from && len(r.Times) > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListAllFrom(_ context.Context, from string) ([]models.Availability, error) {
	var out []models.Availability
	for _, r := range f.records {
		if r.Date >= from {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, a *models.Availability) error {
	for i := range f.records {
		if f.records[i].Date == a.Date {
			f.records[i] = *a
			return nil
		}
	}
	f.records = append(f.records, *a)
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, date string) error { return nil }

func (f *fakeAvailabilityRepo) DeleteBefore(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func TestAdminAvailabilityListIncludesEmptiedDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeAvailabilityRepo{records: []models.Availability{
		{Date: "2999-01-01", Times: []string{"09:00", "10:00"}},
		{Date: "2999-01-02", Times: []string{}},
	}}
	h := NewAdminAvailabilityHandler(repo, zap.NewNop())

	router := gin.New()
	router.GET("/api/admin/availability", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/availability", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// The zeroed-out date must still show up so it can be edited.
	assert.Contains(t, w.Body.String(), "2999-01-01")
	assert.Contains(t, w.Body.String(), "2999-01-02")
}
