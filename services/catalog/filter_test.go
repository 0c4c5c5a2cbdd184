package catalog

import (
	"context"
	"fmt"
	"testing"

	"terravista/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name   string
		params FilterParams
		want   bson.M
	}{
		{
			name:   "no params only scopes status",
			params: FilterParams{},
			want:   bson.M{"status": bson.M{"$in": publicStatuses}},
		},
		{
			name:   "bedrooms is minimum inclusive",
			params: FilterParams{Bedrooms: 3},
			want: bson.M{
				"status":   bson.M{"$in": publicStatuses},
				"bedrooms": bson.M{"$gte": 3},
			},
		},
		{
			name:   "price range",
			params: FilterParams{MinPrice: 100000, MaxPrice: 250000},
			want: bson.M{
				"status": bson.M{"$in": publicStatuses},
				"price":  bson.M{"$gte": 100000.0, "$lte": 250000.0},
			},
		},
		{
			name:   "open-ended price range",
			params: FilterParams{MinPrice: 100000},
			want: bson.M{
				"status": bson.M{"$in": publicStatuses},
				"price":  bson.M{"$gte": 100000.0},
			},
		},
		{
			name:   "amenities require every tag",
			params: FilterParams{Amenities: []string{"pool", "garage"}},
			want: bson.M{
				"status":    bson.M{"$in": publicStatuses},
				"amenities": bson.M{"$all": []string{"pool", "garage"}},
			},
		},
		{
			name:   "furnished true",
			params: FilterParams{Furnished: boolPtr(true)},
			want: bson.M{
				"status":    bson.M{"$in": publicStatuses},
				"furnished": true,
			},
		},
		{
			name:   "furnished false is a real filter, not unset",
			params: FilterParams{Furnished: boolPtr(false)},
			want: bson.M{
				"status":    bson.M{"$in": publicStatuses},
				"furnished": false,
			},
		},
		{
			name:   "year range",
			params: FilterParams{MinYear: 1990, MaxYear: 2020},
			want: bson.M{
				"status":     bson.M{"$in": publicStatuses},
				"year_built": bson.M{"$gte": 1990, "$lte": 2020},
			},
		},
		{
			name:   "listing and property type",
			params: FilterParams{Type: models.PropertyForSale, PropertyType: "apartment"},
			want: bson.M{
				"status":        bson.M{"$in": publicStatuses},
				"type":          models.PropertyForSale,
				"property_type": "apartment",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilter(tt.params))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0))
	assert.Equal(t, int64(1), TotalPages(1))
	assert.Equal(t, int64(1), TotalPages(20))
	assert.Equal(t, int64(2), TotalPages(21))
	assert.Equal(t, int64(3), TotalPages(45))
}

// fakePropertyRepo serves a fixed slice, honoring skip and limit the way
// the real repository does.
type fakePropertyRepo struct {
	properties []models.Property
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.properties = append(f.properties, *p)
	return nil
}

func (f *fakePropertyRepo) Update(_ context.Context, _ string, _ bson.M) error { return nil }
func (f *fakePropertyRepo) Delete(_ context.Context, _ string) error           { return nil }

func (f *fakePropertyRepo) GetByID(_ context.Context, id string) (*models.Property, error) {
	for i := range f.properties {
		if f.properties[i].ID == id {
			p := f.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePropertyRepo) Find(_ context.Context, _ bson.M, _ bson.D, skip, limit int64) ([]models.Property, error) {
	if skip >= int64(len(f.properties)) {
		return nil, nil
	}
	end := skip + limit
	if end > int64(len(f.properties)) {
		end = int64(len(f.properties))
	}
	return f.properties[skip:end], nil
}

func (f *fakePropertyRepo) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.properties)), nil
}

func (f *fakePropertyRepo) ReplaceImages(_ context.Context, id string, images []string) error {
	for i := range f.properties {
		if f.properties[i].ID == id {
			f.properties[i].Images = images
		}
	}
	return nil
}

func TestListPagination(t *testing.T) {
	repo := &fakePropertyRepo{}
	for i := 0; i < 45; i++ {
		repo.properties = append(repo.properties, models.Property{
			ID:     fmt.Sprintf("p%02d", i),
			Status: models.PropertyStatusActive,
		})
	}
	svc := &DefaultCatalogService{Repo: repo}

	page, err := svc.List(context.Background(), FilterParams{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, int64(2), page.Page)
	assert.Equal(t, int64(3), page.TotalPages)
	require.Len(t, page.Properties, 20)
	assert.Equal(t, "p20", page.Properties[0].ID)
	assert.Equal(t, "p39", page.Properties[19].ID)
}

func TestListPageBeyondLast(t *testing.T) {
	repo := &fakePropertyRepo{properties: []models.Property{{ID: "p1", Status: models.PropertyStatusActive}}}
	svc := &DefaultCatalogService{Repo: repo}

	page, err := svc.List(context.Background(), FilterParams{Page: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Properties)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(5), page.Page)
}

func TestListDefaultsPageToOne(t *testing.T) {
	repo := &fakePropertyRepo{properties: []models.Property{{ID: "p1"}}}
	svc := &DefaultCatalogService{Repo: repo}

	page, err := svc.List(context.Background(), FilterParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Page)
	assert.Len(t, page.Properties, 1)
}

func TestSetCover(t *testing.T) {
	repo := &fakePropertyRepo{properties: []models.Property{
		{ID: "p1", Images: []string{"a", "b", "c"}},
	}}
	svc := &DefaultCatalogService{Repo: repo}

	updated, err := svc.SetCover(context.Background(), "p1", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, updated.Images)

	_, err = svc.SetCover(context.Background(), "p1", "zzz")
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = svc.SetCover(context.Background(), "missing", "a")
	assert.ErrorIs(t, err, ErrNotFound)
}
