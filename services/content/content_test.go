package content

import (
	"context"
	"testing"
	"time"

	"terravista/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeSlideRepo struct {
	slides map[string]*models.HeroSlide
}

func newFakeSlideRepo() *fakeSlideRepo {
	return &fakeSlideRepo{slides: make(map[string]*models.HeroSlide)}
}

func (f *fakeSlideRepo) Create(_ context.Context, s *models.HeroSlide) error {
	if s.ID == "" {
		s.ID = "slide1"
	}
	f.slides[s.ID] = s
	return nil
}

func (f *fakeSlideRepo) Update(_ context.Context, id string, set bson.M) error {
	if s, ok := f.slides[id]; ok {
		if v, ok := set["title"]; ok {
			s.Title = v.(string)
		}
		if v, ok := set["highlight"]; ok {
			s.Highlight = v.(string)
		}
	}
	return nil
}

func (f *fakeSlideRepo) Delete(_ context.Context, id string) error {
	delete(f.slides, id)
	return nil
}

func (f *fakeSlideRepo) GetByID(_ context.Context, id string) (*models.HeroSlide, error) {
	if s, ok := f.slides[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeSlideRepo) ListActive(_ context.Context) ([]models.HeroSlide, error) {
	var out []models.HeroSlide
	for _, s := range f.slides {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlideRepo) ListAll(_ context.Context) ([]models.HeroSlide, error) {
	var out []models.HeroSlide
	for _, s := range f.slides {
		out = append(out, *s)
	}
	return out, nil
}

type fakePostRepo struct {
	posts map[string]*models.BlogPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.BlogPost)}
}

func (f *fakePostRepo) Create(_ context.Context, p *models.BlogPost) error {
	if p.ID == "" {
		p.ID = "post1"
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakePostRepo) Update(_ context.Context, id string, set bson.M) error {
	p, ok := f.posts[id]
	if !ok {
		return nil
	}
	if v, ok := set["status"]; ok {
		p.Status = v.(string)
	}
	if v, ok := set["slug"]; ok {
		p.Slug = v.(string)
	}
	if v, ok := set["published_at"]; ok {
		ts := v.(time.Time)
		p.PublishedAt = &ts
	}
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	if p, ok := f.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakePostRepo) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePostRepo) ListPublished(_ context.Context, _, _ int64) ([]models.BlogPost, int64, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		if p.Status == models.BlogPublished {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) ListAll(_ context.Context) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func newService() (*DefaultContentService, *fakeSlideRepo, *fakePostRepo) {
	slides := newFakeSlideRepo()
	posts := newFakePostRepo()
	return &DefaultContentService{Slides: slides, Posts: posts}, slides, posts
}

func TestCreateSlideValidatesHighlight(t *testing.T) {
	svc, _, _ := newService()

	err := svc.CreateSlide(context.Background(), &models.HeroSlide{
		Title:     "Find Your Dream Home",
		Highlight: "Dream Home",
	})
	assert.NoError(t, err)

	err = svc.CreateSlide(context.Background(), &models.HeroSlide{
		Title:     "Find Your Dream Home",
		Highlight: "Beach House",
	})
	assert.ErrorIs(t, err, ErrHighlightNotInTitle)
}

func TestCreateSlideEmptyHighlightIsAllowed(t *testing.T) {
	svc, _, _ := newService()
	err := svc.CreateSlide(context.Background(), &models.HeroSlide{Title: "Welcome"})
	assert.NoError(t, err)
}

func TestCreatePostGeneratesSlugAndStampsPublish(t *testing.T) {
	svc, _, _ := newService()

	post := &models.BlogPost{Title: "Buying Your First Apartment", Status: models.BlogPublished}
	require.NoError(t, svc.CreatePost(context.Background(), post))
	assert.Equal(t, "buying-your-first-apartment", post.Slug)
	require.NotNil(t, post.PublishedAt)
}

func TestCreatePostDraftHasNoPublishTimestamp(t *testing.T) {
	svc, _, _ := newService()

	post := &models.BlogPost{Title: "Draft Notes"}
	require.NoError(t, svc.CreatePost(context.Background(), post))
	assert.Equal(t, models.BlogDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	svc, _, _ := newService()

	first := &models.BlogPost{Title: "Market Report"}
	require.NoError(t, svc.CreatePost(context.Background(), first))

	err := svc.CreatePost(context.Background(), &models.BlogPost{Title: "Market Report"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdatePostStampsPublishOnlyOnce(t *testing.T) {
	svc, _, posts := newService()

	post := &models.BlogPost{Title: "Market Report"}
	require.NoError(t, svc.CreatePost(context.Background(), post))

	published, err := svc.UpdatePost(context.Background(), post.ID, &models.BlogPost{
		Title:  "Market Report",
		Slug:   "market-report",
		Status: models.BlogPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Re-saving an already published post keeps the original timestamp.
	again, err := svc.UpdatePost(context.Background(), post.ID, &models.BlogPost{
		Title:  "Market Report, Revised",
		Slug:   "market-report",
		Status: models.BlogPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstStamp, *again.PublishedAt)

	stored, _ := posts.GetByID(context.Background(), post.ID)
	assert.Equal(t, models.BlogPublished, stored.Status)
}

func TestPostBySlugHidesDrafts(t *testing.T) {
	svc, _, _ := newService()

	draft := &models.BlogPost{Title: "Hidden Draft"}
	require.NoError(t, svc.CreatePost(context.Background(), draft))

	_, err := svc.PostBySlug(context.Background(), draft.Slug)
	assert.ErrorIs(t, err, ErrNotFound)
}
