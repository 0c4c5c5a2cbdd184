package content

import (
	"context"
	"errors"

	contentRepo "terravista/database/repository/content"
	"terravista/models"
)

var (
	// ErrNotFound is returned for unknown slide or post ids.
	ErrNotFound = errors.New("content not found")
	// ErrHighlightNotInTitle is returned when a hero slide highlight is not a
	// substring of its title.
	ErrHighlightNotInTitle = errors.New("highlight must be a substring of the title")
	// ErrSlugTaken is returned when a blog slug is already in use.
	ErrSlugTaken = errors.New("slug is already in use")
)

// BlogPageSize is the public blog listing page size.
const BlogPageSize int64 = 10

// ContentService manages hero slides and blog posts.
type ContentService interface {
	// Hero slides.
	ActiveSlides(ctx context.Context) ([]models.HeroSlide, error)
	AllSlides(ctx context.Context) ([]models.HeroSlide, error)
	CreateSlide(ctx context.Context, s *models.HeroSlide) error
	UpdateSlide(ctx context.Context, id string, s *models.HeroSlide) (*models.HeroSlide, error)
	DeleteSlide(ctx context.Context, id string) error

	// Blog posts.
	PublishedPosts(ctx context.Context, page int64) ([]models.BlogPost, int64, error)
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	AllPosts(ctx context.Context) ([]models.BlogPost, error)
	CreatePost(ctx context.Context, p *models.BlogPost) error
	UpdatePost(ctx context.Context, id string, p *models.BlogPost) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

// DefaultContentService implements ContentService.
type DefaultContentService struct {
	Slides contentRepo.HeroSlideRepository
	Posts  contentRepo.BlogPostRepository
}
