// File: database/repository/content/interface.go
package contentRepo

import (
	"context"

	"terravista/database"
	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HeroSlideRepository gives access to the hero_slides collection.
type HeroSlideRepository interface {
	Create(ctx context.Context, s *models.HeroSlide) error
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.HeroSlide, error)
	// ListActive returns active slides ordered by sort_order ascending.
	ListActive(ctx context.Context) ([]models.HeroSlide, error)
	ListAll(ctx context.Context) ([]models.HeroSlide, error)
}

// BlogPostRepository gives access to the blog_posts collection.
type BlogPostRepository interface {
	Create(ctx context.Context, p *models.BlogPost) error
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// ListPublished returns published posts newest first.
	ListPublished(ctx context.Context, skip, limit int64) ([]models.BlogPost, int64, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
}

type mongoHeroSlideRepo struct {
	coll *mongo.Collection
}

type mongoBlogPostRepo struct {
	coll *mongo.Collection
}

// NewMongoHeroSlideRepo constructs a new MongoDB HeroSlideRepository.
func NewMongoHeroSlideRepo() HeroSlideRepository {
	repo := &mongoHeroSlideRepo{coll: database.DB().Collection("hero_slides")}
	repo.ensureIndexes()
	return repo
}

// NewMongoBlogPostRepo constructs a new MongoDB BlogPostRepository.
func NewMongoBlogPostRepo() BlogPostRepository {
	repo := &mongoBlogPostRepo{coll: database.DB().Collection("blog_posts")}
	repo.ensureIndexes()
	return repo
}
