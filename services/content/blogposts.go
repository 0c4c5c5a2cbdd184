package content

import (
	"context"
	"fmt"
	"time"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultContentService) PublishedPosts(ctx context.Context, page int64) ([]models.BlogPost, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.Posts.ListPublished(ctx, (page-1)*BlogPageSize, BlogPageSize)
}

func (s *DefaultContentService) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != models.BlogPublished {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *DefaultContentService) AllPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.Posts.ListAll(ctx)
}

// CreatePost derives a slug from the title when none is given, enforces slug
// uniqueness, and stamps published_at when the post is born published.
func (s *DefaultContentService) CreatePost(ctx context.Context, post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	} else {
		post.Slug = Slugify(post.Slug)
	}

	taken, err := s.Posts.SlugExists(ctx, post.Slug, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}

	if post.Status == "" {
		post.Status = models.BlogDraft
	}
	if post.Status == models.BlogPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	return s.Posts.Create(ctx, post)
}

// UpdatePost applies edits and sets published_at only on the transition from
// draft into published; re-saving an already published post keeps the
// original timestamp.
func (s *DefaultContentService) UpdatePost(ctx context.Context, id string, post *models.BlogPost) (*models.BlogPost, error) {
	current, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	slug := Slugify(post.Slug)
	if slug == "" {
		slug = Slugify(post.Title)
	}
	taken, err := s.Posts.SlugExists(ctx, slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	set := bson.M{
		"title":          post.Title,
		"slug":           slug,
		"excerpt":        post.Excerpt,
		"content":        post.Content,
		"featured_image": post.FeaturedImage,
		"author":         post.Author,
		"status":         post.Status,
		"featured":       post.Featured,
	}
	if post.Status == models.BlogPublished && current.Status != models.BlogPublished {
		set["published_at"] = time.Now().UTC()
	}

	if err := s.Posts.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return s.Posts.GetByID(ctx, id)
}

func (s *DefaultContentService) DeletePost(ctx context.Context, id string) error {
	return s.Posts.Delete(ctx, id)
}
