package content

import (
	"context"
	"fmt"

	"terravista/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultContentService) ActiveSlides(ctx context.Context) ([]models.HeroSlide, error) {
	return s.Slides.ListActive(ctx)
}

func (s *DefaultContentService) AllSlides(ctx context.Context) ([]models.HeroSlide, error) {
	return s.Slides.ListAll(ctx)
}

// CreateSlide validates the highlight before inserting. The frontend can
// only emphasize a literal substring of the title, so anything else is
// rejected rather than stored dead.
func (s *DefaultContentService) CreateSlide(ctx context.Context, slide *models.HeroSlide) error {
	if !slide.HighlightValid() {
		return ErrHighlightNotInTitle
	}
	return s.Slides.Create(ctx, slide)
}

func (s *DefaultContentService) UpdateSlide(ctx context.Context, id string, slide *models.HeroSlide) (*models.HeroSlide, error) {
	if !slide.HighlightValid() {
		return nil, ErrHighlightNotInTitle
	}

	set := bson.M{
		"image":      slide.Image,
		"title":      slide.Title,
		"highlight":  slide.Highlight,
		"subtitle":   slide.Subtitle,
		"active":     slide.Active,
		"sort_order": slide.SortOrder,
	}
	if err := s.Slides.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("failed to update hero slide: %w", err)
	}

	updated, err := s.Slides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *DefaultContentService) DeleteSlide(ctx context.Context, id string) error {
	return s.Slides.Delete(ctx, id)
}
