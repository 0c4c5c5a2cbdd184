package models

import (
	"strings"
	"time"
)

// HeroSlide is a slide in the landing-page hero carousel. Image holds a
// storage key. Highlight must be a literal substring of Title; the frontend
// wraps that substring for emphasis.
type HeroSlide struct {
	ID        string    `bson:"id" json:"id"`
	Image     string    `bson:"image" json:"image"`
	Title     string    `bson:"title" json:"title"`
	Highlight string    `bson:"highlight,omitempty" json:"highlight,omitempty"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	SortOrder int       `bson:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HighlightValid reports whether the highlight, when set, actually occurs in
// the title.
func (h *HeroSlide) HighlightValid() bool {
	return h.Highlight == "" || strings.Contains(h.Title, h.Highlight)
}
