package models

import "time"

// Blog post status values.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// BlogPost is a single article. Slug is unique and URL-safe; PublishedAt is
// set only on the transition into published and never cleared afterwards.
type BlogPost struct {
	ID            string     `bson:"id" json:"id"`
	Title         string     `bson:"title" json:"title"`
	Slug          string     `bson:"slug" json:"slug"`
	Excerpt       string     `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content       string     `bson:"content" json:"content"`
	FeaturedImage string     `bson:"featured_image,omitempty" json:"featuredImage,omitempty"`
	Author        string     `bson:"author,omitempty" json:"author,omitempty"`
	Status        string     `bson:"status" json:"status"`
	Featured      bool       `bson:"featured" json:"featured"`
	PublishedAt   *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updatedAt"`
}
