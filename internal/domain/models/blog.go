package models

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryMain CategoryType = "main"
	CategorySub  CategoryType = "sub"
	CategoryNone CategoryType = "none"
)

type Category struct {
	ID         uuid.UUID    `db:"id" json:"id"`
	Name       string       `db:"name" json:"name"`
	Slug       string       `db:"slug" json:"slug"`
	Type       CategoryType `db:"type" json:"type"`
	ParentID   *uuid.UUID   `db:"parent_id" json:"parent_id,omitempty"`
	ParentSlug string       `json:"parent,omitempty"`
	ParentName string       `json:"parent_name,omitempty"`
}

type BlogPost struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Slug            string         `db:"slug" json:"slug"`
	CategoryID      *uuid.UUID     `db:"category_id" json:"category_id,omitempty"`
	Category        *Category      `json:"category,omitempty"`
	Summary         string         `db:"summary" json:"summary"`
	Content         string         `db:"content" json:"content"`
	FeatureImage    string         `db:"feature_image" json:"feature_image,omitempty"`
	VideoURL        string         `db:"video_url" json:"video_url,omitempty"`
	AuthorName      string         `db:"author_name" json:"author_name,omitempty"`
	AuthorBio       string         `db:"author_bio" json:"author_bio,omitempty"`
	AuthorImage     string         `db:"author_image" json:"author_image,omitempty"`
	MetaTitle       string         `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription string         `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    string         `db:"meta_keywords" json:"meta_keywords,omitempty"`
	IsPublished     bool           `db:"is_published" json:"is_published"`
	PublishedAt     time.Time      `db:"published_at" json:"published_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
	ChartData       map[string]any `db:"chart_data" json:"chart_data,omitempty"`
	Counters
}

// BlogPostFilter narrows the public post listing.
type BlogPostFilter struct {
	CategorySlug       string
	CategoryName       string
	ParentCategorySlug string
	ParentCategoryName string
	Search             string
	// Ordering is one of published_at, -published_at, views, -views.
	Ordering string
	Page     int
	PerPage  int
}

type CategoryFilter struct {
	Type       CategoryType
	ParentSlug string
	ParentName string
}
