package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FAQPriority string

const (
	PriorityLow    FAQPriority = "low"
	PriorityMedium FAQPriority = "medium"
	PriorityHigh   FAQPriority = "high"
)

type FAQCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	FAQCount    int       `json:"faq_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type FAQ struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	Question        string       `db:"question" json:"question"`
	Slug            string       `db:"slug" json:"slug"`
	Answer          string       `db:"answer" json:"answer"`
	ShortAnswer     string       `db:"short_answer" json:"short_answer"`
	CategoryID      uuid.UUID    `db:"category_id" json:"category_id"`
	Category        *FAQCategory `json:"category,omitempty"`
	Priority        FAQPriority  `db:"priority" json:"priority"`
	Tags            string       `db:"tags" json:"tags"`
	IsPublished     bool         `db:"is_published" json:"is_published"`
	IsFeatured      bool         `db:"is_featured" json:"is_featured"`
	Order           int          `db:"sort_order" json:"order"`
	AuthorName      string       `db:"author_name" json:"author_name,omitempty"`
	AuthorBio       string       `db:"author_bio" json:"author_bio,omitempty"`
	MetaTitle       string       `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription string       `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    string       `db:"meta_keywords" json:"meta_keywords,omitempty"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
	Counters
}

// TagsList splits the comma separated tags, dropping blanks.
func (f FAQ) TagsList() []string {
	if strings.TrimSpace(f.Tags) == "" {
		return []string{}
	}

	parts := strings.Split(f.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type FAQFilter struct {
	CategorySlug string
	Priority     FAQPriority
	FeaturedOnly bool
	Search       string
	// Ordering is one of created_at, views, helpful_count, optionally prefixed with "-".
	Ordering string
	Limit    int
	Page     int
	PerPage  int
}
