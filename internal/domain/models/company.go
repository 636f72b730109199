package models

import (
	"time"

	"github.com/google/uuid"
)

type InsuranceCompany struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	Name                  string          `db:"name" json:"name"`
	Slug                  string          `db:"slug" json:"slug"`
	Description           string          `db:"description" json:"description"`
	Website               string          `db:"website" json:"website"`
	Phone                 string          `db:"phone" json:"phone"`
	Address               string          `db:"address" json:"address"`
	Logo                  string          `db:"logo" json:"logo,omitempty"`
	IsHighRiskRecommended bool            `db:"is_high_risk_recommended" json:"is_high_risk_recommended"`
	HighRiskBlurb         string          `db:"high_risk_blurb" json:"high_risk_blurb"`
	IsActive              bool            `db:"is_active" json:"is_active"`
	Order                 int             `db:"sort_order" json:"order"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`
	Reviews               []CompanyReview `json:"reviews,omitempty"`
}

type CompanyReview struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CompanyID       uuid.UUID `db:"company_id" json:"company"`
	CompanyName     string    `json:"company_name"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	Summary         string    `db:"summary" json:"summary"`
	Content         string    `db:"content" json:"content"`
	Rating          *int      `db:"rating" json:"rating,omitempty"`
	AuthorName      string    `db:"author_name" json:"author_name"`
	MetaTitle       string    `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription string    `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    string    `db:"meta_keywords" json:"meta_keywords,omitempty"`
	IsPublished     bool      `db:"is_published" json:"is_published"`
	PublishedAt     time.Time `db:"published_at" json:"published_at"`
	Counters
}

type CompanyFilter struct {
	HighRiskOnly bool
	Search       string
}
