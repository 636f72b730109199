package dto

import (
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/google/uuid"
)

type BlogPostSummary struct {
	ID                    uuid.UUID        `json:"id" swaggertype:"string" format:"uuid"`
	Title                 string           `json:"title"`
	Slug                  string           `json:"slug"`
	Category              *models.Category `json:"category,omitempty"`
	Summary               string           `json:"summary"`
	FeatureImage          string           `json:"feature_image,omitempty"`
	AuthorName            string           `json:"author_name,omitempty"`
	PublishedAt           time.Time        `json:"published_at"`
	Views                 int64            `json:"views"`
	HelpfulnessPercentage float64          `json:"helpfulness_percentage"`
}

func NewBlogPostSummary(p models.BlogPost) BlogPostSummary {
	return BlogPostSummary{
		ID:                    p.ID,
		Title:                 p.Title,
		Slug:                  p.Slug,
		Category:              p.Category,
		Summary:               p.Summary,
		FeatureImage:          p.FeatureImage,
		AuthorName:            p.AuthorName,
		PublishedAt:           p.PublishedAt,
		Views:                 p.Views,
		HelpfulnessPercentage: p.HelpfulnessPercentage(),
	}
}

type BlogPostResponse struct {
	models.BlogPost
	HelpfulnessPercentage float64 `json:"helpfulness_percentage"`
}

func NewBlogPostResponse(p models.BlogPost) *BlogPostResponse {
	return &BlogPostResponse{BlogPost: p, HelpfulnessPercentage: p.HelpfulnessPercentage()}
}

type BlogPostListResponse struct {
	Posts      []BlogPostSummary `json:"posts"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

type CreateBlogPostRequest struct {
	Title           string         `json:"title" validate:"required,min=3,max=200"`
	Slug            string         `json:"slug,omitempty" validate:"omitempty,max=200"`
	CategorySlug    string         `json:"category,omitempty"`
	Summary         string         `json:"summary,omitempty"`
	Content         string         `json:"content" validate:"required"`
	FeatureImage    string         `json:"feature_image,omitempty" validate:"omitempty,url"`
	VideoURL        string         `json:"video_url,omitempty" validate:"omitempty,url"`
	AuthorName      string         `json:"author_name,omitempty" validate:"max=100"`
	AuthorBio       string         `json:"author_bio,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty" validate:"max=200"`
	MetaDescription string         `json:"meta_description,omitempty" validate:"max=300"`
	MetaKeywords    string         `json:"meta_keywords,omitempty" validate:"max=300"`
	IsPublished     *bool          `json:"is_published,omitempty"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	ChartData       map[string]any `json:"chart_data,omitempty"`
}
