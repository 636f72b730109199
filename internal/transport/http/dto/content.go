package dto

import "github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

type CountersResponse struct {
	Views                 int64   `json:"views"`
	HelpfulCount          int64   `json:"helpful_count"`
	NotHelpfulCount       int64   `json:"not_helpful_count"`
	HelpfulnessPercentage float64 `json:"helpfulness_percentage"`
}

func NewCountersResponse(c models.Counters) CountersResponse {
	return CountersResponse{
		Views:                 c.Views,
		HelpfulCount:          c.HelpfulCount,
		NotHelpfulCount:       c.NotHelpfulCount,
		HelpfulnessPercentage: c.HelpfulnessPercentage(),
	}
}

// FeedbackRequest is the body of every .../feedback endpoint.
type FeedbackRequest struct {
	IsHelpful *bool  `json:"is_helpful" validate:"required"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type FeedbackInput struct {
	Kind      models.ContentKind
	Slug      string
	IsHelpful *bool
	Comment   string
	IPAddress string
}

type ViewsResponse struct {
	Views int64 `json:"views"`
}

type RecentContentResponse struct {
	RecentBlogs []BlogPostSummary `json:"recent_blogs"`
	RecentFAQs  []FAQSummary      `json:"recent_faqs"`
}

// ResetCountersRequest selects the item whose counters are zeroed.
type ResetCountersRequest struct {
	Kind models.ContentKind `json:"kind" validate:"required,oneof=blog faq review"`
	Slug string             `json:"slug" validate:"required"`
}
