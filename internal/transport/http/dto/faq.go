package dto

import (
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/google/uuid"
)

type FAQSummary struct {
	ID                    uuid.UUID          `json:"id" swaggertype:"string" format:"uuid"`
	Question              string             `json:"question"`
	Slug                  string             `json:"slug"`
	ShortAnswer           string             `json:"short_answer"`
	CategoryName          string             `json:"category_name"`
	CategorySlug          string             `json:"category_slug"`
	Priority              models.FAQPriority `json:"priority"`
	IsFeatured            bool               `json:"is_featured"`
	TagsList              []string           `json:"tags_list"`
	Views                 int64              `json:"views"`
	HelpfulCount          int64              `json:"helpful_count"`
	HelpfulnessPercentage float64            `json:"helpfulness_percentage"`
	CreatedAt             time.Time          `json:"created_at"`
}

func NewFAQSummary(f models.FAQ) FAQSummary {
	s := FAQSummary{
		ID:                    f.ID,
		Question:              f.Question,
		Slug:                  f.Slug,
		ShortAnswer:           f.ShortAnswer,
		Priority:              f.Priority,
		IsFeatured:            f.IsFeatured,
		TagsList:              f.TagsList(),
		Views:                 f.Views,
		HelpfulCount:          f.HelpfulCount,
		HelpfulnessPercentage: f.HelpfulnessPercentage(),
		CreatedAt:             f.CreatedAt,
	}
	if f.Category != nil {
		s.CategoryName = f.Category.Name
		s.CategorySlug = f.Category.Slug
	}
	return s
}

func NewFAQSummaries(faqs []models.FAQ) []FAQSummary {
	out := make([]FAQSummary, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, NewFAQSummary(f))
	}
	return out
}

type FAQResponse struct {
	models.FAQ
	TagsList              []string `json:"tags_list"`
	HelpfulnessPercentage float64  `json:"helpfulness_percentage"`
}

func NewFAQResponse(f models.FAQ) *FAQResponse {
	return &FAQResponse{FAQ: f, TagsList: f.TagsList(), HelpfulnessPercentage: f.HelpfulnessPercentage()}
}

type FAQListResponse struct {
	FAQs       []FAQSummary `json:"faqs"`
	TotalCount int          `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

type CreateFAQRequest struct {
	Question     string             `json:"question" validate:"required,min=5,max=300"`
	Slug         string             `json:"slug,omitempty" validate:"omitempty,max=300"`
	Answer       string             `json:"answer" validate:"required"`
	ShortAnswer  string             `json:"short_answer,omitempty" validate:"max=500"`
	CategorySlug string             `json:"category" validate:"required"`
	Priority     models.FAQPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Tags         string             `json:"tags,omitempty" validate:"max=500"`
	IsFeatured   bool               `json:"is_featured,omitempty"`
	Order        int                `json:"order,omitempty" validate:"min=0"`
	AuthorName   string             `json:"author_name,omitempty" validate:"max=100"`
}
