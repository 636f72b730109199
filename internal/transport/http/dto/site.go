package dto

import (
	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Email       string             `json:"email" validate:"required,email,max=254"`
	Phone       string             `json:"phone,omitempty" validate:"max=20"`
	InquiryType models.InquiryType `json:"inquiry_type,omitempty" validate:"omitempty,oneof=general support partnership media feedback other"`
	Subject     string             `json:"subject,omitempty" validate:"max=200"`
	Message     string             `json:"message" validate:"required"`
}

type ContactResponse struct {
	ID         uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Message    string    `json:"message"`
	EmailError string    `json:"email_error,omitempty"`
}

type ContactListResponse struct {
	Submissions []models.ContactSubmission `json:"submissions"`
	TotalCount  int                        `json:"total_count"`
	Page        int                        `json:"page"`
	PerPage     int                        `json:"per_page"`
}

// QuotesImportRequest carries pasted admin text. Lines that do not parse are skipped.
type QuotesImportRequest struct {
	StatesText string `json:"states_text"`
	FAQsText   string `json:"faqs_text"`
}

type QuotesImportResponse struct {
	States int `json:"states"`
	FAQs   int `json:"faqs"`
}
