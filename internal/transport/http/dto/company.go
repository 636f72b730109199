package dto

import "github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

type ReviewResponse struct {
	models.CompanyReview
	HelpfulnessPercentage float64 `json:"helpfulness_percentage"`
}

func NewReviewResponse(r models.CompanyReview) ReviewResponse {
	return ReviewResponse{CompanyReview: r, HelpfulnessPercentage: r.HelpfulnessPercentage()}
}

func NewReviewResponses(reviews []models.CompanyReview) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r))
	}
	return out
}

type CompanyDetailResponse struct {
	models.InsuranceCompany
	Reviews []ReviewResponse `json:"reviews"`
}
