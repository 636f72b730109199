package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
)

type CompanyService struct {
	log  *slog.Logger
	repo repository.CompanyRepository
}

func NewCompanyService(log *slog.Logger, repo repository.CompanyRepository) *CompanyService {
	return &CompanyService{log: log, repo: repo}
}

func (s *CompanyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error) {
	const op = "company_service.ListCompanies"

	companies, err := s.repo.ListCompanies(ctx, filter)
	if err != nil {
		s.log.Error("failed to list companies", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return companies, nil
}

// GetCompany returns an active company with its published reviews.
func (s *CompanyService) GetCompany(ctx context.Context, slug string) (*dto.CompanyDetailResponse, error) {
	const op = "company_service.GetCompany"

	company, err := s.repo.CompanyBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.repo.ReviewsByCompany(ctx, company.ID)
	if err != nil {
		s.log.Error("failed to load reviews", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.CompanyDetailResponse{
		InsuranceCompany: *company,
		Reviews:          dto.NewReviewResponses(reviews),
	}, nil
}

func (s *CompanyService) CompanyReviews(ctx context.Context, companySlug string) ([]dto.ReviewResponse, error) {
	const op = "company_service.CompanyReviews"

	company, err := s.repo.CompanyBySlug(ctx, companySlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.repo.ReviewsByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.NewReviewResponses(reviews), nil
}

func (s *CompanyService) GetReview(ctx context.Context, slug string) (*dto.ReviewResponse, error) {
	const op = "company_service.GetReview"

	review, err := s.repo.ReviewBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.NewReviewResponse(*review)
	return &resp, nil
}
