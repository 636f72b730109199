package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.InsuranceCompany), args.Error(1)
}

func (m *MockCompanyRepository) CompanyBySlug(ctx context.Context, slug string) (*models.InsuranceCompany, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsuranceCompany), args.Error(1)
}

func (m *MockCompanyRepository) ReviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.CompanyReview, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.CompanyReview), args.Error(1)
}

func (m *MockCompanyRepository) ReviewBySlug(ctx context.Context, slug string) (*models.CompanyReview, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyReview), args.Error(1)
}

func (m *MockCompanyRepository) GetOrCreateCompany(ctx context.Context, company models.InsuranceCompany) (models.InsuranceCompany, bool, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(models.InsuranceCompany), args.Bool(1), args.Error(2)
}

func (m *MockCompanyRepository) GetOrCreateReview(ctx context.Context, review models.CompanyReview) (bool, error) {
	args := m.Called(ctx, review)
	return args.Bool(0), args.Error(1)
}

func TestCompanyService_GetCompanyWithReviews(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(slog.Default(), repo)

	company := &models.InsuranceCompany{ID: uuid.New(), Name: "Panda Insurance", Slug: "panda-insurance"}
	repo.On("CompanyBySlug", ctx, "panda-insurance").Return(company, nil).Once()
	repo.On("ReviewsByCompany", ctx, company.ID).Return([]models.CompanyReview{
		{Title: "Panda Insurance 2025 Review", Counters: models.Counters{HelpfulCount: 1}},
	}, nil).Once()

	resp, err := svc.GetCompany(ctx, "panda-insurance")

	require.NoError(t, err)
	assert.Equal(t, "Panda Insurance", resp.Name)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, 100.0, resp.Reviews[0].HelpfulnessPercentage)
	repo.AssertExpectations(t)
}

func TestCompanyService_GetCompanyNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(slog.Default(), repo)

	repo.On("CompanyBySlug", ctx, "nope").Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetCompany(ctx, "nope")

	assert.True(t, errors.Is(err, storage.ErrNotFound))
	repo.AssertNotCalled(t, "ReviewsByCompany", mock.Anything, mock.Anything)
}

func TestCompanyService_ListHighRisk(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(slog.Default(), repo)

	repo.On("ListCompanies", ctx, models.CompanyFilter{HighRiskOnly: true}).
		Return([]models.InsuranceCompany{{Name: "Panda Insurance", IsHighRiskRecommended: true}}, nil).Once()

	got, err := svc.ListCompanies(ctx, models.CompanyFilter{HighRiskOnly: true})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
