package http_test

import (
	"context"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockBlogService) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockBlogService) ListStates(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockBlogService) ListPosts(ctx context.Context, filter models.BlogPostFilter) (*dto.BlogPostListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostListResponse), args.Error(1)
}

func (m *MockBlogService) GetPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostResponse), args.Error(1)
}

func (m *MockBlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostResponse), args.Error(1)
}

type MockFAQService struct {
	mock.Mock
}

func (m *MockFAQService) ListCategories(ctx context.Context) ([]models.FAQCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FAQCategory), args.Error(1)
}

func (m *MockFAQService) GetCategory(ctx context.Context, slug string) (*models.FAQCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FAQCategory), args.Error(1)
}

func (m *MockFAQService) CategoryFAQs(ctx context.Context, slug string) ([]dto.FAQSummary, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).([]dto.FAQSummary), args.Error(1)
}

func (m *MockFAQService) ListFAQs(ctx context.Context, filter models.FAQFilter) (*dto.FAQListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FAQListResponse), args.Error(1)
}

func (m *MockFAQService) GetFAQ(ctx context.Context, slug string) (*dto.FAQResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FAQResponse), args.Error(1)
}

func (m *MockFAQService) Featured(ctx context.Context) ([]dto.FAQSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.FAQSummary), args.Error(1)
}

func (m *MockFAQService) Recent(ctx context.Context, limit int) ([]dto.FAQSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]dto.FAQSummary), args.Error(1)
}

func (m *MockFAQService) Popular(ctx context.Context, limit int) ([]dto.FAQSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]dto.FAQSummary), args.Error(1)
}

func (m *MockFAQService) Search(ctx context.Context, q string) ([]dto.FAQSummary, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]dto.FAQSummary), args.Error(1)
}

func (m *MockFAQService) CreateFAQ(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FAQResponse), args.Error(1)
}

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.InsuranceCompany), args.Error(1)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, slug string) (*dto.CompanyDetailResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CompanyDetailResponse), args.Error(1)
}

func (m *MockCompanyService) CompanyReviews(ctx context.Context, companySlug string) ([]dto.ReviewResponse, error) {
	args := m.Called(ctx, companySlug)
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockCompanyService) GetReview(ctx context.Context, slug string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) SubmitFeedback(ctx context.Context, in dto.FeedbackInput) (*dto.CountersResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CountersResponse), args.Error(1)
}

func (m *MockFeedbackService) IncrementView(ctx context.Context, kind models.ContentKind, slug string) (int64, error) {
	args := m.Called(ctx, kind, slug)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackService) ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (*dto.CountersResponse, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CountersResponse), args.Error(1)
}

type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) Navbar(ctx context.Context) ([]models.NavEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NavEntry), args.Error(1)
}

func (m *MockNavigationService) Footer(ctx context.Context) ([]models.NavEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NavEntry), args.Error(1)
}

func (m *MockNavigationService) ApplyNavAction(ctx context.Context, req dto.NavActionRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockNavigationService) ListPages(ctx context.Context) ([]dto.StaticPageResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.StaticPageResponse), args.Error(1)
}

func (m *MockNavigationService) GetPage(ctx context.Context, pageType string) (*dto.StaticPageResponse, error) {
	args := m.Called(ctx, pageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StaticPageResponse), args.Error(1)
}

func (m *MockNavigationService) CreatePage(ctx context.Context, req dto.CreatePageRequest) (*dto.StaticPageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StaticPageResponse), args.Error(1)
}

type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) CompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyInfo), args.Error(1)
}

func (m *MockSiteService) ActivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSiteService) DeactivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSiteService) Team(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockSiteService) QuotesPage(ctx context.Context) (*models.CarInsuranceQuotesPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarInsuranceQuotesPage), args.Error(1)
}

func (m *MockSiteService) ImportQuotesData(ctx context.Context, req dto.QuotesImportRequest) (*dto.QuotesImportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuotesImportResponse), args.Error(1)
}

func (m *MockSiteService) RecentContent(ctx context.Context) (*dto.RecentContentResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecentContentResponse), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContactResponse), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, unreadOnly bool, page, perPage int) (*dto.ContactListResponse, error) {
	args := m.Called(ctx, unreadOnly, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContactListResponse), args.Error(1)
}

func (m *MockContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
