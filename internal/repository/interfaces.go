package repository

import (
	"context"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	// GetOrCreateCategory looks the category up by name and inserts it when absent.
	GetOrCreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error)
}

type BlogRepository interface {
	ListPosts(ctx context.Context, filter models.BlogPostFilter) ([]models.BlogPost, int, error)
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	RecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	SavePost(ctx context.Context, post models.BlogPost) (uuid.UUID, error)
	GetOrCreatePost(ctx context.Context, post models.BlogPost) (bool, error)
}

type FAQRepository interface {
	ListFAQCategories(ctx context.Context) ([]models.FAQCategory, error)
	FAQCategoryBySlug(ctx context.Context, slug string) (*models.FAQCategory, error)
	ListFAQs(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int, error)
	FAQBySlug(ctx context.Context, slug string) (*models.FAQ, error)
	SaveFAQ(ctx context.Context, faq models.FAQ) (uuid.UUID, error)
	GetOrCreateFAQCategory(ctx context.Context, category models.FAQCategory) (models.FAQCategory, bool, error)
	GetOrCreateFAQ(ctx context.Context, faq models.FAQ) (bool, error)
}

type CompanyRepository interface {
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error)
	CompanyBySlug(ctx context.Context, slug string) (*models.InsuranceCompany, error)
	ReviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.CompanyReview, error)
	ReviewBySlug(ctx context.Context, slug string) (*models.CompanyReview, error)
	GetOrCreateCompany(ctx context.Context, company models.InsuranceCompany) (models.InsuranceCompany, bool, error)
	GetOrCreateReview(ctx context.Context, review models.CompanyReview) (bool, error)
}

// CounterRepository owns every write to the view and vote counters.
type CounterRepository interface {
	SubmitFeedback(ctx context.Context, slug string, feedback models.Feedback) (models.Counters, error)
	IncrementViews(ctx context.Context, kind models.ContentKind, slug string) (int64, error)
	ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (models.Counters, error)
}

// NavPlanner receives the locked members of a menu group and the selected
// pages and returns the pages whose flags, group or order changed.
type NavPlanner func(members, selected []models.StaticPage) []models.StaticPage

type PageRepository interface {
	ListActivePages(ctx context.Context) ([]models.StaticPage, error)
	PageByType(ctx context.Context, pageType string) (*models.StaticPage, error)
	NavPages(ctx context.Context, surface models.NavSurface) ([]models.StaticPage, error)
	UpdateNav(ctx context.Context, surface models.NavSurface, group string, pageTypes []string, plan NavPlanner) (int, error)
	SavePage(ctx context.Context, page models.StaticPage) (uuid.UUID, error)
	GetOrCreatePage(ctx context.Context, page models.StaticPage) (bool, error)
	// BackfillPage fills only the blank menu_label, meta_title and meta_description fields.
	BackfillPage(ctx context.Context, page models.StaticPage) (bool, error)
}

type CompanyInfoRepository interface {
	ActiveCompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
	ActivateCompanyInfo(ctx context.Context, id uuid.UUID) error
	DeactivateCompanyInfo(ctx context.Context, id uuid.UUID) error
	// EnsureCompanyInfo inserts info only when the table is empty.
	EnsureCompanyInfo(ctx context.Context, info models.CompanyInfo) (bool, error)
}

type TeamRepository interface {
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type QuotesPageRepository interface {
	GetOrCreateQuotesPage(ctx context.Context, defaults models.CarInsuranceQuotesPage) (*models.CarInsuranceQuotesPage, bool, error)
	UpdateQuotesPageData(ctx context.Context, id uuid.UUID, states []models.StateRate, faqs []models.QuoteFAQ) error
}

type ContactRepository interface {
	SaveContact(ctx context.Context, submission models.ContactSubmission) (uuid.UUID, error)
	ListContacts(ctx context.Context, unreadOnly bool, page, perPage int) ([]models.ContactSubmission, int, error)
	MarkContactRead(ctx context.Context, id uuid.UUID) error
}
