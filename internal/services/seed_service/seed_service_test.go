package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// store is an in-memory stand-in keyed the same way as the database
// unique constraints.
type store struct {
	categories map[string]models.Category
	posts      map[string]models.BlogPost
	faqCats    map[string]models.FAQCategory
	faqs       map[string]models.FAQ
	companies  map[string]models.InsuranceCompany
	reviews    map[string]models.CompanyReview
	pages      map[string]models.StaticPage
	info       []models.CompanyInfo
	quotes     *models.CarInsuranceQuotesPage
}

func newStore() *store {
	return &store{
		categories: map[string]models.Category{},
		posts:      map[string]models.BlogPost{},
		faqCats:    map[string]models.FAQCategory{},
		faqs:       map[string]models.FAQ{},
		companies:  map[string]models.InsuranceCompany{},
		reviews:    map[string]models.CompanyReview{},
		pages:      map[string]models.StaticPage{},
	}
}

func (s *store) repos() Repositories {
	return Repositories{
		Categories:  categoryStore{s},
		Posts:       postStore{s},
		FAQs:        faqStore{s},
		Companies:   companyStore{s},
		Pages:       pageStore{s},
		CompanyInfo: infoStore{s},
		QuotesPages: quotesStore{s},
	}
}

func (s *store) count() int {
	n := len(s.categories) + len(s.posts) + len(s.faqCats) + len(s.faqs) +
		len(s.companies) + len(s.reviews) + len(s.pages) + len(s.info)
	if s.quotes != nil {
		n++
	}
	return n
}

var errUnused = errors.New("not used by the seeder")

type categoryStore struct{ *store }

func (c categoryStore) ListCategories(context.Context, models.CategoryFilter) ([]models.Category, error) {
	return nil, errUnused
}

func (c categoryStore) CategoryBySlug(context.Context, string) (*models.Category, error) {
	return nil, errUnused
}

func (c categoryStore) GetOrCreateCategory(_ context.Context, cat models.Category) (models.Category, bool, error) {
	if got, ok := c.categories[cat.Name]; ok {
		return got, false, nil
	}
	cat.ID = uuid.New()
	c.categories[cat.Name] = cat
	return cat, true, nil
}

type postStore struct{ *store }

func (p postStore) ListPosts(context.Context, models.BlogPostFilter) ([]models.BlogPost, int, error) {
	return nil, 0, errUnused
}

func (p postStore) PostBySlug(context.Context, string) (*models.BlogPost, error) {
	return nil, errUnused
}

func (p postStore) RecentPosts(context.Context, int) ([]models.BlogPost, error) {
	return nil, errUnused
}

func (p postStore) SavePost(context.Context, models.BlogPost) (uuid.UUID, error) {
	return uuid.Nil, errUnused
}

func (p postStore) GetOrCreatePost(_ context.Context, post models.BlogPost) (bool, error) {
	if _, ok := p.posts[post.Slug]; ok {
		return false, nil
	}
	p.posts[post.Slug] = post
	return true, nil
}

type faqStore struct{ *store }

func (f faqStore) ListFAQCategories(context.Context) ([]models.FAQCategory, error) {
	return nil, errUnused
}

func (f faqStore) FAQCategoryBySlug(context.Context, string) (*models.FAQCategory, error) {
	return nil, errUnused
}

func (f faqStore) ListFAQs(context.Context, models.FAQFilter) ([]models.FAQ, int, error) {
	return nil, 0, errUnused
}

func (f faqStore) FAQBySlug(context.Context, string) (*models.FAQ, error) {
	return nil, errUnused
}

func (f faqStore) SaveFAQ(context.Context, models.FAQ) (uuid.UUID, error) {
	return uuid.Nil, errUnused
}

func (f faqStore) GetOrCreateFAQCategory(_ context.Context, cat models.FAQCategory) (models.FAQCategory, bool, error) {
	if got, ok := f.faqCats[cat.Name]; ok {
		return got, false, nil
	}
	cat.ID = uuid.New()
	f.faqCats[cat.Name] = cat
	return cat, true, nil
}

func (f faqStore) GetOrCreateFAQ(_ context.Context, faq models.FAQ) (bool, error) {
	if _, ok := f.faqs[faq.Slug]; ok {
		return false, nil
	}
	f.faqs[faq.Slug] = faq
	return true, nil
}

type companyStore struct{ *store }

func (c companyStore) ListCompanies(context.Context, models.CompanyFilter) ([]models.InsuranceCompany, error) {
	return nil, errUnused
}

func (c companyStore) CompanyBySlug(context.Context, string) (*models.InsuranceCompany, error) {
	return nil, errUnused
}

func (c companyStore) ReviewsByCompany(context.Context, uuid.UUID) ([]models.CompanyReview, error) {
	return nil, errUnused
}

func (c companyStore) ReviewBySlug(context.Context, string) (*models.CompanyReview, error) {
	return nil, errUnused
}

func (c companyStore) GetOrCreateCompany(_ context.Context, company models.InsuranceCompany) (models.InsuranceCompany, bool, error) {
	if got, ok := c.companies[company.Slug]; ok {
		return got, false, nil
	}
	company.ID = uuid.New()
	c.companies[company.Slug] = company
	return company, true, nil
}

func (c companyStore) GetOrCreateReview(_ context.Context, review models.CompanyReview) (bool, error) {
	if _, ok := c.reviews[review.Slug]; ok {
		return false, nil
	}
	c.reviews[review.Slug] = review
	return true, nil
}

type pageStore struct{ *store }

func (p pageStore) ListActivePages(context.Context) ([]models.StaticPage, error) {
	return nil, errUnused
}

func (p pageStore) PageByType(context.Context, string) (*models.StaticPage, error) {
	return nil, errUnused
}

func (p pageStore) NavPages(context.Context, models.NavSurface) ([]models.StaticPage, error) {
	return nil, errUnused
}

func (p pageStore) UpdateNav(context.Context, models.NavSurface, string, []string, repository.NavPlanner) (int, error) {
	return 0, errUnused
}

func (p pageStore) SavePage(context.Context, models.StaticPage) (uuid.UUID, error) {
	return uuid.Nil, errUnused
}

func (p pageStore) GetOrCreatePage(_ context.Context, page models.StaticPage) (bool, error) {
	if _, ok := p.pages[page.PageType]; ok {
		return false, nil
	}
	p.pages[page.PageType] = page
	return true, nil
}

func (p pageStore) BackfillPage(_ context.Context, page models.StaticPage) (bool, error) {
	existing, ok := p.pages[page.PageType]
	if !ok {
		return false, nil
	}

	changed := false
	fill := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
			changed = true
		}
	}
	fill(&existing.MenuLabel, page.MenuLabel)
	fill(&existing.MetaTitle, page.MetaTitle)
	fill(&existing.MetaDescription, page.MetaDescription)

	p.pages[page.PageType] = existing
	return changed, nil
}

type infoStore struct{ *store }

func (i infoStore) ActiveCompanyInfo(context.Context) (*models.CompanyInfo, error) {
	return nil, errUnused
}

func (i infoStore) ActivateCompanyInfo(context.Context, uuid.UUID) error { return errUnused }

func (i infoStore) DeactivateCompanyInfo(context.Context, uuid.UUID) error { return errUnused }

func (i infoStore) EnsureCompanyInfo(_ context.Context, info models.CompanyInfo) (bool, error) {
	if len(i.info) > 0 {
		return false, nil
	}
	i.store.info = append(i.store.info, info)
	return true, nil
}

type quotesStore struct{ *store }

func (q quotesStore) GetOrCreateQuotesPage(_ context.Context, defaults models.CarInsuranceQuotesPage) (*models.CarInsuranceQuotesPage, bool, error) {
	if q.quotes != nil {
		return q.quotes, false, nil
	}
	defaults.ID = uuid.New()
	q.store.quotes = &defaults
	return q.quotes, true, nil
}

func (q quotesStore) UpdateQuotesPageData(context.Context, uuid.UUID, []models.StateRate, []models.QuoteFAQ) error {
	return errUnused
}

func TestSeeder_SeedTwiceEqualsOnce(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	seeder := NewSeeder(slog.Default(), st.repos(), "Insurance Panda")

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	afterFirst := st.count()

	assert.Equal(t, afterFirst, first.Created())
	assert.Zero(t, first.Existing())

	second, err := seeder.Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, afterFirst, st.count())
	assert.Zero(t, second.Created())
	assert.Equal(t, len(second.Results), second.Existing())
	assert.Zero(t, second.Backfilled)
}

func TestSeeder_LinksHierarchy(t *testing.T) {
	ctx := context.Background()
	st := newStore()

	_, err := NewSeeder(slog.Default(), st.repos(), "Insurance Panda").Seed(ctx)
	require.NoError(t, err)

	main := st.categories["Auto Insurance"]
	guides := st.categories["Guides"]
	require.NotNil(t, guides.ParentID)
	assert.Equal(t, main.ID, *guides.ParentID)
	assert.Equal(t, "auto-insurance", main.Slug)

	post := st.posts["how-to-compare-car-insurance-quotes"]
	require.NotNil(t, post.CategoryID)
	assert.Equal(t, guides.ID, *post.CategoryID)

	panda := st.companies["panda-insurance"]
	assert.Equal(t, panda.ID, st.reviews["panda-insurance-2025-review"].CompanyID)

	for _, f := range st.faqs {
		assert.Equal(t, st.faqCats["Car Insurance Basics"].ID, f.CategoryID)
	}
}

func TestSeeder_NeverOverwritesExistingPages(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	st.pages["about"] = models.StaticPage{
		PageType:  "about",
		Title:     "Who we are",
		MenuLabel: "Our story",
	}

	report, err := NewSeeder(slog.Default(), st.repos(), "Insurance Panda").Seed(ctx)
	require.NoError(t, err)

	about := st.pages["about"]
	assert.Equal(t, "Who we are", about.Title)
	assert.Equal(t, "Our story", about.MenuLabel)
	assert.Equal(t, "About", about.MetaTitle)
	assert.Equal(t, "About information and resources.", about.MetaDescription)
	assert.Positive(t, report.Backfilled)

	for _, res := range report.Results {
		if res.Kind == "page" && res.Key == "about" {
			assert.False(t, res.Created)
		}
	}
}

func TestSeeder_FirstPageDefinitionWins(t *testing.T) {
	ctx := context.Background()
	st := newStore()

	_, err := NewSeeder(slog.Default(), st.repos(), "Insurance Panda").Seed(ctx)
	require.NoError(t, err)

	contact := st.pages["contact"]
	assert.Equal(t, "Contact Us", contact.Title)
	assert.True(t, contact.ShowInFooter)
	assert.Equal(t, 4, contact.FooterOrder)
	assert.Equal(t, "Insurance Guide", st.pages["states"].NavGroup)
	assert.Equal(t, models.DefaultNavGroup, st.pages["high_risk_auto_insurance"].NavGroup)
}
