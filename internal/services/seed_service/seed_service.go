// Package services bootstraps the catalog, menus and singleton documents.
// Every step is get-or-create by natural key so Seed can run any number of times.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"

	"github.com/google/uuid"
)

// Result records what happened to one seeded record.
type Result struct {
	Kind    string
	Key     string
	Created bool
}

type Report struct {
	Results    []Result
	Backfilled int
}

func (r *Report) add(kind, key string, created bool) {
	r.Results = append(r.Results, Result{Kind: kind, Key: key, Created: created})
}

func (r *Report) Created() int {
	n := 0
	for _, res := range r.Results {
		if res.Created {
			n++
		}
	}
	return n
}

func (r *Report) Existing() int {
	return len(r.Results) - r.Created()
}

type Seeder struct {
	log        *slog.Logger
	categories repository.CategoryRepository
	posts      repository.BlogRepository
	faqs       repository.FAQRepository
	companies  repository.CompanyRepository
	pages      repository.PageRepository
	info       repository.CompanyInfoRepository
	quotes     repository.QuotesPageRepository
	siteName   string
}

// Repositories are the stores the seeder writes to.
type Repositories struct {
	Categories  repository.CategoryRepository
	Posts       repository.BlogRepository
	FAQs        repository.FAQRepository
	Companies   repository.CompanyRepository
	Pages       repository.PageRepository
	CompanyInfo repository.CompanyInfoRepository
	QuotesPages repository.QuotesPageRepository
}

func NewSeeder(log *slog.Logger, repos Repositories, siteName string) *Seeder {
	return &Seeder{
		log:        log,
		categories: repos.Categories,
		posts:      repos.Posts,
		faqs:       repos.FAQs,
		companies:  repos.Companies,
		pages:      repos.Pages,
		info:       repos.CompanyInfo,
		quotes:     repos.QuotesPages,
		siteName:   siteName,
	}
}

func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	const op = "seed_service.Seed"
	log := s.log.With(slog.String("op", op))

	report := &Report{}

	steps := []struct {
		name string
		run  func(context.Context, *Report) error
	}{
		{"blog", s.seedBlog},
		{"faq", s.seedFAQ},
		{"companies", s.seedCompanies},
		{"pages", s.seedPages},
		{"backfill", s.backfillPages},
		{"company_info", s.seedCompanyInfo},
		{"quotes_page", s.seedQuotesPage},
	}

	for _, step := range steps {
		if err := step.run(ctx, report); err != nil {
			log.Error("seed step failed", slog.String("step", step.name), sl.Err(err))
			return report, fmt.Errorf("%s: %s: %w", op, step.name, err)
		}
	}

	log.Info("seed completed",
		slog.Int("created", report.Created()),
		slog.Int("existing", report.Existing()),
		slog.Int("backfilled", report.Backfilled),
	)

	return report, nil
}

func (s *Seeder) seedBlog(ctx context.Context, report *Report) error {
	byName := make(map[string]models.Category, len(categorySeeds))

	for _, seed := range categorySeeds {
		cat := models.Category{
			Name: seed.Name,
			Slug: services.Slugify(seed.Name, 0),
			Type: seed.Type,
		}
		if seed.Parent != "" {
			parent, ok := byName[seed.Parent]
			if !ok {
				return fmt.Errorf("category %q: unknown parent %q", seed.Name, seed.Parent)
			}
			cat.ParentID = &parent.ID
		}

		got, created, err := s.categories.GetOrCreateCategory(ctx, cat)
		if err != nil {
			return err
		}
		byName[seed.Name] = got
		report.add("category", seed.Name, created)
	}

	for _, seed := range postSeeds {
		post := models.BlogPost{
			Title:       seed.Title,
			Slug:        services.Slugify(seed.Title, 0),
			Summary:     seed.Summary,
			Content:     seed.Content,
			IsPublished: true,
		}
		if cat, ok := byName[seed.Category]; ok {
			post.CategoryID = &cat.ID
		}

		created, err := s.posts.GetOrCreatePost(ctx, post)
		if err != nil {
			return err
		}
		report.add("blog_post", post.Slug, created)
	}

	return nil
}

func (s *Seeder) seedFAQ(ctx context.Context, report *Report) error {
	cat := faqCategorySeed
	cat.Slug = services.Slugify(cat.Name, 0)

	cat, created, err := s.faqs.GetOrCreateFAQCategory(ctx, cat)
	if err != nil {
		return err
	}
	report.add("faq_category", cat.Name, created)

	for _, faq := range faqSeeds {
		faq.Slug = services.Slugify(faq.Question, 0)
		faq.CategoryID = cat.ID
		faq.IsPublished = true

		created, err := s.faqs.GetOrCreateFAQ(ctx, faq)
		if err != nil {
			return err
		}
		report.add("faq", faq.Slug, created)
	}

	return nil
}

func (s *Seeder) seedCompanies(ctx context.Context, report *Report) error {
	ids := make(map[string]uuid.UUID, len(companySeeds))

	for _, company := range companySeeds {
		company.Slug = services.Slugify(company.Name, 0)
		company.IsActive = true
		company.Order = 1

		got, created, err := s.companies.GetOrCreateCompany(ctx, company)
		if err != nil {
			return err
		}
		ids[company.Name] = got.ID
		report.add("company", company.Slug, created)
	}

	for _, seed := range reviewSeeds {
		companyID, ok := ids[seed.Company]
		if !ok {
			return fmt.Errorf("review %q: unknown company %q", seed.Title, seed.Company)
		}

		review := seed.CompanyReview
		review.CompanyID = companyID
		review.Slug = services.Slugify(review.Title, 0)
		review.IsPublished = true

		created, err := s.companies.GetOrCreateReview(ctx, review)
		if err != nil {
			return err
		}
		report.add("review", review.Slug, created)
	}

	return nil
}

func seedPages() []models.StaticPage {
	pages := make([]models.StaticPage, 0, len(footerPageSeeds)+len(navPageSeeds)+1)
	pages = append(pages, footerPageSeeds...)
	for _, n := range navPageSeeds {
		pages = append(pages, n.page())
	}
	pages = append(pages, highRiskPageSeed)

	for i := range pages {
		pages[i].IsActive = true
		if pages[i].NavGroup == "" {
			pages[i].NavGroup = models.DefaultNavGroup
		}
	}
	return pages
}

func (s *Seeder) seedPages(ctx context.Context, report *Report) error {
	seen := map[string]bool{}

	for _, page := range seedPages() {
		if seen[page.PageType] {
			continue
		}
		seen[page.PageType] = true

		created, err := s.pages.GetOrCreatePage(ctx, page)
		if err != nil {
			return err
		}
		report.add("page", page.PageType, created)
	}

	return nil
}

// backfillPages fills blank labels and meta fields of existing menu pages.
// Non-blank values are never touched.
func (s *Seeder) backfillPages(ctx context.Context, report *Report) error {
	for _, n := range navPageSeeds {
		changed, err := s.pages.BackfillPage(ctx, n.page())
		if err != nil {
			return err
		}
		if changed {
			report.Backfilled++
		}
	}

	return nil
}

func (s *Seeder) seedCompanyInfo(ctx context.Context, report *Report) error {
	created, err := s.info.EnsureCompanyInfo(ctx, defaultCompanyInfo(s.siteName))
	if err != nil {
		return err
	}
	report.add("company_info", s.siteName, created)

	return nil
}

func (s *Seeder) seedQuotesPage(ctx context.Context, report *Report) error {
	page, created, err := s.quotes.GetOrCreateQuotesPage(ctx, models.DefaultQuotesPage())
	if err != nil {
		return err
	}
	report.add("quotes_page", page.Title, created)

	return nil
}
