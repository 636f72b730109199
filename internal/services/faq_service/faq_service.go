package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/metrics"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
)

const (
	FeaturedLimit       = 10
	DefaultRecentLimit  = 5
	DefaultPopularLimit = 10
	maxLimit            = 100
	slugMaxLen          = 300
)

type FAQService struct {
	log      *slog.Logger
	faqs     repository.FAQRepository
	counters repository.CounterRepository
}

func NewFAQService(log *slog.Logger, faqs repository.FAQRepository, counters repository.CounterRepository) *FAQService {
	return &FAQService{log: log, faqs: faqs, counters: counters}
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
}

func (s *FAQService) ListCategories(ctx context.Context) ([]models.FAQCategory, error) {
	const op = "faq_service.ListCategories"

	categories, err := s.faqs.ListFAQCategories(ctx)
	if err != nil {
		s.log.Error("failed to list faq categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *FAQService) GetCategory(ctx context.Context, slug string) (*models.FAQCategory, error) {
	const op = "faq_service.GetCategory"

	category, err := s.faqs.FAQCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// CategoryFAQs lists the published FAQs of an active category in their manual order.
func (s *FAQService) CategoryFAQs(ctx context.Context, slug string) ([]dto.FAQSummary, error) {
	const op = "faq_service.CategoryFAQs"

	if _, err := s.faqs.FAQCategoryBySlug(ctx, slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faqs, _, err := s.faqs.ListFAQs(ctx, models.FAQFilter{
		CategorySlug: slug,
		Ordering:     "category",
		Limit:        maxLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.NewFAQSummaries(faqs), nil
}

func (s *FAQService) ListFAQs(ctx context.Context, filter models.FAQFilter) (*dto.FAQListResponse, error) {
	const op = "faq_service.ListFAQs"

	filter.Limit = 0
	filter.Page, filter.PerPage = services.Paginate(filter.Page, filter.PerPage)

	faqs, total, err := s.faqs.ListFAQs(ctx, filter)
	if err != nil {
		s.log.Error("failed to list faqs", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.FAQListResponse{
		FAQs:       dto.NewFAQSummaries(faqs),
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// GetFAQ counts a view and returns the FAQ with the updated counter.
func (s *FAQService) GetFAQ(ctx context.Context, slug string) (*dto.FAQResponse, error) {
	const op = "faq_service.GetFAQ"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	views, err := s.counters.IncrementViews(ctx, models.KindFAQ, slug)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to count view", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.ViewsTotal.WithLabelValues(string(models.KindFAQ)).Inc()

	faq, err := s.faqs.FAQBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	faq.Views = max(faq.Views, views)

	return dto.NewFAQResponse(*faq), nil
}

func (s *FAQService) listLimited(ctx context.Context, op string, filter models.FAQFilter) ([]dto.FAQSummary, error) {
	faqs, _, err := s.faqs.ListFAQs(ctx, filter)
	if err != nil {
		s.log.Error("failed to list faqs", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.NewFAQSummaries(faqs), nil
}

func (s *FAQService) Featured(ctx context.Context) ([]dto.FAQSummary, error) {
	return s.listLimited(ctx, "faq_service.Featured", models.FAQFilter{
		FeaturedOnly: true,
		Limit:        FeaturedLimit,
	})
}

func (s *FAQService) Recent(ctx context.Context, limit int) ([]dto.FAQSummary, error) {
	return s.listLimited(ctx, "faq_service.Recent", models.FAQFilter{
		Ordering: "-created_at",
		Limit:    clampLimit(limit, DefaultRecentLimit),
	})
}

func (s *FAQService) Popular(ctx context.Context, limit int) ([]dto.FAQSummary, error) {
	return s.listLimited(ctx, "faq_service.Popular", models.FAQFilter{
		Ordering: "popular",
		Limit:    clampLimit(limit, DefaultPopularLimit),
	})
}

// Search matches question, answer, short answer and tags. A blank query yields no results.
func (s *FAQService) Search(ctx context.Context, q string) ([]dto.FAQSummary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.FAQSummary{}, nil
	}

	return s.listLimited(ctx, "faq_service.Search", models.FAQFilter{
		Search:   q,
		Ordering: "search",
		Limit:    maxLimit,
	})
}

func (s *FAQService) CreateFAQ(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	const op = "faq_service.CreateFAQ"
	log := s.log.With(slog.String("op", op))

	category, err := s.faqs.FAQCategoryBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, services.NewValidationError("category", "Unknown category.")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faq := models.FAQ{
		Question:    strings.TrimSpace(req.Question),
		Slug:        services.Slugify(req.Slug, slugMaxLen),
		Answer:      services.SanitizeHTML(req.Answer),
		ShortAnswer: req.ShortAnswer,
		CategoryID:  category.ID,
		Category:    category,
		Priority:    req.Priority,
		Tags:        req.Tags,
		IsPublished: true,
		IsFeatured:  req.IsFeatured,
		Order:       req.Order,
		AuthorName:  req.AuthorName,
	}
	if faq.Slug == "" {
		faq.Slug = services.Slugify(faq.Question, slugMaxLen)
	}
	if faq.Priority == "" {
		faq.Priority = models.PriorityMedium
	}

	id, err := s.faqs.SaveFAQ(ctx, faq)
	if err != nil {
		if errors.Is(err, storage.ErrSlugExists) {
			return nil, services.NewValidationError("slug", "An FAQ with this slug already exists.")
		}
		log.Error("failed to create faq", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faq.ID = id
	log.Info("faq created", slog.String("faq_id", id.String()), slog.String("slug", faq.Slug))

	return dto.NewFAQResponse(faq), nil
}
