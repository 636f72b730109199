package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/cache"
	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"

	"github.com/google/uuid"
)

const recentContentLimit = 3

type SiteService struct {
	log    *slog.Logger
	info   repository.CompanyInfoRepository
	team   repository.TeamRepository
	quotes repository.QuotesPageRepository
	posts  repository.BlogRepository
	faqs   repository.FAQRepository
	cache  cache.Cache
}

func NewSiteService(
	log *slog.Logger,
	info repository.CompanyInfoRepository,
	team repository.TeamRepository,
	quotes repository.QuotesPageRepository,
	posts repository.BlogRepository,
	faqs repository.FAQRepository,
	c cache.Cache,
) *SiteService {
	return &SiteService{
		log:    log,
		info:   info,
		team:   team,
		quotes: quotes,
		posts:  posts,
		faqs:   faqs,
		cache:  c,
	}
}

// CompanyInfo returns the active record, or the most recently updated one
// when none is active.
func (s *SiteService) CompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	const op = "site_service.CompanyInfo"
	log := s.log.With(slog.String("op", op))

	var info models.CompanyInfo
	ok, err := s.cache.Get(ctx, cache.KeyCompanyInfo, &info)
	if err != nil {
		log.Warn("company info cache read failed", sl.Err(err))
	}
	if ok {
		return &info, nil
	}

	found, err := s.info.ActiveCompanyInfo(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to load company info", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, cache.KeyCompanyInfo, found); err != nil {
		log.Warn("company info cache write failed", sl.Err(err))
	}

	return found, nil
}

func (s *SiteService) ActivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	const op = "site_service.ActivateCompanyInfo"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.info.ActivateCompanyInfo(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("activation failed", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateCompanyInfo(ctx, log)
	log.Info("company info activated")

	return nil
}

func (s *SiteService) DeactivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	const op = "site_service.DeactivateCompanyInfo"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.info.DeactivateCompanyInfo(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("deactivation failed", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateCompanyInfo(ctx, log)
	log.Info("company info deactivated")

	return nil
}

func (s *SiteService) invalidateCompanyInfo(ctx context.Context, log *slog.Logger) {
	if err := s.cache.Delete(ctx, cache.KeyCompanyInfo); err != nil {
		log.Warn("company info cache invalidation failed", sl.Err(err))
	}
}

func (s *SiteService) Team(ctx context.Context) ([]models.TeamMember, error) {
	const op = "site_service.Team"

	members, err := s.team.ListTeamMembers(ctx)
	if err != nil {
		s.log.Error("failed to list team", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return members, nil
}

// QuotesPage returns the car insurance quotes document, creating the default
// one on first access.
func (s *SiteService) QuotesPage(ctx context.Context) (*models.CarInsuranceQuotesPage, error) {
	const op = "site_service.QuotesPage"

	page, created, err := s.quotes.GetOrCreateQuotesPage(ctx, models.DefaultQuotesPage())
	if err != nil {
		s.log.Error("failed to load quotes page", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if created {
		s.log.Info("default quotes page created", slog.String("op", op), slog.String("id", page.ID.String()))
	}

	return page, nil
}

// ImportQuotesData replaces the state table and FAQ list from pasted text.
// A blank input leaves the corresponding list untouched.
func (s *SiteService) ImportQuotesData(ctx context.Context, req dto.QuotesImportRequest) (*dto.QuotesImportResponse, error) {
	const op = "site_service.ImportQuotesData"
	log := s.log.With(slog.String("op", op))

	page, err := s.QuotesPage(ctx)
	if err != nil {
		return nil, err
	}

	var (
		states []models.StateRate
		faqs   []models.QuoteFAQ
		resp   dto.QuotesImportResponse
	)
	if strings.TrimSpace(req.StatesText) != "" {
		states = ParseStateRates(req.StatesText)
		resp.States = len(states)
	}
	if strings.TrimSpace(req.FAQsText) != "" {
		faqs = ParseQuoteFAQs(req.FAQsText)
		resp.FAQs = len(faqs)
	}

	if states == nil && faqs == nil {
		return &resp, nil
	}

	if err := s.quotes.UpdateQuotesPageData(ctx, page.ID, states, faqs); err != nil {
		log.Error("failed to update quotes page", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("quotes data imported", slog.Int("states", resp.States), slog.Int("faqs", resp.FAQs))

	return &resp, nil
}

func (s *SiteService) RecentContent(ctx context.Context) (*dto.RecentContentResponse, error) {
	const op = "site_service.RecentContent"

	posts, err := s.posts.RecentPosts(ctx, recentContentLimit)
	if err != nil {
		s.log.Error("failed to load recent posts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faqs, _, err := s.faqs.ListFAQs(ctx, models.FAQFilter{Ordering: "-created_at", Limit: recentContentLimit})
	if err != nil {
		s.log.Error("failed to load recent faqs", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.RecentContentResponse{
		RecentBlogs: make([]dto.BlogPostSummary, 0, len(posts)),
		RecentFAQs:  dto.NewFAQSummaries(faqs),
	}
	for _, p := range posts {
		resp.RecentBlogs = append(resp.RecentBlogs, dto.NewBlogPostSummary(p))
	}

	return resp, nil
}
