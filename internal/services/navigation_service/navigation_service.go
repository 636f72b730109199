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
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
)

// NavigationService serves static pages and the navbar and footer menus built from them.
type NavigationService struct {
	log   *slog.Logger
	pages repository.PageRepository
	cache cache.Cache
}

func NewNavigationService(log *slog.Logger, pages repository.PageRepository, c cache.Cache) *NavigationService {
	return &NavigationService{log: log, pages: pages, cache: c}
}

func cacheKey(s models.NavSurface) string {
	if s == models.SurfaceFooter {
		return cache.KeyFooter
	}
	return cache.KeyNavbar
}

func (s *NavigationService) Navbar(ctx context.Context) ([]models.NavEntry, error) {
	return s.entries(ctx, models.SurfaceNavbar)
}

func (s *NavigationService) Footer(ctx context.Context) ([]models.NavEntry, error) {
	return s.entries(ctx, models.SurfaceFooter)
}

func (s *NavigationService) entries(ctx context.Context, surface models.NavSurface) ([]models.NavEntry, error) {
	const op = "navigation_service.entries"
	log := s.log.With(slog.String("op", op), slog.String("surface", string(surface)))

	var entries []models.NavEntry
	ok, err := s.cache.Get(ctx, cacheKey(surface), &entries)
	if err != nil {
		log.Warn("menu cache read failed", sl.Err(err))
	}
	if ok {
		return entries, nil
	}

	pages, err := s.pages.NavPages(ctx, surface)
	if err != nil {
		log.Error("failed to load menu pages", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries = make([]models.NavEntry, 0, len(pages))
	for _, p := range pages {
		entries = append(entries, models.NewNavEntry(surface, p))
	}

	if err := s.cache.Set(ctx, cacheKey(surface), entries); err != nil {
		log.Warn("menu cache write failed", sl.Err(err))
	}

	return entries, nil
}

// ApplyNavAction runs one bulk menu operation and returns the number of pages changed.
func (s *NavigationService) ApplyNavAction(ctx context.Context, req dto.NavActionRequest) (int, error) {
	const op = "navigation_service.ApplyNavAction"

	if !req.Surface.Valid() {
		return 0, services.NewValidationError("surface", "Must be one of: navbar footer.")
	}

	group := ""
	if req.Surface == models.SurfaceNavbar {
		group = strings.TrimSpace(req.Group)
		if group == "" {
			group = models.DefaultNavGroup
		}
	}

	pageTypes := make([]string, 0, len(req.PageTypes))
	for _, pt := range req.PageTypes {
		if pt = strings.TrimSpace(pt); pt != "" {
			pageTypes = append(pageTypes, pt)
		}
	}

	var plan repository.NavPlanner
	switch req.Action {
	case dto.NavAdd:
		plan = func(members, selected []models.StaticPage) []models.StaticPage {
			return PlanAdd(req.Surface, group, members, selected)
		}
	case dto.NavRemove:
		plan = func(_, selected []models.StaticPage) []models.StaticPage {
			return PlanRemove(req.Surface, selected)
		}
	case dto.NavResequence:
		plan = func(members, _ []models.StaticPage) []models.StaticPage {
			return PlanResequence(req.Surface, members)
		}
	default:
		return 0, services.NewValidationError("action", "Must be one of: add remove resequence.")
	}

	if req.Action != dto.NavResequence && len(pageTypes) == 0 {
		return 0, services.NewValidationError("page_types", "This field is required.")
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("action", string(req.Action)),
		slog.String("surface", string(req.Surface)),
		slog.String("group", group),
	)

	updated, err := s.pages.UpdateNav(ctx, req.Surface, group, pageTypes, plan)
	if err != nil {
		log.Error("menu update failed", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Delete(ctx, cacheKey(req.Surface)); err != nil {
		log.Warn("menu cache invalidation failed", sl.Err(err))
	}

	log.Info("menu updated", slog.Int("updated", updated))

	return updated, nil
}

func (s *NavigationService) ListPages(ctx context.Context) ([]dto.StaticPageResponse, error) {
	const op = "navigation_service.ListPages"

	pages, err := s.pages.ListActivePages(ctx)
	if err != nil {
		s.log.Error("failed to list pages", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.StaticPageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, dto.NewStaticPageResponse(p))
	}

	return out, nil
}

func (s *NavigationService) GetPage(ctx context.Context, pageType string) (*dto.StaticPageResponse, error) {
	const op = "navigation_service.GetPage"

	page, err := s.pages.PageByType(ctx, pageType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.NewStaticPageResponse(*page)
	return &resp, nil
}

// NormalizePageType lowercases and slugifies each underscore separated part of
// a page type so keys like "California Privacy" become "california_privacy".
func NormalizePageType(pageType string) string {
	fields := strings.FieldsFunc(pageType, func(r rune) bool {
		return r == '_' || r == ' '
	})

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if p := services.Slugify(f, 0); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, "_")
}

func (s *NavigationService) CreatePage(ctx context.Context, req dto.CreatePageRequest) (*dto.StaticPageResponse, error) {
	const op = "navigation_service.CreatePage"

	page := models.StaticPage{
		PageType:        NormalizePageType(req.PageType),
		Title:           strings.TrimSpace(req.Title),
		Content:         services.SanitizeHTML(req.Content),
		MenuLabel:       strings.TrimSpace(req.MenuLabel),
		NavGroup:        strings.TrimSpace(req.NavGroup),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		IsActive:        true,
		ShowInNavbar:    req.ShowInNavbar,
		NavOrder:        req.NavOrder,
		ShowInFooter:    req.ShowInFooter,
		FooterOrder:     req.FooterOrder,
	}

	ve := &services.ValidationError{}
	if page.PageType == "" {
		ve.Add("page_type", "This field is required.")
	}
	if page.Title == "" {
		ve.Add("title", "This field is required.")
	}
	if !ve.Empty() {
		return nil, ve
	}
	if page.NavGroup == "" {
		page.NavGroup = models.DefaultNavGroup
	}

	id, err := s.pages.SavePage(ctx, page)
	if err != nil {
		if errors.Is(err, storage.ErrSlugExists) {
			return nil, services.NewValidationError("page_type", "A page with this type already exists.")
		}
		s.log.Error("failed to create page", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	page.ID = id

	if page.ShowInNavbar || page.ShowInFooter {
		if err := s.cache.Delete(ctx, cache.KeyNavbar, cache.KeyFooter); err != nil {
			s.log.Warn("menu cache invalidation failed", slog.String("op", op), sl.Err(err))
		}
	}

	resp := dto.NewStaticPageResponse(page)
	return &resp, nil
}
