package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
)

// StatesCategory is the main category whose subcategories list US states.
const StatesCategory = "States"

type BlogService struct {
	log        *slog.Logger
	categories repository.CategoryRepository
	posts      repository.BlogRepository
}

func NewBlogService(log *slog.Logger, categories repository.CategoryRepository, posts repository.BlogRepository) *BlogService {
	return &BlogService{log: log, categories: categories, posts: posts}
}

func (s *BlogService) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	const op = "blog_service.ListCategories"

	categories, err := s.categories.ListCategories(ctx, filter)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *BlogService) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	const op = "blog_service.GetCategory"

	category, err := s.categories.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// ListStates returns the subcategories of the "States" main category.
func (s *BlogService) ListStates(ctx context.Context) ([]models.Category, error) {
	return s.ListCategories(ctx, models.CategoryFilter{
		Type:       models.CategorySub,
		ParentName: StatesCategory,
	})
}

func (s *BlogService) ListPosts(ctx context.Context, filter models.BlogPostFilter) (*dto.BlogPostListResponse, error) {
	const op = "blog_service.ListPosts"
	log := s.log.With(slog.String("op", op))

	filter.Page, filter.PerPage = services.Paginate(filter.Page, filter.PerPage)

	posts, total, err := s.posts.ListPosts(ctx, filter)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.BlogPostListResponse{
		Posts:      make([]dto.BlogPostSummary, 0, len(posts)),
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, dto.NewBlogPostSummary(p))
	}

	return resp, nil
}

func (s *BlogService) RecentPosts(ctx context.Context, limit int) ([]dto.BlogPostSummary, error) {
	const op = "blog_service.RecentPosts"

	posts, err := s.posts.RecentPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.BlogPostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.NewBlogPostSummary(p))
	}

	return out, nil
}

func (s *BlogService) GetPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	const op = "blog_service.GetPost"

	post, err := s.posts.PostBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("failed to get post", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.NewBlogPostResponse(*post), nil
}

// CreatePost stores an admin-written post. The slug is derived from the
// title when blank and the body is sanitized.
func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	post := models.BlogPost{
		Title:           strings.TrimSpace(req.Title),
		Slug:            services.Slugify(req.Slug, 200),
		Summary:         req.Summary,
		Content:         services.SanitizeHTML(req.Content),
		FeatureImage:    req.FeatureImage,
		VideoURL:        req.VideoURL,
		AuthorName:      req.AuthorName,
		AuthorBio:       req.AuthorBio,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		IsPublished:     true,
		PublishedAt:     time.Now().UTC(),
		ChartData:       req.ChartData,
	}

	if post.Title == "" {
		return nil, services.NewValidationError("title", "This field is required.")
	}
	if post.Slug == "" {
		post.Slug = services.Slugify(post.Title, 200)
		log.Debug("generated slug", slog.String("slug", post.Slug))
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt.UTC()
	}

	if req.CategorySlug != "" {
		category, err := s.categories.CategoryBySlug(ctx, req.CategorySlug)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, services.NewValidationError("category", "Unknown category.")
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		post.CategoryID = &category.ID
		post.Category = category
	}

	id, err := s.posts.SavePost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrSlugExists) {
			return nil, services.NewValidationError("slug", "A post with this slug already exists.")
		}
		log.Error("failed to create post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post.ID = id
	post.UpdatedAt = post.PublishedAt
	log.Info("post created", slog.String("post_id", id.String()))

	return dto.NewBlogPostResponse(post), nil
}
