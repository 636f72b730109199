package http

import (
	"log/slog"
	"net/http"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/labstack/echo/v4"
)

// ListCategories godoc
// @Summary List blog categories
// @Tags blog
// @Produce json
// @Param type query string false "main, sub or none"
// @Param parent query string false "Parent category slug"
// @Param parent__name query string false "Parent category name"
// @Success 200 {array} models.Category
// @Failure 500 {object} response.ErrorResponse
// @Router /api/blog/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.BlogService.ListCategories(c.Request().Context(), models.CategoryFilter{
		Type:       models.CategoryType(c.QueryParam("type")),
		ParentSlug: c.QueryParam("parent"),
		ParentName: c.QueryParam("parent__name"),
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a blog category
// @Tags blog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Category
// @Failure 404 {object} response.ErrorResponse
// @Router /api/blog/categories/{slug} [get]
func (r *Routers) GetCategory(c echo.Context) error {
	const op = "http.routers.GetCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	category, err := r.BlogService.GetCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, category)
}

// ListStates godoc
// @Summary List US state categories
// @Description Subcategories of the "States" main category.
// @Tags blog
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/states [get]
func (r *Routers) ListStates(c echo.Context) error {
	const op = "http.routers.ListStates"

	log := r.log.With(
		slog.String("op", op),
	)

	states, err := r.BlogService.ListStates(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, states)
}

// ListPosts godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Param category query string false "Category slug"
// @Param category__name query string false "Category name"
// @Param category__parent query string false "Parent category slug"
// @Param category__parent__name query string false "Parent category name"
// @Param search query string false "Search title, summary and content"
// @Param ordering query string false "published_at, -published_at, views, -views"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.BlogPostListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/blog/posts [get]
func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	log := r.log.With(
		slog.String("op", op),
	)

	page, perPage := pagination(c)

	posts, err := r.BlogService.ListPosts(c.Request().Context(), models.BlogPostFilter{
		CategorySlug:       c.QueryParam("category"),
		CategoryName:       c.QueryParam("category__name"),
		ParentCategorySlug: c.QueryParam("category__parent"),
		ParentCategoryName: c.QueryParam("category__parent__name"),
		Search:             c.QueryParam("search"),
		Ordering:           c.QueryParam("ordering"),
		Page:               page,
		PerPage:            perPage,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/blog/posts/{slug} [get]
func (r *Routers) GetPost(c echo.Context) error {
	const op = "http.routers.GetPost"

	log := r.log.With(
		slog.String("op", op),
	)

	post, err := r.BlogService.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, post)
}

// PostFeedback godoc
// @Summary Vote on a blog post
// @Description One vote per client IP. A second vote is rejected.
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param request body dto.FeedbackRequest true "Vote"
// @Success 201 {object} response.Response{data=dto.CountersResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/blog/posts/{slug}/feedback [post]
func (r *Routers) PostFeedback(c echo.Context) error {
	return r.submitFeedback(c, models.KindBlogPost)
}

// PostIncrementView godoc
// @Summary Count a blog post view
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.ViewsResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/blog/posts/{slug}/increment_view [post]
func (r *Routers) PostIncrementView(c echo.Context) error {
	return r.incrementView(c, models.KindBlogPost)
}
