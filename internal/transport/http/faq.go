package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/labstack/echo/v4"
)

// ListFAQCategories godoc
// @Summary List active FAQ categories
// @Tags faq
// @Produce json
// @Success 200 {array} models.FAQCategory
// @Router /api/faq-categories [get]
func (r *Routers) ListFAQCategories(c echo.Context) error {
	const op = "http.routers.ListFAQCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.FAQService.ListCategories(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// GetFAQCategory godoc
// @Summary Get an FAQ category
// @Tags faq
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.FAQCategory
// @Failure 404 {object} response.ErrorResponse
// @Router /api/faq-categories/{slug} [get]
func (r *Routers) GetFAQCategory(c echo.Context) error {
	const op = "http.routers.GetFAQCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	category, err := r.FAQService.GetCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, category)
}

// FAQCategoryFAQs godoc
// @Summary List the FAQs of a category
// @Tags faq
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {array} dto.FAQSummary
// @Failure 404 {object} response.ErrorResponse
// @Router /api/faq-categories/{slug}/faqs [get]
func (r *Routers) FAQCategoryFAQs(c echo.Context) error {
	const op = "http.routers.FAQCategoryFAQs"

	log := r.log.With(
		slog.String("op", op),
	)

	faqs, err := r.FAQService.CategoryFAQs(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, faqs)
}

// ListFAQs godoc
// @Summary List published FAQs
// @Tags faq
// @Produce json
// @Param category query string false "Category slug"
// @Param priority query string false "low, medium or high"
// @Param featured query bool false "Featured only"
// @Param search query string false "Search question, answer, short answer and tags"
// @Param ordering query string false "created_at, views, helpful_count with optional - prefix"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.FAQListResponse
// @Router /api/faqs [get]
func (r *Routers) ListFAQs(c echo.Context) error {
	const op = "http.routers.ListFAQs"

	log := r.log.With(
		slog.String("op", op),
	)

	page, perPage := pagination(c)
	featured, _ := strconv.ParseBool(c.QueryParam("featured"))

	faqs, err := r.FAQService.ListFAQs(c.Request().Context(), models.FAQFilter{
		CategorySlug: c.QueryParam("category"),
		Priority:     models.FAQPriority(c.QueryParam("priority")),
		FeaturedOnly: featured,
		Search:       c.QueryParam("search"),
		Ordering:     c.QueryParam("ordering"),
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, faqs)
}

// GetFAQ godoc
// @Summary Get an FAQ
// @Description Every call counts as a view, so the response is never cached.
// @Tags faq
// @Produce json
// @Param slug path string true "FAQ slug"
// @Success 200 {object} dto.FAQResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/faqs/{slug} [get]
func (r *Routers) GetFAQ(c echo.Context) error {
	const op = "http.routers.GetFAQ"

	log := r.log.With(
		slog.String("op", op),
	)

	faq, err := r.FAQService.GetFAQ(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, faq)
}

// FeaturedFAQs godoc
// @Summary Featured FAQs
// @Tags faq
// @Produce json
// @Success 200 {array} dto.FAQSummary
// @Router /api/faqs/featured [get]
func (r *Routers) FeaturedFAQs(c echo.Context) error {
	const op = "http.routers.FeaturedFAQs"

	faqs, err := r.FAQService.Featured(c.Request().Context())
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, faqs)
}

func queryLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}

// RecentFAQs godoc
// @Summary Most recent FAQs
// @Tags faq
// @Produce json
// @Param limit query int false "Number of FAQs" default(5)
// @Success 200 {array} dto.FAQSummary
// @Router /api/faqs/recent [get]
func (r *Routers) RecentFAQs(c echo.Context) error {
	const op = "http.routers.RecentFAQs"

	faqs, err := r.FAQService.Recent(c.Request().Context(), queryLimit(c))
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, faqs)
}

// PopularFAQs godoc
// @Summary Most viewed FAQs
// @Tags faq
// @Produce json
// @Param limit query int false "Number of FAQs" default(10)
// @Success 200 {array} dto.FAQSummary
// @Router /api/faqs/popular [get]
func (r *Routers) PopularFAQs(c echo.Context) error {
	const op = "http.routers.PopularFAQs"

	faqs, err := r.FAQService.Popular(c.Request().Context(), queryLimit(c))
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, faqs)
}

// SearchFAQs godoc
// @Summary Search FAQs
// @Tags faq
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} dto.FAQSummary
// @Router /api/search [get]
func (r *Routers) SearchFAQs(c echo.Context) error {
	const op = "http.routers.SearchFAQs"

	faqs, err := r.FAQService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return r.fail(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, faqs)
}

// FAQFeedback godoc
// @Summary Vote on an FAQ
// @Tags faq
// @Accept json
// @Produce json
// @Param slug path string true "FAQ slug"
// @Param request body dto.FeedbackRequest true "Vote"
// @Success 201 {object} response.Response{data=dto.CountersResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/faqs/{slug}/feedback [post]
func (r *Routers) FAQFeedback(c echo.Context) error {
	return r.submitFeedback(c, models.KindFAQ)
}
