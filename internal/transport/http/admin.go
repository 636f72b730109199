package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ApplyNavAction godoc
// @Summary Add, remove or resequence menu pages
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NavActionRequest true "Navigation action"
// @Success 200 {object} dto.NavActionResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/admin/nav [post]
func (r *Routers) ApplyNavAction(c echo.Context) error {
	const op = "http.routers.ApplyNavAction"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.NavActionRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	updated, err := r.NavigationService.ApplyNavAction(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("navigation updated",
		slog.String("action", string(req.Action)),
		slog.String("surface", string(req.Surface)),
		slog.Int("updated", updated),
	)

	return c.JSON(http.StatusOK, dto.NavActionResponse{Updated: updated})
}

// ResetCounters godoc
// @Summary Reset the counters of a content item
// @Description Zeroes views and votes and deletes the stored votes.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResetCountersRequest true "Content item"
// @Success 200 {object} dto.CountersResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/counters/reset [post]
func (r *Routers) ResetCounters(c echo.Context) error {
	const op = "http.routers.ResetCounters"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ResetCountersRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	counters, err := r.FeedbackService.ResetCounters(c.Request().Context(), req.Kind, req.Slug)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, counters)
}

// CreatePage godoc
// @Summary Create a static page
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePageRequest true "Page"
// @Success 201 {object} dto.StaticPageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/pages [post]
func (r *Routers) CreatePage(c echo.Context) error {
	const op = "http.routers.CreatePage"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreatePageRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	page, err := r.NavigationService.CreatePage(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, page)
}

// CreatePost godoc
// @Summary Create a blog post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogPostRequest true "Post"
// @Success 201 {object} dto.BlogPostResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/blog/posts [post]
func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateBlogPostRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	post, err := r.BlogService.CreatePost(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, post)
}

// CreateFAQ godoc
// @Summary Create an FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFAQRequest true "FAQ"
// @Success 201 {object} dto.FAQResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/faqs [post]
func (r *Routers) CreateFAQ(c echo.Context) error {
	const op = "http.routers.CreateFAQ"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateFAQRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	faq, err := r.FAQService.CreateFAQ(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, faq)
}

// ListContacts godoc
// @Summary List contact submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Unread only"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.ContactListResponse
// @Router /api/admin/contacts [get]
func (r *Routers) ListContacts(c echo.Context) error {
	const op = "http.routers.ListContacts"

	log := r.log.With(
		slog.String("op", op),
	)

	page, perPage := pagination(c)
	unread, _ := strconv.ParseBool(c.QueryParam("unread"))

	list, err := r.ContactService.List(c.Request().Context(), unread, page, perPage)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, list)
}

// MarkContactRead godoc
// @Summary Mark a contact submission as read
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/contacts/{id}/read [post]
func (r *Routers) MarkContactRead(c echo.Context) error {
	const op = "http.routers.MarkContactRead"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.ContactService.MarkRead(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "Marked as read"})
}

// ActivateCompanyInfo godoc
// @Summary Make a company info record the active one
// @Description Every other record is deactivated.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company info ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/company/{id}/activate [post]
func (r *Routers) ActivateCompanyInfo(c echo.Context) error {
	const op = "http.routers.ActivateCompanyInfo"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.SiteService.ActivateCompanyInfo(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	log.Info("company info activated", slog.String("id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "Company info activated"})
}

// DeactivateCompanyInfo godoc
// @Summary Deactivate a company info record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company info ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/company/{id}/deactivate [post]
func (r *Routers) DeactivateCompanyInfo(c echo.Context) error {
	const op = "http.routers.DeactivateCompanyInfo"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.SiteService.DeactivateCompanyInfo(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "Company info deactivated"})
}

// ImportQuotes godoc
// @Summary Import quotes page state rates and FAQs
// @Description States are "state, reqs, minRate, fullRate" lines and FAQs are "question | answer" lines. A blank block leaves the stored list untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuotesImportRequest true "Import text"
// @Success 200 {object} dto.QuotesImportResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/car-insurance-quotes/import [post]
func (r *Routers) ImportQuotes(c echo.Context) error {
	const op = "http.routers.ImportQuotes"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.QuotesImportRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	resp, err := r.SiteService.ImportQuotesData(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, resp)
}
