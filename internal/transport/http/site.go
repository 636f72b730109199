package http

import (
	"log/slog"
	"net/http"

	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// Company godoc
// @Summary Active company information
// @Description Falls back to the most recently created record when none is active.
// @Tags site
// @Produce json
// @Success 200 {object} models.CompanyInfo
// @Failure 404 {object} response.ErrorResponse
// @Router /api/company [get]
func (r *Routers) Company(c echo.Context) error {
	const op = "http.routers.Company"

	log := r.log.With(
		slog.String("op", op),
	)

	info, err := r.SiteService.CompanyInfo(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, info)
}

// Team godoc
// @Summary Active team members
// @Tags site
// @Produce json
// @Success 200 {array} models.TeamMember
// @Router /api/team [get]
func (r *Routers) Team(c echo.Context) error {
	const op = "http.routers.Team"

	log := r.log.With(
		slog.String("op", op),
	)

	team, err := r.SiteService.Team(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, team)
}

// QuotesPage godoc
// @Summary Car insurance quotes page
// @Description The page is created with default content on first access.
// @Tags site
// @Produce json
// @Success 200 {object} models.CarInsuranceQuotesPage
// @Router /api/car-insurance-quotes [get]
func (r *Routers) QuotesPage(c echo.Context) error {
	const op = "http.routers.QuotesPage"

	log := r.log.With(
		slog.String("op", op),
	)

	page, err := r.SiteService.QuotesPage(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, page)
}

// RecentContent godoc
// @Summary Latest blog posts and FAQs
// @Tags site
// @Produce json
// @Success 200 {object} dto.RecentContentResponse
// @Router /api/recent-content [get]
func (r *Routers) RecentContent(c echo.Context) error {
	const op = "http.routers.RecentContent"

	log := r.log.With(
		slog.String("op", op),
	)

	recent, err := r.SiteService.RecentContent(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, recent)
}

// Contact godoc
// @Summary Submit the contact form
// @Description The submission is stored before notification mails are sent. A mail failure is reported in email_error.
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/contact [post]
func (r *Routers) Contact(c echo.Context) error {
	const op = "http.routers.Contact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ContactRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	resp, err := r.ContactService.Submit(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, resp)
}
