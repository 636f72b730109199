package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListPages godoc
// @Summary List active static pages
// @Tags pages
// @Produce json
// @Success 200 {array} dto.StaticPageResponse
// @Router /api/pages [get]
func (r *Routers) ListPages(c echo.Context) error {
	const op = "http.routers.ListPages"

	log := r.log.With(
		slog.String("op", op),
	)

	pages, err := r.NavigationService.ListPages(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, pages)
}

// GetPage godoc
// @Summary Get an active static page
// @Tags pages
// @Produce json
// @Param page_type path string true "Page type"
// @Success 200 {object} dto.StaticPageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/pages/{page_type} [get]
func (r *Routers) GetPage(c echo.Context) error {
	const op = "http.routers.GetPage"

	log := r.log.With(
		slog.String("op", op),
	)

	page, err := r.NavigationService.GetPage(c.Request().Context(), c.Param("page_type"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, page)
}

// Navbar godoc
// @Summary Navbar menu entries
// @Description Active pages shown in the navbar, ordered by nav order then title.
// @Tags pages
// @Produce json
// @Success 200 {array} models.NavEntry
// @Router /api/pages/nav [get]
func (r *Routers) Navbar(c echo.Context) error {
	const op = "http.routers.Navbar"

	log := r.log.With(
		slog.String("op", op),
	)

	entries, err := r.NavigationService.Navbar(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// Footer godoc
// @Summary Footer menu entries
// @Tags pages
// @Produce json
// @Success 200 {array} models.NavEntry
// @Router /api/pages/footer [get]
func (r *Routers) Footer(c echo.Context) error {
	const op = "http.routers.Footer"

	log := r.log.With(
		slog.String("op", op),
	)

	entries, err := r.NavigationService.Footer(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, entries)
}
