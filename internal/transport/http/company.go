package http

import (
	"log/slog"
	"net/http"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"

	"github.com/labstack/echo/v4"
)

func truthy(v string) bool {
	return v == "1" || v == "true" || v == "True"
}

// ListInsurers godoc
// @Summary List active insurance companies
// @Tags companies
// @Produce json
// @Param high_risk_recommended query string false "1 or true for high-risk recommendations only"
// @Param search query string false "Search name and description"
// @Success 200 {array} models.InsuranceCompany
// @Router /api/insurers [get]
func (r *Routers) ListInsurers(c echo.Context) error {
	const op = "http.routers.ListInsurers"

	log := r.log.With(
		slog.String("op", op),
	)

	companies, err := r.CompanyService.ListCompanies(c.Request().Context(), models.CompanyFilter{
		HighRiskOnly: truthy(c.QueryParam("high_risk_recommended")),
		Search:       c.QueryParam("search"),
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, companies)
}

// GetInsurer godoc
// @Summary Get an insurance company with its reviews
// @Tags companies
// @Produce json
// @Param slug path string true "Company slug"
// @Success 200 {object} dto.CompanyDetailResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/insurers/{slug} [get]
func (r *Routers) GetInsurer(c echo.Context) error {
	const op = "http.routers.GetInsurer"

	log := r.log.With(
		slog.String("op", op),
	)

	company, err := r.CompanyService.GetCompany(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, company)
}

// InsurerReviews godoc
// @Summary List published reviews of a company
// @Tags companies
// @Produce json
// @Param slug path string true "Company slug"
// @Success 200 {array} dto.ReviewResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/insurers/{slug}/reviews [get]
func (r *Routers) InsurerReviews(c echo.Context) error {
	const op = "http.routers.InsurerReviews"

	log := r.log.With(
		slog.String("op", op),
	)

	reviews, err := r.CompanyService.CompanyReviews(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

// GetReview godoc
// @Summary Get a company review
// @Tags companies
// @Produce json
// @Param slug path string true "Review slug"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/reviews/{slug} [get]
func (r *Routers) GetReview(c echo.Context) error {
	const op = "http.routers.GetReview"

	log := r.log.With(
		slog.String("op", op),
	)

	review, err := r.CompanyService.GetReview(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, review)
}

// ReviewFeedback godoc
// @Summary Vote on a company review
// @Tags companies
// @Accept json
// @Produce json
// @Param slug path string true "Review slug"
// @Param request body dto.FeedbackRequest true "Vote"
// @Success 201 {object} response.Response{data=dto.CountersResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/reviews/{slug}/feedback [post]
func (r *Routers) ReviewFeedback(c echo.Context) error {
	return r.submitFeedback(c, models.KindReview)
}

// ReviewIncrementView godoc
// @Summary Count a review view
// @Tags companies
// @Produce json
// @Param slug path string true "Review slug"
// @Success 200 {object} dto.ViewsResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/reviews/{slug}/increment_view [post]
func (r *Routers) ReviewIncrementView(c echo.Context) error {
	return r.incrementView(c, models.KindReview)
}
