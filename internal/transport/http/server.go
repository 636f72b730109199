package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "github.com/Waleedanwar01/project-insurance-1/docs"
)

type BlogService interface {
	ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error)
	GetCategory(ctx context.Context, slug string) (*models.Category, error)
	ListStates(ctx context.Context) ([]models.Category, error)
	ListPosts(ctx context.Context, filter models.BlogPostFilter) (*dto.BlogPostListResponse, error)
	GetPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
}

type FAQService interface {
	ListCategories(ctx context.Context) ([]models.FAQCategory, error)
	GetCategory(ctx context.Context, slug string) (*models.FAQCategory, error)
	CategoryFAQs(ctx context.Context, slug string) ([]dto.FAQSummary, error)
	ListFAQs(ctx context.Context, filter models.FAQFilter) (*dto.FAQListResponse, error)
	GetFAQ(ctx context.Context, slug string) (*dto.FAQResponse, error)
	Featured(ctx context.Context) ([]dto.FAQSummary, error)
	Recent(ctx context.Context, limit int) ([]dto.FAQSummary, error)
	Popular(ctx context.Context, limit int) ([]dto.FAQSummary, error)
	Search(ctx context.Context, q string) ([]dto.FAQSummary, error)
	CreateFAQ(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error)
}

type CompanyService interface {
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error)
	GetCompany(ctx context.Context, slug string) (*dto.CompanyDetailResponse, error)
	CompanyReviews(ctx context.Context, companySlug string) ([]dto.ReviewResponse, error)
	GetReview(ctx context.Context, slug string) (*dto.ReviewResponse, error)
}

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, in dto.FeedbackInput) (*dto.CountersResponse, error)
	IncrementView(ctx context.Context, kind models.ContentKind, slug string) (int64, error)
	ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (*dto.CountersResponse, error)
}

type NavigationService interface {
	Navbar(ctx context.Context) ([]models.NavEntry, error)
	Footer(ctx context.Context) ([]models.NavEntry, error)
	ApplyNavAction(ctx context.Context, req dto.NavActionRequest) (int, error)
	ListPages(ctx context.Context) ([]dto.StaticPageResponse, error)
	GetPage(ctx context.Context, pageType string) (*dto.StaticPageResponse, error)
	CreatePage(ctx context.Context, req dto.CreatePageRequest) (*dto.StaticPageResponse, error)
}

type SiteService interface {
	CompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
	ActivateCompanyInfo(ctx context.Context, id uuid.UUID) error
	DeactivateCompanyInfo(ctx context.Context, id uuid.UUID) error
	Team(ctx context.Context) ([]models.TeamMember, error)
	QuotesPage(ctx context.Context) (*models.CarInsuranceQuotesPage, error)
	ImportQuotesData(ctx context.Context, req dto.QuotesImportRequest) (*dto.QuotesImportResponse, error)
	RecentContent(ctx context.Context) (*dto.RecentContentResponse, error)
}

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error)
	List(ctx context.Context, unreadOnly bool, page, perPage int) (*dto.ContactListResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Services groups the handlers' dependencies.
type Services struct {
	Blog       BlogService
	FAQ        FAQService
	Company    CompanyService
	Feedback   FeedbackService
	Navigation NavigationService
	Site       SiteService
	Contact    ContactService
}

type Routers struct {
	log               *slog.Logger
	BlogService       BlogService
	FAQService        FAQService
	CompanyService    CompanyService
	FeedbackService   FeedbackService
	NavigationService NavigationService
	SiteService       SiteService
	ContactService    ContactService
}

func NewRouter(log *slog.Logger, svc Services) *Routers {
	return &Routers{
		log:               log,
		BlogService:       svc.Blog,
		FAQService:        svc.FAQ,
		CompanyService:    svc.Company,
		FeedbackService:   svc.Feedback,
		NavigationService: svc.Navigation,
		SiteService:       svc.Site,
		ContactService:    svc.Contact,
	}
}

const (
	MsgFeedbackSubmitted = "Feedback submitted successfully"
	msgAlreadyVoted      = "You have already provided feedback for this "
)

// fail writes the error envelope for err. Unexpected errors are logged and
// reported without detail.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	var ve *services.ValidationError

	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, response.ValidationErrorResponse(ve.Fields))
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUnknownKind):
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	log.Error("request failed", sl.Err(err))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// bind decodes and validates the request body into dst.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return services.NewValidationError("body", "Invalid request format.")
	}
	if err := c.Validate(dst); err != nil {
		return services.FromValidator(err)
	}
	return nil
}

func pagination(c echo.Context) (int, int) {
	var page, perPage int
	_ = echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("per_page", &perPage).
		BindError()
	return services.Paginate(page, perPage)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, services.NewValidationError("id", "Must be a valid UUID.")
	}
	return id, nil
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "ok"})
}

// submitFeedback is shared by every .../feedback endpoint.
func (r *Routers) submitFeedback(c echo.Context, kind models.ContentKind) error {
	const op = "http.routers.SubmitFeedback"

	log := r.log.With(
		slog.String("op", op),
		slog.String("kind", string(kind)),
	)

	var req dto.FeedbackRequest
	if err := bind(c, &req); err != nil {
		return r.fail(c, log, err)
	}

	counters, err := r.FeedbackService.SubmitFeedback(c.Request().Context(), dto.FeedbackInput{
		Kind:      kind,
		Slug:      c.Param("slug"),
		IsHelpful: req.IsHelpful,
		Comment:   req.Comment,
		IPAddress: c.RealIP(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyVoted) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Status: "error",
				Error:  msgAlreadyVoted + kind.Label(),
			})
		}
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Message: MsgFeedbackSubmitted,
		Data:    counters,
	})
}

func (r *Routers) incrementView(c echo.Context, kind models.ContentKind) error {
	const op = "http.routers.IncrementView"

	log := r.log.With(
		slog.String("op", op),
		slog.String("kind", string(kind)),
	)

	views, err := r.FeedbackService.IncrementView(c.Request().Context(), kind, c.Param("slug"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.ViewsResponse{Views: views})
}
