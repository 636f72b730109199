package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapp "github.com/Waleedanwar01/project-insurance-1/internal/app/http"
	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/jwt"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	httprouters "github.com/Waleedanwar01/project-insurance-1/internal/transport/http"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminSecret = "test-secret"
	// requests reach the server through a proxy on the private network
	proxyAddr = "10.0.0.2:41000"
	proxyIP   = "10.0.0.2"
)

type RoutersTestSuite struct {
	suite.Suite

	blog       *MockBlogService
	faq        *MockFAQService
	company    *MockCompanyService
	feedback   *MockFeedbackService
	navigation *MockNavigationService
	site       *MockSiteService
	contact    *MockContactService

	handler http.Handler
}

func (s *RoutersTestSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.blog = new(MockBlogService)
	s.faq = new(MockFAQService)
	s.company = new(MockCompanyService)
	s.feedback = new(MockFeedbackService)
	s.navigation = new(MockNavigationService)
	s.site = new(MockSiteService)
	s.contact = new(MockContactService)

	routers := httprouters.NewRouter(log, httprouters.Services{
		Blog:       s.blog,
		FAQ:        s.faq,
		Company:    s.company,
		Feedback:   s.feedback,
		Navigation: s.navigation,
		Site:       s.site,
		Contact:    s.contact,
	})

	server := httpapp.New(log, httpapp.Options{
		AdminSecret:    adminSecret,
		TrustedProxies: []string{"198.51.100.0/24"},
	}, routers)
	server.BuildRouters()
	s.handler = server.Handler()
}

func (s *RoutersTestSuite) TearDownTest() {
	s.blog.AssertExpectations(s.T())
	s.faq.AssertExpectations(s.T())
	s.company.AssertExpectations(s.T())
	s.feedback.AssertExpectations(s.T())
	s.navigation.AssertExpectations(s.T())
	s.site.AssertExpectations(s.T())
	s.contact.AssertExpectations(s.T())
}

func TestRoutersSuite(t *testing.T) {
	suite.Run(t, new(RoutersTestSuite))
}

func (s *RoutersTestSuite) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.RemoteAddr = proxyAddr
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RoutersTestSuite) adminHeader() []string {
	token, err := jwt.NewAdminToken("admin@example.com", adminSecret, time.Minute)
	require.NoError(s.T(), err)
	return []string{"Authorization", "Bearer " + token}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *RoutersTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("success", decode[response.Response](s.T(), rec).Status)
}

func (s *RoutersTestSuite) TestListPosts_PassesFilters() {
	s.blog.On("ListPosts", mock.Anything, models.BlogPostFilter{
		CategorySlug:       "auto",
		ParentCategoryName: "States",
		Search:             "teen",
		Ordering:           "-views",
		Page:               2,
		PerPage:            services.DefaultPerPage,
	}).Return(&dto.BlogPostListResponse{Posts: []dto.BlogPostSummary{{Slug: "teen-drivers"}}, TotalCount: 11, Page: 2}, nil)

	rec := s.do(http.MethodGet, "/api/blog/posts?category=auto&category__parent__name=States&search=teen&ordering=-views&page=2", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("public, max-age=300, stale-while-revalidate=600", rec.Header().Get("Cache-Control"))

	body := decode[dto.BlogPostListResponse](s.T(), rec)
	s.Equal(11, body.TotalCount)
	s.Require().Len(body.Posts, 1)
	s.Equal("teen-drivers", body.Posts[0].Slug)
}

func (s *RoutersTestSuite) TestGetPost_NotFound() {
	s.blog.On("GetPost", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	rec := s.do(http.MethodGet, "/api/blog/posts/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Header().Get("Cache-Control"))
	s.Equal(response.ErrNotFound, decode[response.ErrorResponse](s.T(), rec))
}

func (s *RoutersTestSuite) TestTrailingSlash() {
	s.navigation.On("Navbar", mock.Anything).Return([]models.NavEntry{
		{Title: "About Us", Label: "About", Group: "Company", PageType: "about", URL: "/about"},
	}, nil)

	rec := s.do(http.MethodGet, "/api/pages/nav/", "")

	s.Equal(http.StatusOK, rec.Code)
	entries := decode[[]models.NavEntry](s.T(), rec)
	s.Require().Len(entries, 1)
	s.Equal("about", entries[0].PageType)
}

func (s *RoutersTestSuite) TestInternalErrorIsGeneric() {
	s.navigation.On("Footer", mock.Anything).Return([]models.NavEntry(nil), errors.New("pool closed"))

	rec := s.do(http.MethodGet, "/api/pages/footer", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "pool closed")
	s.Equal(response.ErrInternal, decode[response.ErrorResponse](s.T(), rec))
}

func (s *RoutersTestSuite) TestGetFAQ_NotCached() {
	s.faq.On("GetFAQ", mock.Anything, "what-is-sr22").Return(&dto.FAQResponse{TagsList: []string{"sr22"}}, nil)

	rec := s.do(http.MethodGet, "/api/faqs/what-is-sr22", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get("Cache-Control"))
}

func (s *RoutersTestSuite) TestFAQLimits() {
	s.faq.On("Recent", mock.Anything, 3).Return([]dto.FAQSummary{}, nil)
	s.faq.On("Popular", mock.Anything, 0).Return([]dto.FAQSummary{}, nil)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/faqs/recent?limit=3", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/faqs/popular", "").Code)
}

func (s *RoutersTestSuite) TestListFAQs_Featured() {
	s.faq.On("ListFAQs", mock.Anything, mock.MatchedBy(func(f models.FAQFilter) bool {
		return f.FeaturedOnly && f.Priority == models.PriorityHigh && f.CategorySlug == "claims"
	})).Return(&dto.FAQListResponse{FAQs: []dto.FAQSummary{}}, nil)

	rec := s.do(http.MethodGet, "/api/faqs?featured=true&priority=high&category=claims", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RoutersTestSuite) TestListInsurers_HighRiskFlag() {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		s.company.On("ListCompanies", mock.Anything, models.CompanyFilter{HighRiskOnly: tt.want}).
			Return([]models.InsuranceCompany{}, nil).Once()

		rec := s.do(http.MethodGet, "/api/insurers?high_risk_recommended="+tt.value, "")
		s.Equal(http.StatusOK, rec.Code, tt.value)
	}
}

func (s *RoutersTestSuite) TestFeedback() {
	helpful := true

	tests := []struct {
		name       string
		target     string
		body       string
		mockSetup  func()
		wantStatus int
		check      func(rec *httptest.ResponseRecorder)
	}{
		{
			name:   "blog vote recorded",
			target: "/api/blog/posts/teen-drivers/feedback",
			body:   `{"is_helpful": true, "comment": "clear"}`,
			mockSetup: func() {
				s.feedback.On("SubmitFeedback", mock.Anything, dto.FeedbackInput{
					Kind:      models.KindBlogPost,
					Slug:      "teen-drivers",
					IsHelpful: &helpful,
					Comment:   "clear",
					IPAddress: "203.0.113.7",
				}).Return(&dto.CountersResponse{HelpfulCount: 1, HelpfulnessPercentage: 100}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			check: func(rec *httptest.ResponseRecorder) {
				body := decode[response.Response](s.T(), rec)
				s.Equal("success", body.Status)
				s.Equal(httprouters.MsgFeedbackSubmitted, body.Message)
				s.Contains(rec.Body.String(), `"helpful_count":1`)
			},
		},
		{
			name:   "second faq vote rejected",
			target: "/api/faqs/what-is-sr22/feedback",
			body:   `{"is_helpful": false}`,
			mockSetup: func() {
				s.feedback.On("SubmitFeedback", mock.Anything, mock.MatchedBy(func(in dto.FeedbackInput) bool {
					return in.Kind == models.KindFAQ && in.Slug == "what-is-sr22"
				})).Return(nil, storage.ErrAlreadyVoted).Once()
			},
			wantStatus: http.StatusBadRequest,
			check: func(rec *httptest.ResponseRecorder) {
				body := decode[response.ErrorResponse](s.T(), rec)
				s.Equal("You have already provided feedback for this FAQ", body.Error)
				s.NotContains(rec.Body.String(), "203.0.113.7")
			},
		},
		{
			name:       "missing vote",
			target:     "/api/reviews/panda-review/feedback",
			body:       `{"comment": "meh"}`,
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
			check: func(rec *httptest.ResponseRecorder) {
				body := decode[response.ErrorResponse](s.T(), rec)
				s.Contains(body.Fields, "is_helpful")
			},
		},
		{
			name:   "unknown review",
			target: "/api/reviews/missing/feedback",
			body:   `{"is_helpful": true}`,
			mockSetup: func() {
				s.feedback.On("SubmitFeedback", mock.Anything, mock.MatchedBy(func(in dto.FeedbackInput) bool {
					return in.Kind == models.KindReview && in.Slug == "missing"
				})).Return(nil, storage.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.mockSetup()

			rec := s.do(http.MethodPost, tt.target, tt.body, "X-Forwarded-For", "203.0.113.7")

			s.Equal(tt.wantStatus, rec.Code, rec.Body.String())
			if tt.check != nil {
				tt.check(rec)
			}
		})
	}
}

func (s *RoutersTestSuite) TestFeedback_ClientAddress() {
	tests := []struct {
		name string
		xff  string
		want string
	}{
		{name: "forwarded client", xff: "203.0.113.7", want: "203.0.113.7"},
		{name: "configured proxy hop skipped", xff: "203.0.113.8, 198.51.100.20", want: "203.0.113.8"},
		{name: "client supplied hops ignored", xff: "192.0.2.99, 203.0.113.9", want: "203.0.113.9"},
		{name: "garbage header", xff: strings.Repeat("a", 60), want: proxyIP},
		{name: "oversized last hop", xff: "203.0.113.1, " + strings.Repeat("f", 80), want: proxyIP},
		{name: "no header", want: proxyIP},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var got string
			s.feedback.On("SubmitFeedback", mock.Anything, mock.MatchedBy(func(in dto.FeedbackInput) bool {
				return in.Slug == "sr22-basics"
			})).Run(func(args mock.Arguments) {
				got = args.Get(1).(dto.FeedbackInput).IPAddress
			}).Return(&dto.CountersResponse{HelpfulCount: 1, HelpfulnessPercentage: 100}, nil).Once()

			var headers []string
			if tt.xff != "" {
				headers = []string{"X-Forwarded-For", tt.xff}
			}
			rec := s.do(http.MethodPost, "/api/blog/posts/sr22-basics/feedback", `{"is_helpful": true}`, headers...)

			s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
			s.Equal(tt.want, got)
			s.LessOrEqual(len(got), 45)
		})
	}
}

func (s *RoutersTestSuite) TestIncrementView() {
	s.feedback.On("IncrementView", mock.Anything, models.KindReview, "panda-review").Return(int64(42), nil)

	rec := s.do(http.MethodPost, "/api/reviews/panda-review/increment_view", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(int64(42), decode[dto.ViewsResponse](s.T(), rec).Views)
}

func (s *RoutersTestSuite) TestContact() {
	s.Run("accepted with mail warning", func() {
		id := uuid.New()
		s.contact.On("Submit", mock.Anything, mock.MatchedBy(func(r dto.ContactRequest) bool {
			return r.Email == "jane@example.com"
		})).Return(&dto.ContactResponse{ID: id, Message: "saved", EmailError: "smtp down"}, nil).Once()

		rec := s.do(http.MethodPost, "/api/contact",
			`{"name":"Jane","email":"jane@example.com","message":"Please call me back about my policy."}`)

		s.Equal(http.StatusCreated, rec.Code)
		body := decode[dto.ContactResponse](s.T(), rec)
		s.Equal(id, body.ID)
		s.Equal("smtp down", body.EmailError)
	})

	s.Run("invalid email", func() {
		rec := s.do(http.MethodPost, "/api/contact",
			`{"name":"Jane","email":"not-an-email","message":"Please call me back."}`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Enter a valid email address.", decode[response.ErrorResponse](s.T(), rec).Fields["email"])
	})

	s.Run("service validation", func() {
		s.contact.On("Submit", mock.Anything, mock.Anything).
			Return(nil, services.NewValidationError("message", "Message must be at least 10 characters long.")).Once()

		rec := s.do(http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@example.com","message":"short"}`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(decode[response.ErrorResponse](s.T(), rec).Fields, "message")
	})

	s.Run("malformed body", func() {
		rec := s.do(http.MethodPost, "/api/contact", `{"name":`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RoutersTestSuite) TestAdmin_RequiresToken() {
	rec := s.do(http.MethodPost, "/api/admin/nav", `{"action":"resequence","surface":"footer"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/admin/nav", `{"action":"resequence","surface":"footer"}`,
		"Authorization", "Bearer not-a-token")
	s.Equal(http.StatusForbidden, rec.Code)

	other, err := jwt.NewAdminToken("admin", "other-secret", time.Minute)
	s.Require().NoError(err)
	rec = s.do(http.MethodGet, "/api/admin/contacts", "", "Authorization", "Bearer "+other)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RoutersTestSuite) TestAdmin_NavAction() {
	s.navigation.On("ApplyNavAction", mock.Anything, dto.NavActionRequest{
		Action:    dto.NavAdd,
		Surface:   models.SurfaceNavbar,
		Group:     "Insurance Guide",
		PageTypes: []string{"car_insurance", "sr22"},
	}).Return(2, nil)

	rec := s.do(http.MethodPost, "/api/admin/nav",
		`{"action":"add","surface":"navbar","group":"Insurance Guide","page_types":["car_insurance","sr22"]}`,
		s.adminHeader()...)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(2, decode[dto.NavActionResponse](s.T(), rec).Updated)
}

func (s *RoutersTestSuite) TestAdmin_NavActionValidation() {
	rec := s.do(http.MethodPost, "/api/admin/nav", `{"action":"shuffle","surface":"navbar"}`, s.adminHeader()...)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decode[response.ErrorResponse](s.T(), rec).Fields, "action")
}

func (s *RoutersTestSuite) TestAdmin_CompanyActivation() {
	id := uuid.New()
	s.site.On("ActivateCompanyInfo", mock.Anything, id).Return(nil)
	s.site.On("DeactivateCompanyInfo", mock.Anything, id).Return(storage.ErrNotFound)

	rec := s.do(http.MethodPost, "/api/admin/company/"+id.String()+"/activate", "", s.adminHeader()...)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/admin/company/"+id.String()+"/deactivate", "", s.adminHeader()...)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/admin/company/not-a-uuid/activate", "", s.adminHeader()...)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decode[response.ErrorResponse](s.T(), rec).Fields, "id")
}

func (s *RoutersTestSuite) TestAdmin_ListContacts() {
	s.contact.On("List", mock.Anything, true, 1, services.DefaultPerPage).
		Return(&dto.ContactListResponse{Submissions: []models.ContactSubmission{}, Page: 1}, nil)

	rec := s.do(http.MethodGet, "/api/admin/contacts?unread=true", "", s.adminHeader()...)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RoutersTestSuite) TestAdmin_ImportQuotes() {
	s.site.On("ImportQuotesData", mock.Anything, dto.QuotesImportRequest{StatesText: "Ohio, 25/50/25, 40, 120"}).
		Return(&dto.QuotesImportResponse{States: 1}, nil)

	rec := s.do(http.MethodPost, "/api/admin/car-insurance-quotes/import",
		`{"states_text":"Ohio, 25/50/25, 40, 120"}`, s.adminHeader()...)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(1, decode[dto.QuotesImportResponse](s.T(), rec).States)
}

func TestMetricsEndpoint(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpapp.New(log, httpapp.Options{AdminSecret: adminSecret}, httprouters.NewRouter(log, httprouters.Services{}))
	server.BuildRouters()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "insurance_cms_http_requests_total")
}
