package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	mw "github.com/Waleedanwar01/project-insurance-1/internal/middleware"
	httprouters "github.com/Waleedanwar01/project-insurance-1/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{validator: validate}
}

type Options struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AdminSecret    string
	TrustedProxies []string
}

// ipExtractor reads the client address from X-Forwarded-For, walking back
// through trusted proxies only. Anything that does not parse as an IP falls
// back to the connection address.
func ipExtractor(log *slog.Logger, proxies []string) echo.IPExtractor {
	trust := []echo.TrustOption{
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(true),
		echo.TrustPrivateNet(true),
	}
	for _, cidr := range proxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn("skipping trusted proxy", slog.String("cidr", cidr), sl.Err(err))
			continue
		}
		trust = append(trust, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(trust...)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout

	e.Validator = NewValidator()
	e.IPExtractor = ipExtractor(log, opts.TrustedProxies)

	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/debug/") || strings.HasPrefix(path, "/swag/")
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Recover())
	e.Use(mw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) addr() string {
	return fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	r := s.routers
	public := mw.CacheControl(mw.PublicCacheControl)

	s.e.GET("/health", r.Health)
	s.e.GET("/metrics", echoprometheus.NewHandler())

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api")

	blog := api.Group("/blog")
	{
		blog.GET("/categories", r.ListCategories, public)
		blog.GET("/categories/:slug", r.GetCategory, public)
		blog.GET("/posts", r.ListPosts, public)
		blog.GET("/posts/:slug", r.GetPost, public)
		blog.POST("/posts/:slug/feedback", r.PostFeedback)
		blog.POST("/posts/:slug/increment_view", r.PostIncrementView)
	}
	api.GET("/states", r.ListStates, public)

	faqCategories := api.Group("/faq-categories")
	{
		faqCategories.GET("", r.ListFAQCategories, public)
		faqCategories.GET("/:slug", r.GetFAQCategory, public)
		faqCategories.GET("/:slug/faqs", r.FAQCategoryFAQs, public)
	}

	faqs := api.Group("/faqs")
	{
		faqs.GET("", r.ListFAQs, public)
		faqs.GET("/featured", r.FeaturedFAQs, public)
		faqs.GET("/recent", r.RecentFAQs, public)
		faqs.GET("/popular", r.PopularFAQs, public)
		faqs.GET("/:slug", r.GetFAQ)
		faqs.POST("/:slug/feedback", r.FAQFeedback)
	}
	api.GET("/search", r.SearchFAQs, public)
	api.GET("/recent-content", r.RecentContent, public)

	insurers := api.Group("/insurers")
	{
		insurers.GET("", r.ListInsurers, public)
		insurers.GET("/:slug", r.GetInsurer, public)
		insurers.GET("/:slug/reviews", r.InsurerReviews, public)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/:slug", r.GetReview, public)
		reviews.POST("/:slug/feedback", r.ReviewFeedback)
		reviews.POST("/:slug/increment_view", r.ReviewIncrementView)
	}

	pages := api.Group("/pages")
	{
		pages.GET("", r.ListPages, public)
		pages.GET("/nav", r.Navbar, public)
		pages.GET("/footer", r.Footer, public)
		pages.GET("/:page_type", r.GetPage, public)
	}

	api.GET("/team", r.Team, public)
	api.GET("/company", r.Company, public)
	api.GET("/car-insurance-quotes", r.QuotesPage, public)
	api.POST("/contact", r.Contact)

	admin := api.Group("/admin", mw.AdminOnly(s.log, s.opts.AdminSecret))
	{
		admin.POST("/nav", r.ApplyNavAction)
		admin.POST("/counters/reset", r.ResetCounters)
		admin.POST("/pages", r.CreatePage)
		admin.POST("/blog/posts", r.CreatePost)
		admin.POST("/faqs", r.CreateFAQ)
		admin.GET("/contacts", r.ListContacts)
		admin.POST("/contacts/:id/read", r.MarkContactRead)
		admin.POST("/company/:id/activate", r.ActivateCompanyInfo)
		admin.POST("/company/:id/deactivate", r.DeactivateCompanyInfo)
		admin.POST("/car-insurance-quotes/import", r.ImportQuotes)
	}
}
