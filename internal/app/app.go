package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapp "github.com/Waleedanwar01/project-insurance-1/internal/app/http"
	"github.com/Waleedanwar01/project-insurance-1/internal/cache"
	"github.com/Waleedanwar01/project-insurance-1/internal/config"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/mailer"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	blogservice "github.com/Waleedanwar01/project-insurance-1/internal/services/blog_service"
	companyservice "github.com/Waleedanwar01/project-insurance-1/internal/services/company_service"
	contactservice "github.com/Waleedanwar01/project-insurance-1/internal/services/contact_service"
	faqservice "github.com/Waleedanwar01/project-insurance-1/internal/services/faq_service"
	feedbackservice "github.com/Waleedanwar01/project-insurance-1/internal/services/feedback_service"
	navigationservice "github.com/Waleedanwar01/project-insurance-1/internal/services/navigation_service"
	seedservice "github.com/Waleedanwar01/project-insurance-1/internal/services/seed_service"
	siteservice "github.com/Waleedanwar01/project-insurance-1/internal/services/site_service"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage/postgresql"
	redisapp "github.com/Waleedanwar01/project-insurance-1/internal/storage/redis"
	httprouters "github.com/Waleedanwar01/project-insurance-1/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Seeder     *seedservice.Seeder

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	if cfg.Migrations.Auto {
		if err := postgresql.Migrate(log, cfg.DSN); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{log: log, storage: storage}

	c, err := a.newCache(ctx, cfg)
	if err != nil {
		storage.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(storage.Pool())

	contacts := contactservice.NewContactService(log, repo.Contact, newMailer(log, cfg.Mail), contactservice.SiteInfo{
		Name:       cfg.Site.Name,
		URL:        cfg.Site.URL,
		AdminEmail: cfg.Mail.AdminEmail,
	})

	routers := httprouters.NewRouter(log, httprouters.Services{
		Blog:       blogservice.NewBlogService(log, repo.Category, repo.Blog),
		FAQ:        faqservice.NewFAQService(log, repo.FAQ, repo.Counter),
		Company:    companyservice.NewCompanyService(log, repo.Company),
		Feedback:   feedbackservice.NewFeedbackService(log, repo.Counter),
		Navigation: navigationservice.NewNavigationService(log, repo.Page, c),
		Site:       siteservice.NewSiteService(log, repo.CompanyInfo, repo.Team, repo.QuotesPage, repo.Blog, repo.FAQ, c),
		Contact:    contacts,
	})

	a.HTTPServer = httpapp.New(log, httpapp.Options{
		Host:           cfg.HTTP.Host,
		Port:           cfg.HTTP.Port,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		AdminSecret:    cfg.Admin.JWTSecret,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	}, routers)

	a.Seeder = seedservice.NewSeeder(log, seedservice.Repositories{
		Categories:  repo.Category,
		Posts:       repo.Blog,
		FAQs:        repo.FAQ,
		Companies:   repo.Company,
		Pages:       repo.Page,
		CompanyInfo: repo.CompanyInfo,
		QuotesPages: repo.QuotesPage,
	}, cfg.Site.Name)

	return a, nil
}

func (a *App) newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	opts := cache.Options{TTL: cfg.Cache.TTL}

	if cfg.CacheBackend() != config.CacheRedis {
		a.log.Info("using in-memory cache")
		return cache.NewMemoryCache(opts), nil
	}

	client, err := redisapp.Connect(ctx, redisapp.Options{
		Addr:        cfg.Redis.RedisAddr,
		Password:    cfg.Redis.RedisPassword,
		DB:          cfg.Redis.RedisDB,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	a.redis = client

	a.log.Info("using redis cache", slog.String("addr", cfg.Redis.RedisAddr))
	return cache.NewRedisCache(client, opts), nil
}

func newMailer(log *slog.Logger, cfg config.MailConfig) mailer.Sender {
	if !cfg.Enabled {
		log.Info("mail delivery disabled, notifications are logged")
		return mailer.NewLogMailer(log)
	}

	return mailer.NewSMTPMailer(log, mailer.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password,
		From:     cfg.From,
		Timeout:  cfg.Timeout,
	})
}

// Stop shuts the HTTP server down and releases connections.
func (a *App) Stop() {
	const op = "app.Stop"
	log := a.log.With(slog.String("op", op))

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Stop(); err != nil {
			log.Error("http server stop", sl.Err(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Error("redis close", sl.Err(err))
		}
	}
	a.storage.Stop()
}
