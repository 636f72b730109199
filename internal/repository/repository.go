package repository

import (
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	Category    CategoryRepository
	Blog        BlogRepository
	FAQ         FAQRepository
	Company     CompanyRepository
	Counter     CounterRepository
	Page        PageRepository
	CompanyInfo CompanyInfoRepository
	Team        TeamRepository
	QuotesPage  QuotesPageRepository
	Contact     ContactRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Category:    NewCategoryRepository(db),
		Blog:        NewBlogRepository(db),
		FAQ:         NewFAQRepository(db),
		Company:     NewCompanyRepository(db),
		Counter:     NewCounterRepository(db),
		Page:        NewPageRepository(db),
		CompanyInfo: NewCompanyInfoRepository(db),
		Team:        NewTeamRepository(db),
		QuotesPage:  NewQuotesPageRepository(db),
		Contact:     NewContactRepository(db),
	}
}

// row is satisfied by pgx.Row and pgx.Rows.
type row interface {
	Scan(dest ...any) error
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}
	return page, perPage
}

func likePattern(q string) string {
	return "%" + q + "%"
}
