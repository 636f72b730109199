package repository

import (
	"context"
	"fmt"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CompanyRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var companyColumns = []string{
	"id", "name", "slug", "description", "website", "phone", "address", "logo",
	"is_high_risk_recommended", "high_risk_blurb", "is_active", "sort_order",
	"created_at", "updated_at",
}

func scanCompany(r row) (models.InsuranceCompany, error) {
	var c models.InsuranceCompany
	err := r.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Website, &c.Phone, &c.Address, &c.Logo,
		&c.IsHighRiskRecommended, &c.HighRiskBlurb, &c.IsActive, &c.Order,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *CompanyRepo) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.InsuranceCompany, error) {
	const op = "repository.company_repository.ListCompanies"

	qb := r.sb.Select(companyColumns...).
		From("insurance_companies").
		Where(sq.Eq{"is_active": true})

	if filter.HighRiskOnly {
		qb = qb.Where(sq.Eq{"is_high_risk_recommended": true})
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		qb = qb.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := qb.OrderBy("sort_order", "name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	companies := []models.InsuranceCompany{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

func (r *CompanyRepo) CompanyBySlug(ctx context.Context, slug string) (*models.InsuranceCompany, error) {
	const op = "repository.company_repository.CompanyBySlug"

	query, args, err := r.sb.Select(companyColumns...).
		From("insurance_companies").
		Where(sq.Eq{"slug": slug, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

var reviewColumns = []string{
	"r.id", "r.company_id", "c.name", "r.title", "r.slug", "r.summary", "r.content",
	"r.rating", "r.author_name", "r.meta_title", "r.meta_description", "r.meta_keywords",
	"r.is_published", "r.published_at", "r.views", "r.helpful_count", "r.not_helpful_count",
}

func (r *CompanyRepo) selectReviews() sq.SelectBuilder {
	return r.sb.Select(reviewColumns...).
		From("company_reviews r").
		Join("insurance_companies c ON c.id = r.company_id").
		Where(sq.Eq{"r.is_published": true})
}

func scanReview(r row) (models.CompanyReview, error) {
	var rv models.CompanyReview
	err := r.Scan(
		&rv.ID, &rv.CompanyID, &rv.CompanyName, &rv.Title, &rv.Slug, &rv.Summary, &rv.Content,
		&rv.Rating, &rv.AuthorName, &rv.MetaTitle, &rv.MetaDescription, &rv.MetaKeywords,
		&rv.IsPublished, &rv.PublishedAt, &rv.Views, &rv.HelpfulCount, &rv.NotHelpfulCount,
	)
	return rv, err
}

func (r *CompanyRepo) ReviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.CompanyReview, error) {
	const op = "repository.company_repository.ReviewsByCompany"

	query, args, err := r.selectReviews().
		Where(sq.Eq{"r.company_id": companyID}).
		OrderBy("r.published_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	reviews := []models.CompanyReview{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

func (r *CompanyRepo) ReviewBySlug(ctx context.Context, slug string) (*models.CompanyReview, error) {
	const op = "repository.company_repository.ReviewBySlug"

	query, args, err := r.selectReviews().Where(sq.Eq{"r.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rv, err := scanReview(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rv, nil
}

func (r *CompanyRepo) GetOrCreateCompany(ctx context.Context, company models.InsuranceCompany) (models.InsuranceCompany, bool, error) {
	const op = "repository.company_repository.GetOrCreateCompany"

	query, args, err := r.sb.Insert("insurance_companies").
		Columns(
			"name", "slug", "description", "website", "phone", "address", "logo",
			"is_high_risk_recommended", "high_risk_blurb", "is_active", "sort_order",
		).
		Values(
			company.Name, company.Slug, company.Description, company.Website, company.Phone,
			company.Address, company.Logo, company.IsHighRiskRecommended, company.HighRiskBlurb,
			company.IsActive, company.Order,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return models.InsuranceCompany{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		company.ID = id
		return company, true, nil
	case !isNoRows(err):
		return models.InsuranceCompany{}, false, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Select(companyColumns...).
		From("insurance_companies").
		Where(sq.Or{sq.Eq{"slug": company.Slug}, sq.Eq{"name": company.Name}}).
		OrderByClause("slug = ? DESC", company.Slug).
		Limit(1).
		ToSql()
	if err != nil {
		return models.InsuranceCompany{}, false, fmt.Errorf("%s: %w", op, err)
	}

	existing, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.InsuranceCompany{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return existing, false, nil
}

func (r *CompanyRepo) GetOrCreateReview(ctx context.Context, review models.CompanyReview) (bool, error) {
	const op = "repository.company_repository.GetOrCreateReview"

	query, args, err := r.sb.Insert("company_reviews").
		Columns(
			"company_id", "title", "slug", "summary", "content", "rating", "author_name",
			"meta_title", "meta_description", "meta_keywords", "is_published", "published_at",
		).
		Values(
			review.CompanyID, review.Title, review.Slug, review.Summary, review.Content, review.Rating,
			review.AuthorName, review.MetaTitle, review.MetaDescription, review.MetaKeywords,
			review.IsPublished, review.PublishedAt,
		).
		Suffix("ON CONFLICT (slug) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}
