package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CompanyInfoRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCompanyInfoRepository(db *pgxpool.Pool) *CompanyInfoRepo {
	return &CompanyInfoRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var companyInfoColumns = []string{
	"id", "company_name", "tagline", "description", "address", "phone", "email", "website",
	"navbar_logo", "navbar_logo_alt", "footer_logo", "footer_logo_alt", "favicon",
	"facebook_url", "twitter_url", "linkedin_url", "instagram_url",
	"footer_disclaimer", "business_hours", "meta_title", "meta_description",
	"meta_image", "meta_image_alt", "is_active", "created_at", "updated_at",
}

func scanCompanyInfo(r row) (models.CompanyInfo, error) {
	var c models.CompanyInfo
	err := r.Scan(
		&c.ID, &c.CompanyName, &c.Tagline, &c.Description, &c.Address, &c.Phone, &c.Email, &c.Website,
		&c.NavbarLogo, &c.NavbarLogoAlt, &c.FooterLogo, &c.FooterLogoAlt, &c.Favicon,
		&c.FacebookURL, &c.TwitterURL, &c.LinkedinURL, &c.InstagramURL,
		&c.FooterDisclaimer, &c.BusinessHours, &c.MetaTitle, &c.MetaDescription,
		&c.MetaImage, &c.MetaImageAlt, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// ActiveCompanyInfo returns the active row. When none is active the most
// recently updated row is returned instead.
func (r *CompanyInfoRepo) ActiveCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	const op = "repository.site_repository.ActiveCompanyInfo"

	query, args, err := r.sb.Select(companyInfoColumns...).
		From("company_info").
		OrderBy("is_active DESC", "updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := scanCompanyInfo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &info, nil
}

// ActivateCompanyInfo makes id the only active row. All rows are locked first
// so concurrent activations serialize.
func (r *CompanyInfoRepo) ActivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	const op = "repository.site_repository.ActivateCompanyInfo"

	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		query, args, err := r.sb.Select("id").
			From("company_info").
			OrderBy("id").
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}

		found := false
		for rows.Next() {
			var rowID uuid.UUID
			if err := rows.Scan(&rowID); err != nil {
				rows.Close()
				return err
			}
			if rowID == id {
				found = true
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if !found {
			return storage.ErrNotFound
		}

		query, args, err = r.sb.Update("company_info").
			Set("is_active", false).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"is_active": true}).
			Where(sq.NotEq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		query, args, err = r.sb.Update("company_info").
			Set("is_active", true).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "is_active": false}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CompanyInfoRepo) DeactivateCompanyInfo(ctx context.Context, id uuid.UUID) error {
	const op = "repository.site_repository.DeactivateCompanyInfo"

	query, args, err := r.sb.Update("company_info").
		Set("is_active", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *CompanyInfoRepo) EnsureCompanyInfo(ctx context.Context, info models.CompanyInfo) (bool, error) {
	const op = "repository.site_repository.EnsureCompanyInfo"

	created := false

	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "LOCK TABLE company_info IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM company_info)").Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		query, args, err := r.sb.Insert("company_info").
			Columns(
				"company_name", "tagline", "description", "address", "phone", "email", "website",
				"footer_disclaimer", "business_hours", "meta_title", "meta_description", "is_active",
			).
			Values(
				info.CompanyName, info.Tagline, info.Description, info.Address, info.Phone,
				info.Email, info.Website, info.FooterDisclaimer, info.BusinessHours,
				info.MetaTitle, info.MetaDescription, info.IsActive,
			).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		created = true

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

type TeamRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TeamRepo) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	const op = "repository.site_repository.ListTeamMembers"

	query, args, err := r.sb.Select(
		"id", "name", "position", "bio", "image", "email", "linkedin_url", "twitter_url",
		"sort_order", "is_active", "created_at",
	).
		From("team_members").
		Where(sq.Eq{"is_active": true}).
		OrderBy("sort_order", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	members := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		err := rows.Scan(
			&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image, &m.Email, &m.LinkedinURL, &m.TwitterURL,
			&m.Order, &m.IsActive, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

type QuotesPageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewQuotesPageRepository(db *pgxpool.Pool) *QuotesPageRepo {
	return &QuotesPageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var quotesPageColumns = []string{
	"id", "title", "last_updated", "meta_title", "meta_description", "meta_keywords",
	"intro_paragraphs", "takeaways", "state_insurance_data", "faqs", "body_html", "toc_items",
	"video_url", "author_name", "author_bio", "author_image", "author_context",
	"created_at", "updated_at",
}

func scanQuotesPage(r row) (models.CarInsuranceQuotesPage, error) {
	var p models.CarInsuranceQuotesPage
	err := r.Scan(
		&p.ID, &p.Title, &p.LastUpdated, &p.MetaTitle, &p.MetaDescription, &p.MetaKeywords,
		&p.IntroParagraphs, &p.Takeaways, &p.StateInsuranceData, &p.FAQs, &p.BodyHTML, &p.TocItems,
		&p.VideoURL, &p.AuthorName, &p.AuthorBio, &p.AuthorImage, &p.AuthorContext,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func jsonb(v any) ([]byte, error) {
	return json.Marshal(v)
}

// GetOrCreateQuotesPage returns the oldest quotes page, inserting defaults
// when there is none. An advisory lock keeps concurrent first requests from
// creating two documents.
func (r *QuotesPageRepo) GetOrCreateQuotesPage(ctx context.Context, defaults models.CarInsuranceQuotesPage) (*models.CarInsuranceQuotesPage, bool, error) {
	const op = "repository.site_repository.GetOrCreateQuotesPage"

	var (
		page    models.CarInsuranceQuotesPage
		created bool
	)

	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext('car_insurance_quotes_pages'))"); err != nil {
			return err
		}

		query, args, err := r.sb.Select(quotesPageColumns...).
			From("car_insurance_quotes_pages").
			OrderBy("created_at", "id").
			Limit(1).
			ToSql()
		if err != nil {
			return err
		}

		page, err = scanQuotesPage(tx.QueryRow(ctx, query, args...))
		if err == nil {
			return nil
		}
		if !isNoRows(err) {
			return err
		}

		intro, err := jsonb(defaults.IntroParagraphs)
		if err != nil {
			return err
		}
		takeaways, err := jsonb(defaults.Takeaways)
		if err != nil {
			return err
		}
		states, err := jsonb(defaults.StateInsuranceData)
		if err != nil {
			return err
		}
		faqs, err := jsonb(defaults.FAQs)
		if err != nil {
			return err
		}
		toc, err := jsonb(defaults.TocItems)
		if err != nil {
			return err
		}

		query, args, err = r.sb.Insert("car_insurance_quotes_pages").
			Columns(
				"title", "last_updated", "meta_title", "meta_description", "meta_keywords",
				"intro_paragraphs", "takeaways", "state_insurance_data", "faqs", "body_html", "toc_items",
				"video_url", "author_name", "author_bio", "author_context",
			).
			Values(
				defaults.Title, defaults.LastUpdated, defaults.MetaTitle, defaults.MetaDescription, defaults.MetaKeywords,
				intro, takeaways, states, faqs, defaults.BodyHTML, toc,
				defaults.VideoURL, defaults.AuthorName, defaults.AuthorBio, defaults.AuthorContext,
			).
			Suffix("RETURNING " + strings.Join(quotesPageColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}

		page, err = scanQuotesPage(tx.QueryRow(ctx, query, args...))
		if err != nil {
			return err
		}
		created = true

		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return &page, created, nil
}

func (r *QuotesPageRepo) UpdateQuotesPageData(ctx context.Context, id uuid.UUID, states []models.StateRate, faqs []models.QuoteFAQ) error {
	const op = "repository.site_repository.UpdateQuotesPageData"

	ub := r.sb.Update("car_insurance_quotes_pages").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if states != nil {
		raw, err := jsonb(states)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		ub = ub.Set("state_insurance_data", raw)
	}
	if faqs != nil {
		raw, err := jsonb(faqs)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		ub = ub.Set("faqs", raw)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
