package repository

import (
	"context"
	"fmt"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type FAQRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewFAQRepository(db *pgxpool.Pool) *FAQRepo {
	return &FAQRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const faqDefaultOrdering = "fc.sort_order ASC, f.sort_order ASC, f.created_at DESC"

var faqOrdering = map[string]string{
	"created_at":     "f.created_at ASC",
	"-created_at":    "f.created_at DESC",
	"views":          "f.views ASC",
	"-views":         "f.views DESC",
	"helpful_count":  "f.helpful_count ASC",
	"-helpful_count": "f.helpful_count DESC",
	// composite orderings used by the popular, search and per-category listings
	"popular":  "f.views DESC, f.helpful_count DESC",
	"search":   "f.views DESC, f.created_at DESC",
	"category": "f.sort_order ASC, f.created_at DESC",
}

var faqColumns = []string{
	"f.id", "f.question", "f.slug", "f.answer", "f.short_answer", "f.category_id",
	"f.priority", "f.tags", "f.is_published", "f.is_featured", "f.sort_order",
	"f.author_name", "f.author_bio", "f.meta_title", "f.meta_description", "f.meta_keywords",
	"f.created_at", "f.updated_at", "f.views", "f.helpful_count", "f.not_helpful_count",
	"fc.name", "fc.slug", "fc.icon", "fc.sort_order",
}

func (r *FAQRepo) selectFAQs(cols ...string) sq.SelectBuilder {
	return r.sb.Select(cols...).
		From("faqs f").
		Join("faq_categories fc ON fc.id = f.category_id").
		Where(sq.Eq{"f.is_published": true})
}

func scanFAQ(r row) (models.FAQ, error) {
	var (
		f   models.FAQ
		cat models.FAQCategory
	)

	err := r.Scan(
		&f.ID, &f.Question, &f.Slug, &f.Answer, &f.ShortAnswer, &f.CategoryID,
		&f.Priority, &f.Tags, &f.IsPublished, &f.IsFeatured, &f.Order,
		&f.AuthorName, &f.AuthorBio, &f.MetaTitle, &f.MetaDescription, &f.MetaKeywords,
		&f.CreatedAt, &f.UpdatedAt, &f.Views, &f.HelpfulCount, &f.NotHelpfulCount,
		&cat.Name, &cat.Slug, &cat.Icon, &cat.Order,
	)
	if err != nil {
		return models.FAQ{}, err
	}

	cat.ID = f.CategoryID
	cat.IsActive = true
	f.Category = &cat

	return f, nil
}

func applyFAQFilter(qb sq.SelectBuilder, f models.FAQFilter) sq.SelectBuilder {
	if f.CategorySlug != "" {
		qb = qb.Where(sq.Eq{"fc.slug": f.CategorySlug})
	}
	if f.Priority != "" {
		qb = qb.Where(sq.Eq{"f.priority": f.Priority})
	}
	if f.FeaturedOnly {
		qb = qb.Where(sq.Eq{"f.is_featured": true})
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		qb = qb.Where(sq.Or{
			sq.ILike{"f.question": pattern},
			sq.ILike{"f.answer": pattern},
			sq.ILike{"f.short_answer": pattern},
			sq.ILike{"f.tags": pattern},
		})
	}
	return qb
}

// ListFAQs returns published FAQs. A positive Limit returns the first Limit
// rows without pagination.
func (r *FAQRepo) ListFAQs(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int, error) {
	const op = "repository.faq_repository.ListFAQs"

	order, ok := faqOrdering[filter.Ordering]
	if !ok {
		order = faqDefaultOrdering
	}

	qb := applyFAQFilter(r.selectFAQs(faqColumns...), filter).OrderBy(order, "f.id")

	total := -1
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	} else {
		page, perPage := normalizePage(filter.Page, filter.PerPage)

		countQuery, countArgs, err := applyFAQFilter(r.selectFAQs("COUNT(*)"), filter).ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("%s: count: %w", op, err)
		}

		qb = qb.Limit(uint64(perPage)).Offset(uint64((page - 1) * perPage))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if total < 0 {
		total = len(faqs)
	}

	return faqs, total, nil
}

func (r *FAQRepo) FAQBySlug(ctx context.Context, slug string) (*models.FAQ, error) {
	const op = "repository.faq_repository.FAQBySlug"

	query, args, err := r.selectFAQs(faqColumns...).Where(sq.Eq{"f.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f, err := scanFAQ(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &f, nil
}

func (r *FAQRepo) selectCategories() sq.SelectBuilder {
	return r.sb.Select(
		"fc.id", "fc.name", "fc.slug", "fc.description", "fc.icon", "fc.sort_order",
		"fc.is_active", "fc.created_at", "fc.updated_at",
		"COUNT(f.id) FILTER (WHERE f.is_published)",
	).
		From("faq_categories fc").
		LeftJoin("faqs f ON f.category_id = fc.id").
		Where(sq.Eq{"fc.is_active": true}).
		GroupBy("fc.id")
}

func scanFAQCategory(r row) (models.FAQCategory, error) {
	var c models.FAQCategory
	err := r.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Order,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.FAQCount,
	)
	return c, err
}

func (r *FAQRepo) ListFAQCategories(ctx context.Context) ([]models.FAQCategory, error) {
	const op = "repository.faq_repository.ListFAQCategories"

	query, args, err := r.selectCategories().OrderBy("fc.sort_order", "fc.name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []models.FAQCategory{}
	for rows.Next() {
		c, err := scanFAQCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *FAQRepo) FAQCategoryBySlug(ctx context.Context, slug string) (*models.FAQCategory, error) {
	const op = "repository.faq_repository.FAQCategoryBySlug"

	query, args, err := r.selectCategories().Where(sq.Eq{"fc.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := scanFAQCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (r *FAQRepo) insertFAQ(faq models.FAQ) sq.InsertBuilder {
	return r.sb.Insert("faqs").
		Columns(
			"question", "slug", "answer", "short_answer", "category_id", "priority", "tags",
			"is_published", "is_featured", "sort_order", "author_name", "author_bio",
			"meta_title", "meta_description", "meta_keywords",
		).
		Values(
			faq.Question, faq.Slug, faq.Answer, faq.ShortAnswer, faq.CategoryID, faq.Priority, faq.Tags,
			faq.IsPublished, faq.IsFeatured, faq.Order, faq.AuthorName, faq.AuthorBio,
			faq.MetaTitle, faq.MetaDescription, faq.MetaKeywords,
		)
}

func (r *FAQRepo) SaveFAQ(ctx context.Context, faq models.FAQ) (uuid.UUID, error) {
	const op = "repository.faq_repository.SaveFAQ"

	query, args, err := r.insertFAQ(faq).Suffix("RETURNING id").ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if postgresql.IsUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *FAQRepo) GetOrCreateFAQ(ctx context.Context, faq models.FAQ) (bool, error) {
	const op = "repository.faq_repository.GetOrCreateFAQ"

	query, args, err := r.insertFAQ(faq).Suffix("ON CONFLICT (slug) DO NOTHING").ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}

// GetOrCreateFAQCategory inserts the category unless its name or slug is taken.
func (r *FAQRepo) GetOrCreateFAQCategory(ctx context.Context, category models.FAQCategory) (models.FAQCategory, bool, error) {
	const op = "repository.faq_repository.GetOrCreateFAQCategory"

	query, args, err := r.sb.Insert("faq_categories").
		Columns("name", "slug", "description", "icon", "sort_order", "is_active").
		Values(category.Name, category.Slug, category.Description, category.Icon, category.Order, category.IsActive).
		Suffix("ON CONFLICT DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return models.FAQCategory{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		category.ID = id
		return category, true, nil
	case !isNoRows(err):
		return models.FAQCategory{}, false, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Select("id", "name", "slug", "description", "icon", "sort_order", "is_active").
		From("faq_categories").
		Where(sq.Or{sq.Eq{"slug": category.Slug}, sq.Eq{"name": category.Name}}).
		OrderByClause("slug = ? DESC", category.Slug).
		Limit(1).
		ToSql()
	if err != nil {
		return models.FAQCategory{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var existing models.FAQCategory
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&existing.ID, &existing.Name, &existing.Slug, &existing.Description,
		&existing.Icon, &existing.Order, &existing.IsActive,
	)
	if err != nil {
		return models.FAQCategory{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return existing, false, nil
}
