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

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CategoryRepo) selectCategories() sq.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.name", "c.slug", "c.type", "c.parent_id",
		"COALESCE(pc.slug, '')", "COALESCE(pc.name, '')",
	).
		From("blog_categories c").
		LeftJoin("blog_categories pc ON pc.id = c.parent_id")
}

func scanCategory(r row) (models.Category, error) {
	var c models.Category
	err := r.Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.ParentID, &c.ParentSlug, &c.ParentName)
	return c, err
}

func (r *CategoryRepo) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	const op = "repository.category_repository.ListCategories"

	qb := r.selectCategories()
	if filter.Type != "" {
		qb = qb.Where(sq.Eq{"c.type": filter.Type})
	}
	if filter.ParentSlug != "" {
		qb = qb.Where(sq.Eq{"pc.slug": filter.ParentSlug})
	}
	if filter.ParentName != "" {
		qb = qb.Where(sq.Eq{"pc.name": filter.ParentName})
	}

	query, args, err := qb.OrderBy("c.name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepo) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "repository.category_repository.CategoryBySlug"

	query, args, err := r.selectCategories().Where(sq.Eq{"c.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

// GetOrCreateCategory inserts the category unless its name or slug is taken.
// An existing row matching the name wins over one matching only the slug.
func (r *CategoryRepo) GetOrCreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error) {
	const op = "repository.category_repository.GetOrCreateCategory"

	query, args, err := r.sb.Insert("blog_categories").
		Columns("name", "slug", "type", "parent_id").
		Values(category.Name, category.Slug, category.Type, category.ParentID).
		Suffix("ON CONFLICT DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return models.Category{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		category.ID = id
		return category, true, nil
	case !isNoRows(err):
		return models.Category{}, false, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.selectCategories().
		Where(sq.Or{sq.Eq{"c.name": category.Name}, sq.Eq{"c.slug": category.Slug}}).
		OrderByClause("c.name = ? DESC", category.Name).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Category{}, false, fmt.Errorf("%s: %w", op, err)
	}

	existing, err := scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Category{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return existing, false, nil
}
