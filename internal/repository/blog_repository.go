package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var blogOrdering = map[string]string{
	"published_at":  "p.published_at ASC",
	"-published_at": "p.published_at DESC",
	"views":         "p.views ASC",
	"-views":        "p.views DESC",
}

var blogPostColumns = []string{
	"p.id", "p.title", "p.slug", "p.category_id", "p.summary", "p.content",
	"p.feature_image", "p.video_url", "p.author_name", "p.author_bio", "p.author_image",
	"p.meta_title", "p.meta_description", "p.meta_keywords",
	"p.is_published", "p.published_at", "p.updated_at", "p.chart_data",
	"p.views", "p.helpful_count", "p.not_helpful_count",
	"c.name", "c.slug", "c.type", "c.parent_id", "pc.slug", "pc.name",
}

func (b *BlogRepo) selectPosts(cols ...string) sq.SelectBuilder {
	return b.sb.Select(cols...).
		From("blog_posts p").
		LeftJoin("blog_categories c ON c.id = p.category_id").
		LeftJoin("blog_categories pc ON pc.id = c.parent_id").
		Where(sq.Eq{"p.is_published": true})
}

func scanBlogPost(r row) (models.BlogPost, error) {
	var (
		p          models.BlogPost
		catName    *string
		catSlug    *string
		catType    *string
		parentID   *uuid.UUID
		parentSlug *string
		parentName *string
	)

	err := r.Scan(
		&p.ID, &p.Title, &p.Slug, &p.CategoryID, &p.Summary, &p.Content,
		&p.FeatureImage, &p.VideoURL, &p.AuthorName, &p.AuthorBio, &p.AuthorImage,
		&p.MetaTitle, &p.MetaDescription, &p.MetaKeywords,
		&p.IsPublished, &p.PublishedAt, &p.UpdatedAt, &p.ChartData,
		&p.Views, &p.HelpfulCount, &p.NotHelpfulCount,
		&catName, &catSlug, &catType, &parentID, &parentSlug, &parentName,
	)
	if err != nil {
		return models.BlogPost{}, err
	}

	if p.CategoryID != nil && catName != nil {
		c := &models.Category{
			ID:       *p.CategoryID,
			Name:     *catName,
			Slug:     deref(catSlug),
			Type:     models.CategoryType(deref(catType)),
			ParentID: parentID,
		}
		c.ParentSlug = deref(parentSlug)
		c.ParentName = deref(parentName)
		p.Category = c
	}

	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func applyBlogFilter(qb sq.SelectBuilder, f models.BlogPostFilter) sq.SelectBuilder {
	if f.CategoryName != "" {
		qb = qb.Where(sq.Eq{"c.name": f.CategoryName})
	}
	if f.CategorySlug != "" {
		qb = qb.Where(sq.Eq{"c.slug": f.CategorySlug})
	}
	if f.ParentCategorySlug != "" {
		qb = qb.Where(sq.Eq{"pc.slug": f.ParentCategorySlug})
	}
	if f.ParentCategoryName != "" {
		qb = qb.Where(sq.Eq{"pc.name": f.ParentCategoryName})
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		qb = qb.Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.summary": pattern},
			sq.ILike{"p.content": pattern},
		})
	}
	return qb
}

func (b *BlogRepo) ListPosts(ctx context.Context, filter models.BlogPostFilter) ([]models.BlogPost, int, error) {
	const op = "repository.blog_repository.ListPosts"

	page, perPage := normalizePage(filter.Page, filter.PerPage)

	countQuery, countArgs, err := applyBlogFilter(b.selectPosts("COUNT(*)"), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := b.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	order, ok := blogOrdering[filter.Ordering]
	if !ok {
		order = blogOrdering["-published_at"]
	}

	query, args, err := applyBlogFilter(b.selectPosts(blogPostColumns...), filter).
		OrderBy(order, "p.id").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := b.queryPosts(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return posts, total, nil
}

func (b *BlogRepo) RecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	const op = "repository.blog_repository.RecentPosts"

	query, args, err := b.selectPosts(blogPostColumns...).
		OrderBy("p.published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := b.queryPosts(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

func (b *BlogRepo) queryPosts(ctx context.Context, query string, args []any) ([]models.BlogPost, error) {
	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (b *BlogRepo) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const op = "repository.blog_repository.PostBySlug"

	query, args, err := b.selectPosts(blogPostColumns...).Where(sq.Eq{"p.slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanBlogPost(b.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &post, nil
}

func (b *BlogRepo) insertPost(post models.BlogPost, suffix string) (string, []any, error) {
	var chart []byte
	if post.ChartData != nil {
		raw, err := json.Marshal(post.ChartData)
		if err != nil {
			return "", nil, err
		}
		chart = raw
	}

	ib := b.sb.Insert("blog_posts").
		Columns(
			"title", "slug", "category_id", "summary", "content",
			"feature_image", "video_url", "author_name", "author_bio", "author_image",
			"meta_title", "meta_description", "meta_keywords",
			"is_published", "published_at", "chart_data",
		).
		Values(
			post.Title, post.Slug, post.CategoryID, post.Summary, post.Content,
			post.FeatureImage, post.VideoURL, post.AuthorName, post.AuthorBio, post.AuthorImage,
			post.MetaTitle, post.MetaDescription, post.MetaKeywords,
			post.IsPublished, post.PublishedAt, chart,
		)

	return ib.Suffix(suffix).ToSql()
}

func (b *BlogRepo) SavePost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.SavePost"

	query, args, err := b.insertPost(post, "RETURNING id")
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := b.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if postgresql.IsUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (b *BlogRepo) GetOrCreatePost(ctx context.Context, post models.BlogPost) (bool, error) {
	const op = "repository.blog_repository.GetOrCreatePost"

	query, args, err := b.insertPost(post, "ON CONFLICT (slug) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}
