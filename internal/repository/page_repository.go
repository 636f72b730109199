package repository

import (
	"context"
	"fmt"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPageRepository(db *pgxpool.Pool) *PageRepo {
	return &PageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var pageColumns = []string{
	"id", "page_type", "title", "content", "menu_label", "nav_group",
	"meta_title", "meta_description", "meta_keywords", "is_active",
	"show_in_navbar", "nav_order", "show_in_footer", "footer_order",
	"created_at", "updated_at",
}

func scanPage(r row) (models.StaticPage, error) {
	var p models.StaticPage
	err := r.Scan(
		&p.ID, &p.PageType, &p.Title, &p.Content, &p.MenuLabel, &p.NavGroup,
		&p.MetaTitle, &p.MetaDescription, &p.MetaKeywords, &p.IsActive,
		&p.ShowInNavbar, &p.NavOrder, &p.ShowInFooter, &p.FooterOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func surfaceColumns(surface models.NavSurface) (flag, order string) {
	if surface == models.SurfaceFooter {
		return "show_in_footer", "footer_order"
	}
	return "show_in_navbar", "nav_order"
}

func collectPages(rows pgx.Rows) ([]models.StaticPage, error) {
	defer rows.Close()

	pages := []models.StaticPage{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

func (r *PageRepo) ListActivePages(ctx context.Context) ([]models.StaticPage, error) {
	const op = "repository.page_repository.ListActivePages"

	query, args, err := r.sb.Select(pageColumns...).
		From("static_pages").
		Where(sq.Eq{"is_active": true}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages, err := collectPages(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}

func (r *PageRepo) PageByType(ctx context.Context, pageType string) (*models.StaticPage, error) {
	const op = "repository.page_repository.PageByType"

	query, args, err := r.sb.Select(pageColumns...).
		From("static_pages").
		Where(sq.Eq{"page_type": pageType, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := scanPage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

// NavPages returns active pages shown on the surface ordered by (order, title).
func (r *PageRepo) NavPages(ctx context.Context, surface models.NavSurface) ([]models.StaticPage, error) {
	const op = "repository.page_repository.NavPages"

	flag, order := surfaceColumns(surface)

	query, args, err := r.sb.Select(pageColumns...).
		From("static_pages").
		Where(sq.Eq{"is_active": true, flag: true}).
		OrderBy(order, "title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages, err := collectPages(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}

// UpdateNav locks the current members of the menu group together with the
// selected pages, hands them to plan and persists whatever plan returns.
// Everything runs in one transaction.
func (r *PageRepo) UpdateNav(ctx context.Context, surface models.NavSurface, group string, pageTypes []string, plan NavPlanner) (int, error) {
	const op = "repository.page_repository.UpdateNav"

	flag, order := surfaceColumns(surface)

	membership := sq.And{sq.Eq{flag: true}}
	if surface == models.SurfaceNavbar {
		membership = append(membership, sq.Eq{"nav_group": group})
	}

	var updated int

	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		query, args, err := r.sb.Select(pageColumns...).
			From("static_pages").
			Where(sq.Or{membership, sq.Eq{"page_type": pageTypes}}).
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

		locked, err := collectPages(rows)
		if err != nil {
			return err
		}

		wanted := make(map[string]struct{}, len(pageTypes))
		for _, pt := range pageTypes {
			wanted[pt] = struct{}{}
		}

		var members, selected []models.StaticPage
		for _, p := range locked {
			if p.InGroup(surface, group) {
				members = append(members, p)
			}
			if _, ok := wanted[p.PageType]; ok {
				selected = append(selected, p)
			}
		}

		for _, p := range plan(members, selected) {
			query, args, err := r.sb.Update("static_pages").
				Set(flag, p.Visible(surface)).
				Set(order, p.Order(surface)).
				Set("nav_group", p.NavGroup).
				Set("updated_at", sq.Expr("NOW()")).
				Where(sq.Eq{"id": p.ID}).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return err
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (r *PageRepo) insertPage(p models.StaticPage) sq.InsertBuilder {
	return r.sb.Insert("static_pages").
		Columns(
			"page_type", "title", "content", "menu_label", "nav_group",
			"meta_title", "meta_description", "meta_keywords", "is_active",
			"show_in_navbar", "nav_order", "show_in_footer", "footer_order",
		).
		Values(
			p.PageType, p.Title, p.Content, p.MenuLabel, p.NavGroup,
			p.MetaTitle, p.MetaDescription, p.MetaKeywords, p.IsActive,
			p.ShowInNavbar, p.NavOrder, p.ShowInFooter, p.FooterOrder,
		)
}

func (r *PageRepo) SavePage(ctx context.Context, page models.StaticPage) (uuid.UUID, error) {
	const op = "repository.page_repository.SavePage"

	query, args, err := r.insertPage(page).Suffix("RETURNING id").ToSql()
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

func (r *PageRepo) GetOrCreatePage(ctx context.Context, page models.StaticPage) (bool, error) {
	const op = "repository.page_repository.GetOrCreatePage"

	query, args, err := r.insertPage(page).Suffix("ON CONFLICT (page_type) DO NOTHING").ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *PageRepo) BackfillPage(ctx context.Context, page models.StaticPage) (bool, error) {
	const op = "repository.page_repository.BackfillPage"

	query, args, err := r.sb.Update("static_pages").
		Set("menu_label", sq.Expr("CASE WHEN menu_label = '' THEN ? ELSE menu_label END", page.MenuLabel)).
		Set("meta_title", sq.Expr("CASE WHEN meta_title = '' THEN ? ELSE meta_title END", page.MetaTitle)).
		Set("meta_description", sq.Expr("CASE WHEN meta_description = '' THEN ? ELSE meta_description END", page.MetaDescription)).
		Where(sq.Eq{"page_type": page.PageType}).
		Where(sq.Or{
			sq.And{sq.Eq{"menu_label": ""}, sq.NotEq{"menu_label": page.MenuLabel}},
			sq.And{sq.Eq{"meta_title": ""}, sq.NotEq{"meta_title": page.MetaTitle}},
			sq.And{sq.Eq{"meta_description": ""}, sq.NotEq{"meta_description": page.MetaDescription}},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}
