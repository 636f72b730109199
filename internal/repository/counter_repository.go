package repository

import (
	"context"
	"fmt"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// contentTables maps a content kind onto the only tables counter updates may touch.
var contentTables = map[models.ContentKind]string{
	models.KindBlogPost: "blog_posts",
	models.KindFAQ:      "faqs",
	models.KindReview:   "company_reviews",
}

const counterReturning = "RETURNING views, helpful_count, not_helpful_count"

type CounterRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCounterRepository(db *pgxpool.Pool) *CounterRepo {
	return &CounterRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func tableFor(kind models.ContentKind) (string, error) {
	table, ok := contentTables[kind]
	if !ok {
		return "", storage.ErrUnknownKind
	}
	return table, nil
}

// SubmitFeedback records one vote and bumps the matching counter in a single
// transaction. A repeated (kind, item, ip) vote returns storage.ErrAlreadyVoted
// and leaves the counters untouched.
func (r *CounterRepo) SubmitFeedback(ctx context.Context, slug string, feedback models.Feedback) (models.Counters, error) {
	const op = "repository.counter_repository.SubmitFeedback"

	table, err := tableFor(feedback.Kind)
	if err != nil {
		return models.Counters{}, fmt.Errorf("%s: %w", op, err)
	}

	column := "not_helpful_count"
	if feedback.IsHelpful {
		column = "helpful_count"
	}

	var counters models.Counters

	err = r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		query, args, err := r.sb.Select("id").
			From(table).
			Where(sq.Eq{"slug": slug, "is_published": true}).
			ToSql()
		if err != nil {
			return err
		}

		var contentID uuid.UUID
		if err := tx.QueryRow(ctx, query, args...).Scan(&contentID); err != nil {
			if isNoRows(err) {
				return storage.ErrNotFound
			}
			return err
		}

		query, args, err = r.sb.Insert("content_feedback").
			Columns("content_kind", "content_id", "is_helpful", "comment", "ip_address").
			Values(feedback.Kind, contentID, feedback.IsHelpful, feedback.Comment, feedback.IPAddress).
			Suffix("ON CONFLICT (content_kind, content_id, ip_address) DO NOTHING RETURNING id").
			ToSql()
		if err != nil {
			return err
		}

		var feedbackID uuid.UUID
		if err := tx.QueryRow(ctx, query, args...).Scan(&feedbackID); err != nil {
			if isNoRows(err) {
				return storage.ErrAlreadyVoted
			}
			return err
		}

		query, args, err = r.sb.Update(table).
			Set(column, sq.Expr(column+" + 1")).
			Where(sq.Eq{"id": contentID}).
			Suffix(counterReturning).
			ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, query, args...).Scan(
			&counters.Views, &counters.HelpfulCount, &counters.NotHelpfulCount,
		)
	})
	if err != nil {
		return models.Counters{}, fmt.Errorf("%s: %w", op, err)
	}

	return counters, nil
}

func (r *CounterRepo) IncrementViews(ctx context.Context, kind models.ContentKind, slug string) (int64, error) {
	const op = "repository.counter_repository.IncrementViews"

	table, err := tableFor(kind)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Update(table).
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"slug": slug, "is_published": true}).
		Suffix("RETURNING views").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var views int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&views); err != nil {
		if isNoRows(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// ResetCounters zeroes the counters of one item and drops its recorded votes
// so the vote total keeps matching the feedback rows.
func (r *CounterRepo) ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (models.Counters, error) {
	const op = "repository.counter_repository.ResetCounters"

	table, err := tableFor(kind)
	if err != nil {
		return models.Counters{}, fmt.Errorf("%s: %w", op, err)
	}

	var counters models.Counters

	err = r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		query, args, err := r.sb.Update(table).
			Set("views", 0).
			Set("helpful_count", 0).
			Set("not_helpful_count", 0).
			Where(sq.Eq{"slug": slug}).
			Suffix("RETURNING id, views, helpful_count, not_helpful_count").
			ToSql()
		if err != nil {
			return err
		}

		var contentID uuid.UUID
		err = tx.QueryRow(ctx, query, args...).Scan(
			&contentID, &counters.Views, &counters.HelpfulCount, &counters.NotHelpfulCount,
		)
		if err != nil {
			if isNoRows(err) {
				return storage.ErrNotFound
			}
			return err
		}

		query, args, err = r.sb.Delete("content_feedback").
			Where(sq.Eq{"content_kind": kind, "content_id": contentID}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		return models.Counters{}, fmt.Errorf("%s: %w", op, err)
	}

	return counters, nil
}
