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

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) SaveContact(ctx context.Context, s models.ContactSubmission) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveContact"

	query, args, err := r.sb.Insert("contact_submissions").
		Columns("name", "email", "phone", "inquiry_type", "subject", "message").
		Values(s.Name, s.Email, s.Phone, s.InquiryType, s.Subject, s.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ContactRepo) ListContacts(ctx context.Context, unreadOnly bool, page, perPage int) ([]models.ContactSubmission, int, error) {
	const op = "repository.contact_repository.ListContacts"

	page, perPage = normalizePage(page, perPage)

	where := sq.And{}
	if unreadOnly {
		where = append(where, sq.Eq{"is_read": false})
	}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("contact_submissions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	query, args, err := r.sb.Select(
		"id", "name", "email", "phone", "inquiry_type", "subject", "message", "is_read", "created_at",
	).
		From("contact_submissions").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	submissions := []models.ContactSubmission{}
	for rows.Next() {
		var s models.ContactSubmission
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.InquiryType, &s.Subject, &s.Message, &s.IsRead, &s.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return submissions, total, nil
}

func (r *ContactRepo) MarkContactRead(ctx context.Context, id uuid.UUID) error {
	const op = "repository.contact_repository.MarkContactRead"

	query, args, err := r.sb.Update("contact_submissions").
		Set("is_read", true).
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
