package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/metrics"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
)

const maxCommentLen = 2000

// FeedbackService owns voting and view counting for every content kind.
type FeedbackService struct {
	log      *slog.Logger
	counters repository.CounterRepository
}

func NewFeedbackService(log *slog.Logger, counters repository.CounterRepository) *FeedbackService {
	return &FeedbackService{log: log, counters: counters}
}

// SubmitFeedback records at most one vote per (kind, item, ip). Duplicates
// return storage.ErrAlreadyVoted and leave the counters unchanged.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, in dto.FeedbackInput) (*dto.CountersResponse, error) {
	const op = "feedback_service.SubmitFeedback"
	log := s.log.With(
		slog.String("op", op),
		slog.String("kind", string(in.Kind)),
		slog.String("slug", in.Slug),
	)

	if !in.Kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUnknownKind)
	}
	if in.IsHelpful == nil {
		return nil, services.NewValidationError("is_helpful", "This field is required.")
	}
	if len(in.Comment) > maxCommentLen {
		return nil, services.NewValidationError("comment", fmt.Sprintf("Ensure this field has no more than %d characters.", maxCommentLen))
	}

	counters, err := s.counters.SubmitFeedback(ctx, in.Slug, models.Feedback{
		Kind:      in.Kind,
		IsHelpful: *in.IsHelpful,
		Comment:   strings.TrimSpace(in.Comment),
		IPAddress: in.IPAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyVoted):
			metrics.FeedbackTotal.WithLabelValues(string(in.Kind), "duplicate").Inc()
			log.Info("duplicate feedback rejected")
		case errors.Is(err, storage.ErrNotFound):
		default:
			log.Error("failed to submit feedback", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.FeedbackTotal.WithLabelValues(string(in.Kind), "helpful_"+strconv.FormatBool(*in.IsHelpful)).Inc()
	log.Debug("feedback recorded", slog.Bool("is_helpful", *in.IsHelpful))

	resp := dto.NewCountersResponse(counters)
	return &resp, nil
}

func (s *FeedbackService) IncrementView(ctx context.Context, kind models.ContentKind, slug string) (int64, error) {
	const op = "feedback_service.IncrementView"

	views, err := s.counters.IncrementViews(ctx, kind, slug)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("failed to count view", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	metrics.ViewsTotal.WithLabelValues(string(kind)).Inc()

	return views, nil
}

func (s *FeedbackService) ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (*dto.CountersResponse, error) {
	const op = "feedback_service.ResetCounters"

	counters, err := s.counters.ResetCounters(ctx, kind, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("counters reset", slog.String("op", op), slog.String("kind", string(kind)), slog.String("slug", slug))

	resp := dto.NewCountersResponse(counters)
	return &resp, nil
}
