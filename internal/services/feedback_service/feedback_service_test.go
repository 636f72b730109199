package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/storage"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) SubmitFeedback(ctx context.Context, slug string, feedback models.Feedback) (models.Counters, error) {
	args := m.Called(ctx, slug, feedback)
	return args.Get(0).(models.Counters), args.Error(1)
}

func (m *MockCounterRepository) IncrementViews(ctx context.Context, kind models.ContentKind, slug string) (int64, error) {
	args := m.Called(ctx, kind, slug)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterRepository) ResetCounters(ctx context.Context, kind models.ContentKind, slug string) (models.Counters, error) {
	args := m.Called(ctx, kind, slug)
	return args.Get(0).(models.Counters), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		in        dto.FeedbackInput
		mockSetup func(repo *MockCounterRepository)
		wantErr   error
		wantField string
		want      dto.CountersResponse
	}{
		{
			name: "helpful vote",
			in: dto.FeedbackInput{
				Kind: models.KindBlogPost, Slug: "post", IsHelpful: boolPtr(true),
				Comment: "  great  ", IPAddress: "10.0.0.1",
			},
			mockSetup: func(repo *MockCounterRepository) {
				repo.On("SubmitFeedback", ctx, "post", models.Feedback{
					Kind: models.KindBlogPost, IsHelpful: true, Comment: "great", IPAddress: "10.0.0.1",
				}).Return(models.Counters{Views: 4, HelpfulCount: 3, NotHelpfulCount: 1}, nil).Once()
			},
			want: dto.CountersResponse{Views: 4, HelpfulCount: 3, NotHelpfulCount: 1, HelpfulnessPercentage: 75},
		},
		{
			name: "duplicate vote",
			in:   dto.FeedbackInput{Kind: models.KindFAQ, Slug: "faq", IsHelpful: boolPtr(false), IPAddress: "10.0.0.1"},
			mockSetup: func(repo *MockCounterRepository) {
				repo.On("SubmitFeedback", ctx, "faq", mock.Anything).
					Return(models.Counters{}, storage.ErrAlreadyVoted).Once()
			},
			wantErr: storage.ErrAlreadyVoted,
		},
		{
			name:      "missing is_helpful",
			in:        dto.FeedbackInput{Kind: models.KindReview, Slug: "r"},
			mockSetup: func(*MockCounterRepository) {},
			wantField: "is_helpful",
		},
		{
			name:      "comment too long",
			in:        dto.FeedbackInput{Kind: models.KindReview, Slug: "r", IsHelpful: boolPtr(true), Comment: strings.Repeat("x", 2001)},
			mockSetup: func(*MockCounterRepository) {},
			wantField: "comment",
		},
		{
			name:      "unknown kind",
			in:        dto.FeedbackInput{Kind: "video", Slug: "v", IsHelpful: boolPtr(true)},
			mockSetup: func(*MockCounterRepository) {},
			wantErr:   storage.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCounterRepository)
			svc := NewFeedbackService(slog.Default(), repo)
			tt.mockSetup(repo)

			got, err := svc.SubmitFeedback(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, got)
			case tt.wantField != "":
				var ve *services.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Fields, tt.wantField)
				repo.AssertNotCalled(t, "SubmitFeedback", mock.Anything, mock.Anything, mock.Anything)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, *got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_IncrementView(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCounterRepository)
	svc := NewFeedbackService(slog.Default(), repo)

	repo.On("IncrementViews", ctx, models.KindReview, "panda").Return(int64(12), nil).Once()
	repo.On("IncrementViews", ctx, models.KindReview, "gone").Return(int64(0), storage.ErrNotFound).Once()

	views, err := svc.IncrementView(ctx, models.KindReview, "panda")
	require.NoError(t, err)
	assert.Equal(t, int64(12), views)

	_, err = svc.IncrementView(ctx, models.KindReview, "gone")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestFeedbackService_ResetCounters(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCounterRepository)
	svc := NewFeedbackService(slog.Default(), repo)

	repo.On("ResetCounters", ctx, models.KindBlogPost, "post").Return(models.Counters{}, nil).Once()

	got, err := svc.ResetCounters(ctx, models.KindBlogPost, "post")

	require.NoError(t, err)
	assert.Zero(t, got.HelpfulnessPercentage)
	assert.Zero(t, got.HelpfulCount)
}
