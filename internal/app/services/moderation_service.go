package services

import (
	"context"
	"fmt"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
)

type moderationCommentStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type moderationRatingStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.Rating, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type moderationFeedbackStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.Feedback, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// ModerationService covers the admin console's visitor-content surface:
// listing and removing comments, ratings and feedback.
type ModerationService interface {
	ListComments(ctx context.Context, page, size int) ([]models.Comment, dto.PaginationInfo, error)
	DeleteComment(ctx context.Context, id int64) error
	ListRatings(ctx context.Context, page, size int) ([]models.Rating, dto.PaginationInfo, error)
	DeleteRating(ctx context.Context, id int64) error
	ListFeedback(ctx context.Context, page, size int) ([]models.Feedback, dto.PaginationInfo, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type moderationServiceImpl struct {
	commentRepo  moderationCommentStore
	ratingRepo   moderationRatingStore
	feedbackRepo moderationFeedbackStore
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	commentRepo moderationCommentStore,
	ratingRepo moderationRatingStore,
	feedbackRepo moderationFeedbackStore,
) ModerationService {
	return &moderationServiceImpl{
		commentRepo:  commentRepo,
		ratingRepo:   ratingRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *moderationServiceImpl) ListComments(ctx context.Context, page, size int) ([]models.Comment, dto.PaginationInfo, error) {
	totalItems, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting comments: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	comments, err := s.commentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing comments: %w", err)
	}

	return comments, pagination, nil
}

func (s *moderationServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *moderationServiceImpl) ListRatings(ctx context.Context, page, size int) ([]models.Rating, dto.PaginationInfo, error) {
	totalItems, err := s.ratingRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting ratings: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	ratings, err := s.ratingRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing ratings: %w", err)
	}

	return ratings, pagination, nil
}

func (s *moderationServiceImpl) DeleteRating(ctx context.Context, id int64) error {
	return s.ratingRepo.Delete(ctx, id)
}

func (s *moderationServiceImpl) ListFeedback(ctx context.Context, page, size int) ([]models.Feedback, dto.PaginationInfo, error) {
	totalItems, err := s.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting feedback: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	entries, err := s.feedbackRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing feedback: %w", err)
	}

	return entries, pagination, nil
}

func (s *moderationServiceImpl) DeleteFeedback(ctx context.Context, id int64) error {
	return s.feedbackRepo.Delete(ctx, id)
}
