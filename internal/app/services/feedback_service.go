package services

import (
	"context"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
)

type feedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
}

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
}

type feedbackServiceImpl struct {
	feedbackRepo feedbackStore
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo feedbackStore) FeedbackService {
	return &feedbackServiceImpl{feedbackRepo: feedbackRepo}
}

// SubmitFeedback records a site feedback entry. An omitted type defaults
// to general.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	feedbackType := models.FeedbackType(req.FeedbackType)
	if req.FeedbackType == "" {
		feedbackType = models.FeedbackTypeGeneral
	}
	if !feedbackType.IsValid() {
		return nil, apperrors.NewValidationError("invalid feedback type")
	}

	feedback := &models.Feedback{
		Name:         req.Name,
		Email:        req.Email,
		FeedbackType: feedbackType,
		Subject:      req.Subject,
		Message:      req.Message,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}
