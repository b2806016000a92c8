package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// FeedbackRepository handles database operations for site feedback.
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a new feedback entry.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (name, email, feedback_type, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.Name, feedback.Email, feedback.FeedbackType, feedback.Subject, feedback.Message,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return err
	}

	return nil
}

// List retrieves a paginated page of feedback entries, newest first.
func (r *FeedbackRepository) List(ctx context.Context, offset uint64, limit int) ([]models.Feedback, error) {
	query := `
		SELECT id, name, email, feedback_type, subject, message, created_at
		FROM feedback
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list feedback query")
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.Feedback, 0)
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.FeedbackType, &f.Subject, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return entries, nil
}

// Count returns the total number of feedback entries.
func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a feedback entry.
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete feedback query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("feedback not found")
	}

	return nil
}
