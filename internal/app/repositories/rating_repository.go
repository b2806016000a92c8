package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/dberrors"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// RatingRepository handles database operations for note ratings.
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{db: db}
}

// ListByNoteID retrieves all ratings on a note, newest first.
func (r *RatingRepository) ListByNoteID(ctx context.Context, noteID int64) ([]models.Rating, error) {
	query := `
		SELECT id, note_id, author_name, author_email, score, created_at
		FROM ratings
		WHERE note_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, noteID)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", noteID).Msg("Error executing list ratings query")
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rt models.Rating
		if err := rows.Scan(&rt.ID, &rt.NoteID, &rt.AuthorName, &rt.AuthorEmail, &rt.Score, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return ratings, nil
}

// List retrieves a paginated page of all ratings for moderation.
func (r *RatingRepository) List(ctx context.Context, offset uint64, limit int) ([]models.Rating, error) {
	query := `
		SELECT id, note_id, author_name, author_email, score, created_at
		FROM ratings
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list all ratings query")
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rt models.Rating
		if err := rows.Scan(&rt.ID, &rt.NoteID, &rt.AuthorName, &rt.AuthorEmail, &rt.Score, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return ratings, nil
}

// Count returns the total number of ratings.
func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new rating. The unique constraint on (note_id,
// author_email) arbitrates concurrent submissions from the same email,
// so the duplicate check belongs here rather than in the service.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (note_id, author_name, author_email, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.NoteID, rating.AuthorName, rating.AuthorEmail, rating.Score,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "ratings_note_email_key") {
			return apperrors.ErrDuplicateRating
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrScoreOutOfRange
		}
		logger.Error().Err(err).Msg("Error executing create rating query")
		return err
	}

	return nil
}

// Delete removes a rating.
func (r *RatingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete rating query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rating not found")
	}

	return nil
}
