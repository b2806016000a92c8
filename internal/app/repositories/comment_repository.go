package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// CommentRepository handles database operations for note comments.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByNoteID retrieves all comments on a note, newest first.
func (r *CommentRepository) ListByNoteID(ctx context.Context, noteID int64) ([]models.Comment, error) {
	query := `
		SELECT id, note_id, author_name, author_email, content, created_at
		FROM comments
		WHERE note_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, noteID)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", noteID).Msg("Error executing list comments query")
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.NoteID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return comments, nil
}

// List retrieves a paginated page of all comments for moderation.
func (r *CommentRepository) List(ctx context.Context, offset uint64, limit int) ([]models.Comment, error) {
	query := `
		SELECT id, note_id, author_name, author_email, content, created_at
		FROM comments
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list all comments query")
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.NoteID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return comments, nil
}

// Count returns the total number of comments.
func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new comment on a note.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (note_id, author_name, author_email, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.NoteID, comment.AuthorName, comment.AuthorEmail, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create comment query")
		return err
	}

	return nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete comment query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}

	return nil
}
