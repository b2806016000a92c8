package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// NoteRepository handles database operations for notes.
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

// selectNoteListQuery builds the note list projection: note columns plus
// rating aggregates and subject context, joined the same way for every
// list surface (catalog, featured, admin).
func (r *NoteRepository) selectNoteListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.id", "n.title", "n.description", "n.thumbnail", "n.tags", "n.chapter",
		"n.note_type", "n.created_at", "n.downloads", "n.is_featured",
		"sub.name AS subject_name", "sub.code AS subject_code",
		"(SELECT COALESCE(AVG(r.score), 0) FROM ratings r WHERE r.note_id = n.id) AS average_rating",
		"(SELECT COUNT(*) FROM ratings r WHERE r.note_id = n.id) AS total_ratings",
	).From("notes n").
		Join("subjects sub ON n.subject_id = sub.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanNoteResponse(row pgx.Row) (*dto.NoteResponse, error) {
	var n dto.NoteResponse
	err := row.Scan(
		&n.ID, &n.Title, &n.Description, &n.Thumbnail, &n.Tags, &n.Chapter,
		&n.NoteType, &n.CreatedAt, &n.Downloads, &n.IsFeatured,
		&n.SubjectName, &n.SubjectCode,
		&n.AverageRating, &n.TotalRatings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied terms so
// "100%" matches a literal percent sign instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyNoteFilters adds the composable catalog filters to a builder.
// Set filters compose conjunctively.
func applyNoteFilters(b squirrel.SelectBuilder, filter dto.NoteFilter) squirrel.SelectBuilder {
	if filter.SubjectID != nil {
		b = b.Where(squirrel.Eq{"n.subject_id": *filter.SubjectID})
	}
	if filter.Search != "" {
		b = b.Where(squirrel.ILike{"n.title": "%" + likeEscaper.Replace(filter.Search) + "%"})
	}
	if filter.NoteType != "" {
		b = b.Where(squirrel.Eq{"n.note_type": filter.NoteType})
	}
	if filter.Chapter != "" {
		b = b.Where(squirrel.ILike{"n.chapter": "%" + likeEscaper.Replace(filter.Chapter) + "%"})
	}
	if filter.Featured {
		b = b.Where(squirrel.Eq{"n.is_featured": true})
	}
	return b
}

// List retrieves a filtered, paginated page of notes, newest first.
func (r *NoteRepository) List(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error) {
	countBuilder := applyNoteFilters(
		squirrel.Select("COUNT(*)").From("notes n").PlaceholderFormat(squirrel.Dollar),
		filter,
	)

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count notes query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, filter.Page, filter.Size)
	if totalItems == 0 {
		return []dto.NoteResponse{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	sqlBuilder := applyNoteFilters(r.selectNoteListQuery(), filter).
		OrderBy("n.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	notes := make([]dto.NoteResponse, 0)
	for rows.Next() {
		n, err := scanNoteResponse(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		notes = append(notes, *n)
	}

	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("database iteration error: %w", err)
	}

	return notes, pagination, nil
}

// Featured retrieves up to limit featured notes, newest first.
func (r *NoteRepository) Featured(ctx context.Context, limit int) ([]dto.NoteResponse, error) {
	sqlBuilder := r.selectNoteListQuery().
		Where(squirrel.Eq{"n.is_featured": true}).
		OrderBy("n.created_at DESC").
		Limit(uint64(limit))

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing featured notes query")
		return nil, err
	}
	defer rows.Close()

	notes := make([]dto.NoteResponse, 0)
	for rows.Next() {
		n, err := scanNoteResponse(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetByID retrieves a raw note row by id.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		SELECT id, subject_id, title, description, content, file_path, file_name,
			thumbnail, tags, chapter, note_type, downloads, is_featured, created_at, updated_at
		FROM notes
		WHERE id = $1
	`

	var n models.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.SubjectID, &n.Title, &n.Description, &n.Content, &n.FilePath, &n.FileName,
		&n.Thumbnail, &n.Tags, &n.Chapter, &n.NoteType, &n.Downloads, &n.IsFeatured,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}

	return &n, nil
}

// GetDetailByID retrieves the full note view with rating aggregates and
// subject/semester context. Comments and ratings are attached by the
// service.
func (r *NoteRepository) GetDetailByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	query := `
		SELECT n.id, n.title, n.description, n.content, n.file_path, n.file_name,
			n.thumbnail, n.tags, n.chapter, n.note_type, n.created_at, n.updated_at,
			n.downloads, n.is_featured,
			sub.name AS subject_name, sub.code AS subject_code, sem.number AS semester_number,
			(SELECT COALESCE(AVG(r.score), 0) FROM ratings r WHERE r.note_id = n.id) AS average_rating,
			(SELECT COUNT(*) FROM ratings r WHERE r.note_id = n.id) AS total_ratings
		FROM notes n
		JOIN subjects sub ON n.subject_id = sub.id
		JOIN semesters sem ON sub.semester_id = sem.id
		WHERE n.id = $1
	`

	var n dto.NoteDetailResponse
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Description, &n.Content, &n.File, &n.FileName,
		&n.Thumbnail, &n.Tags, &n.Chapter, &n.NoteType, &n.CreatedAt, &n.UpdatedAt,
		&n.Downloads, &n.IsFeatured,
		&n.SubjectName, &n.SubjectCode, &n.SemesterNumber,
		&n.AverageRating, &n.TotalRatings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}

	return &n, nil
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	sqlStr, args, err := squirrel.Insert("notes").
		Columns("subject_id", "title", "description", "content", "file_path", "file_name",
			"thumbnail", "tags", "chapter", "note_type", "is_featured").
		Values(note.SubjectID, note.Title, note.Description, note.Content, note.FilePath, note.FileName,
			note.Thumbnail, note.Tags, note.Chapter, note.NoteType, note.IsFeatured).
		Suffix("RETURNING id, downloads, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&note.ID, &note.Downloads, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create note query")
		return err
	}

	return nil
}

// Update updates an existing note from the single-record edit form.
// updated_at is handled by trigger.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	sqlStr, args, err := squirrel.Update("notes").
		Set("subject_id", note.SubjectID).
		Set("title", note.Title).
		Set("description", note.Description).
		Set("content", note.Content).
		Set("tags", note.Tags).
		Set("chapter", note.Chapter).
		Set("note_type", note.NoteType).
		Set("is_featured", note.IsFeatured).
		Where(squirrel.Eq{"id": note.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update note query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// SetFeatured sets or clears the featured flag on a note.
func (r *NoteRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notes SET is_featured = $1 WHERE id = $2`, featured, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set featured query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// IncrementDownloads atomically adds one to a note's download counter and
// returns the new value. The store's atomic update is the only
// coordination between concurrent callers.
func (r *NoteRepository) IncrementDownloads(ctx context.Context, id int64) (int64, error) {
	var downloads int64
	err := r.db.QueryRow(ctx,
		`UPDATE notes SET downloads = downloads + 1 WHERE id = $1 RETURNING downloads`, id,
	).Scan(&downloads)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Error executing increment downloads query")
		return 0, err
	}

	return downloads, nil
}

// Delete removes a note; its comments and ratings cascade with it.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete note query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}
