package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/dberrors"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// subjectSelectSQL pulls subject rows with their derived statistics.
// average_rating follows the catalog's definition: the mean over the
// subject's notes of each note's average score, zero-rated notes
// contributing 0, and 0 when the subject has no notes at all.
const subjectSelectSQL = `
	SELECT sub.id, sub.semester_id, sub.name, sub.code, sub.description, sub.credits,
		sub.thumbnail, sub.is_active, sem.number AS semester_number,
		(SELECT COUNT(*) FROM notes n WHERE n.subject_id = sub.id) AS total_notes,
		(SELECT COALESCE(SUM(n.downloads), 0) FROM notes n WHERE n.subject_id = sub.id) AS total_downloads,
		(SELECT COALESCE(AVG(ns.avg_score), 0) FROM (
			SELECT n.subject_id, COALESCE(AVG(r.score), 0) AS avg_score
			FROM notes n LEFT JOIN ratings r ON r.note_id = n.id
			GROUP BY n.id, n.subject_id
		) ns WHERE ns.subject_id = sub.id) AS average_rating
	FROM subjects sub
	JOIN semesters sem ON sub.semester_id = sem.id
`

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func scanSubjectResponse(row pgx.Row) (*dto.AdminSubjectResponse, error) {
	var s dto.AdminSubjectResponse
	err := row.Scan(
		&s.ID, &s.SemesterID, &s.Name, &s.Code, &s.Description, &s.Credits,
		&s.Thumbnail, &s.IsActive, &s.SemesterNumber,
		&s.TotalNotes, &s.TotalDownloads, &s.AverageRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (semester_id, name, code, description, credits, thumbnail, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		subject.SemesterID, subject.Name, subject.Code, subject.Description,
		subject.Credits, subject.Thumbnail, subject.IsActive,
	).Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return apperrors.ErrSubjectCodeExists
		}
		logger.Error().Err(err).Msg("Error executing create subject query")
		return err
	}

	return nil
}

// GetByID retrieves a raw subject row by id.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, semester_id, name, code, description, credits, thumbnail, is_active, created_at
		FROM subjects
		WHERE id = $1
	`

	var s models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SemesterID, &s.Name, &s.Code, &s.Description,
		&s.Credits, &s.Thumbnail, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &s, nil
}

// GetDetailByID retrieves a subject with derived statistics and semester
// context. With activeOnly set, inactive subjects read as not found.
func (r *SubjectRepository) GetDetailByID(ctx context.Context, id int64, activeOnly bool) (*dto.AdminSubjectResponse, string, error) {
	query := `
	SELECT sub.id, sub.semester_id, sub.name, sub.code, sub.description, sub.credits,
		sub.thumbnail, sub.is_active, sem.number AS semester_number, sem.name AS semester_name,
		(SELECT COUNT(*) FROM notes n WHERE n.subject_id = sub.id) AS total_notes,
		(SELECT COALESCE(SUM(n.downloads), 0) FROM notes n WHERE n.subject_id = sub.id) AS total_downloads,
		(SELECT COALESCE(AVG(ns.avg_score), 0) FROM (
			SELECT n.subject_id, COALESCE(AVG(r.score), 0) AS avg_score
			FROM notes n LEFT JOIN ratings r ON r.note_id = n.id
			GROUP BY n.id, n.subject_id
		) ns WHERE ns.subject_id = sub.id) AS average_rating
	FROM subjects sub
	JOIN semesters sem ON sub.semester_id = sem.id
	WHERE sub.id = $1`
	if activeOnly {
		query += ` AND sub.is_active`
	}

	var s dto.AdminSubjectResponse
	var semesterName string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SemesterID, &s.Name, &s.Code, &s.Description, &s.Credits,
		&s.Thumbnail, &s.IsActive, &s.SemesterNumber, &semesterName,
		&s.TotalNotes, &s.TotalDownloads, &s.AverageRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrSubjectNotFound
		}
		return nil, "", err
	}

	return &s, semesterName, nil
}

// List retrieves subjects ordered by code, optionally scoped to one
// semester and to active rows.
func (r *SubjectRepository) List(ctx context.Context, semesterID *int64, activeOnly bool, offset uint64, limit int) ([]dto.AdminSubjectResponse, error) {
	query := subjectSelectSQL
	args := []interface{}{}
	where := ""

	if semesterID != nil {
		args = append(args, *semesterID)
		where = fmt.Sprintf(" WHERE sub.semester_id = $%d", len(args))
	}
	if activeOnly {
		if where == "" {
			where = " WHERE sub.is_active"
		} else {
			where += " AND sub.is_active"
		}
	}

	args = append(args, limit)
	limitClause := fmt.Sprintf(" ORDER BY sub.code LIMIT $%d", len(args))
	args = append(args, offset)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query+where+limitClause, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, err
	}
	defer rows.Close()

	subjects := make([]dto.AdminSubjectResponse, 0)
	for rows.Next() {
		s, err := scanSubjectResponse(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Count returns the number of subjects matching the scope.
func (r *SubjectRepository) Count(ctx context.Context, semesterID *int64, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM subjects sub`
	args := []interface{}{}
	where := ""

	if semesterID != nil {
		args = append(args, *semesterID)
		where = fmt.Sprintf(" WHERE sub.semester_id = $%d", len(args))
	}
	if activeOnly {
		if where == "" {
			where = " WHERE sub.is_active"
		} else {
			where += " AND sub.is_active"
		}
	}

	var total int64
	if err := r.db.QueryRow(ctx, query+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return total, nil
}

// Update updates an existing subject. A nil thumbnail leaves the stored
// one untouched.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET semester_id = $1, name = $2, code = $3, description = $4, credits = $5,
			thumbnail = COALESCE($6, thumbnail), is_active = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.SemesterID, subject.Name, subject.Code, subject.Description,
		subject.Credits, subject.Thumbnail, subject.IsActive, subject.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return apperrors.ErrSubjectCodeExists
		}
		logger.Error().Err(err).Msg("Error executing update subject query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete removes a subject; its notes and their comments and ratings go
// with it.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete subject query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
