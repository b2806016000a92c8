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

// semesterSelectSQL pulls semester rows with their derived counters. The
// counters are recomputed on every read, never stored.
const semesterSelectSQL = `
	SELECT s.id, s.number, s.name, s.description, s.is_active,
		(SELECT COUNT(*) FROM subjects sub WHERE sub.semester_id = s.id) AS total_subjects,
		(SELECT COUNT(*) FROM notes n JOIN subjects sub ON n.subject_id = sub.id
			WHERE sub.semester_id = s.id) AS total_notes
	FROM semesters s
`

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{db: db}
}

func scanSemesterResponse(row pgx.Row) (*dto.AdminSemesterResponse, error) {
	var s dto.AdminSemesterResponse
	err := row.Scan(
		&s.ID, &s.Number, &s.Name, &s.Description, &s.IsActive,
		&s.TotalSubjects, &s.TotalNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new semester.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (number, name, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		semester.Number, semester.Name, semester.Description, semester.IsActive,
	).Scan(&semester.ID, &semester.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_number_key") {
			return apperrors.ErrSemesterNumberExists
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrSemesterNumberRange
		}
		logger.Error().Err(err).Msg("Error executing create semester query")
		return err
	}

	return nil
}

// GetByID retrieves a semester row by its internal id.
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	query := `
		SELECT id, number, name, description, is_active, created_at
		FROM semesters
		WHERE id = $1
	`

	var s models.Semester
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Number, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}

	return &s, nil
}

// GetByNumber retrieves a semester with derived counters by its public
// number. With activeOnly set, inactive semesters read as not found.
func (r *SemesterRepository) GetByNumber(ctx context.Context, number int, activeOnly bool) (*dto.AdminSemesterResponse, error) {
	query := semesterSelectSQL + ` WHERE s.number = $1`
	if activeOnly {
		query += ` AND s.is_active`
	}

	return scanSemesterResponse(r.db.QueryRow(ctx, query, number))
}

// List retrieves semesters ordered by number, with derived counters.
func (r *SemesterRepository) List(ctx context.Context, activeOnly bool, offset uint64, limit int) ([]dto.AdminSemesterResponse, error) {
	query := semesterSelectSQL
	if activeOnly {
		query += ` WHERE s.is_active`
	}
	query += ` ORDER BY s.number LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list semesters query")
		return nil, err
	}
	defer rows.Close()

	semesters := make([]dto.AdminSemesterResponse, 0)
	for rows.Next() {
		s, err := scanSemesterResponse(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// Count returns the number of semesters, optionally active rows only.
func (r *SemesterRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM semesters`
	if activeOnly {
		query += ` WHERE is_active`
	}

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting semesters: %w", err)
	}
	return total, nil
}

// Update updates an existing semester.
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	query := `
		UPDATE semesters
		SET number = $1, name = $2, description = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		semester.Number, semester.Name, semester.Description, semester.IsActive, semester.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_number_key") {
			return apperrors.ErrSemesterNumberExists
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrSemesterNumberRange
		}
		logger.Error().Err(err).Msg("Error executing update semester query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}

// Delete removes a semester. The store cascades the delete through its
// subjects, notes, comments and ratings.
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete semester query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}
