package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// StatsRepository computes the platform summary counters.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats gathers all six counters in a single round trip. Counts are a
// point-in-time snapshot; concurrent writes may land between reads of
// different tables, which is acceptable for a dashboard figure.
func (r *StatsRepository) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM semesters WHERE is_active) AS total_semesters,
			(SELECT COUNT(*) FROM subjects WHERE is_active) AS total_subjects,
			(SELECT COUNT(*) FROM notes) AS total_notes,
			(SELECT COALESCE(SUM(downloads), 0) FROM notes) AS total_downloads,
			(SELECT COUNT(*) FROM comments) AS total_comments,
			(SELECT COUNT(*) FROM ratings) AS total_ratings
	`

	var stats dto.StatsResponse
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalSemesters, &stats.TotalSubjects, &stats.TotalNotes,
		&stats.TotalDownloads, &stats.TotalComments, &stats.TotalRatings,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing stats query")
		return nil, err
	}

	return &stats, nil
}
