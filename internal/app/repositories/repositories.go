package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SemesterRepository  *SemesterRepository
	SubjectRepository   *SubjectRepository
	NoteRepository      *NoteRepository
	CommentRepository   *CommentRepository
	RatingRepository    *RatingRepository
	FeedbackRepository  *FeedbackRepository
	AdminUserRepository *AdminUserRepository
	StatsRepository     *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SemesterRepository:  NewSemesterRepository(db),
		SubjectRepository:   NewSubjectRepository(db),
		NoteRepository:      NewNoteRepository(db),
		CommentRepository:   NewCommentRepository(db),
		RatingRepository:    NewRatingRepository(db),
		FeedbackRepository:  NewFeedbackRepository(db),
		AdminUserRepository: NewAdminUserRepository(db),
		StatsRepository:     NewStatsRepository(db),
	}
}
