package dto

import (
	"time"

	"github.com/esathi/engineersathi/internal/app/models"
)

// NoteResponse represents a note row in list responses, with rating
// aggregates and subject context joined in.
type NoteResponse struct {
	ID            int64           `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	Description   string          `db:"description" json:"description"`
	Thumbnail     *string         `db:"thumbnail" json:"thumbnail"`
	Tags          string          `db:"tags" json:"tags"`
	Chapter       string          `db:"chapter" json:"chapter"`
	NoteType      models.NoteType `db:"note_type" json:"note_type"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	Downloads     int64           `db:"downloads" json:"downloads"`
	AverageRating float64         `db:"average_rating" json:"average_rating"`
	TotalRatings  int64           `db:"total_ratings" json:"total_ratings"`
	SubjectName   string          `db:"subject_name" json:"subject_name"`
	SubjectCode   string          `db:"subject_code" json:"subject_code"`
	IsFeatured    bool            `db:"is_featured" json:"is_featured"`
}

// NoteDetailResponse is the full note view with nested comments and ratings.
type NoteDetailResponse struct {
	ID             int64            `db:"id" json:"id"`
	Title          string           `db:"title" json:"title"`
	Description    string           `db:"description" json:"description"`
	Content        string           `db:"content" json:"content"`
	File           *string          `db:"file_path" json:"file"`
	FileName       *string          `db:"file_name" json:"file_name"`
	Thumbnail      *string          `db:"thumbnail" json:"thumbnail"`
	Tags           string           `db:"tags" json:"tags"`
	Chapter        string           `db:"chapter" json:"chapter"`
	NoteType       models.NoteType  `db:"note_type" json:"note_type"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
	Downloads      int64            `db:"downloads" json:"downloads"`
	IsFeatured     bool             `db:"is_featured" json:"is_featured"`
	AverageRating  float64          `db:"average_rating" json:"average_rating"`
	TotalRatings   int64            `db:"total_ratings" json:"total_ratings"`
	SubjectName    string           `db:"subject_name" json:"subject_name"`
	SubjectCode    string           `db:"subject_code" json:"subject_code"`
	SemesterNumber int              `db:"semester_number" json:"semester_number"`
	Comments       []models.Comment `json:"comments"`
	Ratings        []models.Rating  `json:"ratings"`
}

// NoteFilter holds the composable note list filters. Nil/empty fields are
// not applied; set fields compose conjunctively.
type NoteFilter struct {
	SubjectID *int64
	Search    string
	NoteType  string
	Chapter   string
	Featured  bool
	Page      int
	Size      int
}

// UpdateNoteRequest is the single-record admin edit form; it carries no
// file fan-out field.
type UpdateNoteRequest struct {
	SubjectID   int64  `form:"subject_id" json:"subject_id" binding:"required,gt=0"`
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
	Content     string `form:"content" json:"content"`
	Tags        string `form:"tags" json:"tags"`
	Chapter     string `form:"chapter" json:"chapter"`
	NoteType    string `form:"note_type" json:"note_type" binding:"required,oneof=lecture assignment tutorial exam reference"`
	IsFeatured  *bool  `form:"is_featured" json:"is_featured"`
}

// SetFeaturedRequest toggles a note's featured flag.
type SetFeaturedRequest struct {
	IsFeatured *bool `json:"is_featured" binding:"required"`
}

// BulkUploadRequest carries the shared fields of a multi-file note upload.
// Titles are derived per file from the file name.
type BulkUploadRequest struct {
	SubjectID int64  `form:"subject_id" binding:"required,gt=0"`
	NoteType  string `form:"note_type" binding:"omitempty,oneof=lecture assignment tutorial exam reference"`
	Tags      string `form:"tags"`
	Chapter   string `form:"chapter"`
}

// BulkUploadResponse reports the outcome of a multi-file note upload.
type BulkUploadResponse struct {
	Created int            `json:"created"`
	Notes   []NoteResponse `json:"notes"`
}

// DownloadCountResponse is returned by the increment-download endpoint.
type DownloadCountResponse struct {
	Downloads int64 `json:"downloads"`
	Success   bool  `json:"success"`
}

// CreateCommentRequest represents comment creation data
type CreateCommentRequest struct {
	AuthorName  string `form:"author_name" json:"author_name" binding:"required"`
	AuthorEmail string `form:"author_email" json:"author_email" binding:"required,email"`
	Content     string `form:"content" json:"content" binding:"required"`
}

// CreateRatingRequest represents rating creation data
type CreateRatingRequest struct {
	AuthorName  string `form:"author_name" json:"author_name" binding:"required"`
	AuthorEmail string `form:"author_email" json:"author_email" binding:"required,email"`
	Score       int    `form:"score" json:"score" binding:"required,gte=1,lte=5"`
}
