package dto

// SubjectResponse represents a subject row with its derived statistics.
type SubjectResponse struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Code           string  `db:"code" json:"code"`
	Description    string  `db:"description" json:"description"`
	Credits        int     `db:"credits" json:"credits"`
	Thumbnail      *string `db:"thumbnail" json:"thumbnail"`
	TotalNotes     int64   `db:"total_notes" json:"total_notes"`
	TotalDownloads int64   `db:"total_downloads" json:"total_downloads"`
	AverageRating  float64 `db:"average_rating" json:"average_rating"`
	SemesterNumber int     `db:"semester_number" json:"semester_number"`
}

// SubjectDetailResponse is a subject with its nested note list.
type SubjectDetailResponse struct {
	SubjectResponse
	SemesterName string         `db:"semester_name" json:"semester_name"`
	Notes        []NoteResponse `json:"notes"`
}

// AdminSubjectResponse includes the fields hidden from the public API.
type AdminSubjectResponse struct {
	SubjectResponse
	SemesterID int64 `db:"semester_id" json:"semester_id"`
	IsActive   bool  `db:"is_active" json:"is_active"`
}

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	SemesterID  int64  `form:"semester_id" json:"semester_id" binding:"required,gt=0"`
	Name        string `form:"name" json:"name" binding:"required"`
	Code        string `form:"code" json:"code" binding:"required"`
	Description string `form:"description" json:"description"`
	Credits     int    `form:"credits" json:"credits"`
	IsActive    *bool  `form:"is_active" json:"is_active"`
}

// UpdateSubjectRequest represents subject update data
type UpdateSubjectRequest struct {
	SemesterID  int64  `form:"semester_id" json:"semester_id" binding:"required,gt=0"`
	Name        string `form:"name" json:"name" binding:"required"`
	Code        string `form:"code" json:"code" binding:"required"`
	Description string `form:"description" json:"description"`
	Credits     int    `form:"credits" json:"credits"`
	IsActive    *bool  `form:"is_active" json:"is_active"`
}
