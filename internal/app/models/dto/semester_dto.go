package dto

// SemesterResponse represents a semester row with its derived counters.
type SemesterResponse struct {
	ID            int64  `db:"id" json:"id"`
	Number        int    `db:"number" json:"number"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	TotalSubjects int64  `db:"total_subjects" json:"total_subjects"`
	TotalNotes    int64  `db:"total_notes" json:"total_notes"`
}

// SemesterDetailResponse is a semester with its nested subject list.
type SemesterDetailResponse struct {
	SemesterResponse
	Subjects []SubjectResponse `json:"subjects"`
}

// AdminSemesterResponse includes the fields hidden from the public API.
type AdminSemesterResponse struct {
	SemesterResponse
	IsActive bool `db:"is_active" json:"is_active"`
}

// CreateSemesterRequest represents semester creation data
type CreateSemesterRequest struct {
	Number      int    `json:"number" binding:"required,gte=1,lte=8"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateSemesterRequest represents semester update data
type UpdateSemesterRequest struct {
	Number      int    `json:"number" binding:"required,gte=1,lte=8"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}
