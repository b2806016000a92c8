package dto

// StatsResponse is the six-counter platform summary. Semester and subject
// counts cover active rows only; the note, download, comment and rating
// totals cover everything.
type StatsResponse struct {
	TotalSemesters int64 `json:"total_semesters"`
	TotalSubjects  int64 `json:"total_subjects"`
	TotalNotes     int64 `json:"total_notes"`
	TotalDownloads int64 `json:"total_downloads"`
	TotalComments  int64 `json:"total_comments"`
	TotalRatings   int64 `json:"total_ratings"`
}
