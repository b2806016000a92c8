package models

import "time"

// Note represents an uploaded study resource attached to a subject.
// FilePath holds the stored relative path; FileName keeps the original
// upload name used for the attachment disposition.
type Note struct {
	ID          int64     `db:"id" json:"id"`
	SubjectID   int64     `db:"subject_id" json:"subject_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Content     string    `db:"content" json:"content"`
	FilePath    *string   `db:"file_path" json:"file,omitempty"`
	FileName    *string   `db:"file_name" json:"file_name,omitempty"`
	Thumbnail   *string   `db:"thumbnail" json:"thumbnail"`
	Tags        string    `db:"tags" json:"tags"`
	Chapter     string    `db:"chapter" json:"chapter"`
	NoteType    NoteType  `db:"note_type" json:"note_type"`
	Downloads   int64     `db:"downloads" json:"downloads"`
	IsFeatured  bool      `db:"is_featured" json:"is_featured"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
