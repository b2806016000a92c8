package models

import "time"

// Comment is a visitor comment left on a note.
type Comment struct {
	ID          int64     `db:"id" json:"id"`
	NoteID      int64     `db:"note_id" json:"note_id"`
	AuthorName  string    `db:"author_name" json:"author_name"`
	AuthorEmail string    `db:"author_email" json:"author_email"`
	Content     string    `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
