package models

import "time"

// Rating is a 1-5 star score for a note. One rating per (note, author email).
type Rating struct {
	ID          int64     `db:"id" json:"id"`
	NoteID      int64     `db:"note_id" json:"note_id"`
	AuthorName  string    `db:"author_name" json:"author_name"`
	AuthorEmail string    `db:"author_email" json:"author_email"`
	Score       int       `db:"score" json:"score"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
