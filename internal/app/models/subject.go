package models

import "time"

// Subject represents a course inside a semester, identified by a unique code.
type Subject struct {
	ID          int64     `db:"id" json:"id"`
	SemesterID  int64     `db:"semester_id" json:"semester_id"`
	Name        string    `db:"name" json:"name"`
	Code        string    `db:"code" json:"code"`
	Description string    `db:"description" json:"description"`
	Credits     int       `db:"credits" json:"credits"`
	Thumbnail   *string   `db:"thumbnail" json:"thumbnail"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
