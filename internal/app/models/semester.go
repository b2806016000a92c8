package models

import "time"

// Semester represents an academic term grouping subjects, numbered 1-8.
type Semester struct {
	ID          int64     `db:"id" json:"id"`
	Number      int       `db:"number" json:"number"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
