package models

import "time"

// Feedback is a standalone site feedback submission, not tied to any note.
type Feedback struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	FeedbackType FeedbackType `db:"feedback_type" json:"feedback_type"`
	Subject      string       `db:"subject" json:"subject"`
	Message      string       `db:"message" json:"message"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
