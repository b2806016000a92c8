package models

// NoteType defines the kind of study material a note holds
type NoteType string

const (
	NoteTypeLecture    NoteType = "lecture"
	NoteTypeAssignment NoteType = "assignment"
	NoteTypeTutorial   NoteType = "tutorial"
	NoteTypeExam       NoteType = "exam"
	NoteTypeReference  NoteType = "reference"
)

// IsValid reports whether t is one of the known note types.
func (t NoteType) IsValid() bool {
	switch t {
	case NoteTypeLecture, NoteTypeAssignment, NoteTypeTutorial, NoteTypeExam, NoteTypeReference:
		return true
	}
	return false
}

// FeedbackType categorizes site feedback submissions
type FeedbackType string

const (
	FeedbackTypeSuggestion FeedbackType = "suggestion"
	FeedbackTypeBug        FeedbackType = "bug"
	FeedbackTypeGeneral    FeedbackType = "general"
)

// IsValid reports whether t is one of the known feedback types.
func (t FeedbackType) IsValid() bool {
	switch t {
	case FeedbackTypeSuggestion, FeedbackTypeBug, FeedbackTypeGeneral:
		return true
	}
	return false
}

// Semester number bounds for an eight-semester curriculum.
const (
	MinSemesterNumber = 1
	MaxSemesterNumber = 8
)

// Rating score bounds.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)
