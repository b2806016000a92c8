package dto

// CreateFeedbackRequest represents feedback submission data
type CreateFeedbackRequest struct {
	Name         string `form:"name" json:"name" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required,email"`
	FeedbackType string `form:"feedback_type" json:"feedback_type" binding:"omitempty,oneof=suggestion bug general"`
	Subject      string `form:"subject" json:"subject" binding:"required"`
	Message      string `form:"message" json:"message" binding:"required"`
}
