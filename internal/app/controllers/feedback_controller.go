package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/app/services"
	"github.com/esathi/engineersathi/internal/middleware"
)

// FeedbackController handles site feedback submissions
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback records a feedback entry
// @Summary Submit feedback
// @Description Records a site feedback entry; an omitted type defaults to general
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} dto.APIResponse{data=models.Feedback}
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback data"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}
