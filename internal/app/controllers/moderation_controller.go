package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/app/services"
	"github.com/esathi/engineersathi/internal/middleware"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
)

// ModerationController handles the admin console's visitor-content surface
type ModerationController struct {
	moderationService services.ModerationService
}

// NewModerationController creates a new ModerationController
func NewModerationController(moderationService services.ModerationService) *ModerationController {
	return &ModerationController{moderationService: moderationService}
}

// ListComments lists all comments
// @Summary List comments (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Comment}
// @Router /admin/comments [get]
func (c *ModerationController) ListComments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	comments, pagination, err := c.moderationService.ListComments(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       comments,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// DeleteComment removes a comment
// @Summary Delete comment (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /admin/comments/{id} [delete]
func (c *ModerationController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "comment ID")
	if !ok {
		return
	}

	if err := c.moderationService.DeleteComment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Comment deleted"},
		Timestamp: time.Now(),
	})
}

// ListRatings lists all ratings
// @Summary List ratings (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Rating}
// @Router /admin/ratings [get]
func (c *ModerationController) ListRatings(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	ratings, pagination, err := c.moderationService.ListRatings(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       ratings,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// DeleteRating removes a rating
// @Summary Delete rating (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rating ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Router /admin/ratings/{id} [delete]
func (c *ModerationController) DeleteRating(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "rating ID")
	if !ok {
		return
	}

	if err := c.moderationService.DeleteRating(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Rating deleted"},
		Timestamp: time.Now(),
	})
}

// ListFeedback lists all feedback entries
// @Summary List feedback (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback}
// @Router /admin/feedback [get]
func (c *ModerationController) ListFeedback(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	entries, pagination, err := c.moderationService.ListFeedback(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       entries,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// DeleteFeedback removes a feedback entry
// @Summary Delete feedback (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /admin/feedback/{id} [delete]
func (c *ModerationController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "feedback ID")
	if !ok {
		return
	}

	if err := c.moderationService.DeleteFeedback(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Feedback deleted"},
		Timestamp: time.Now(),
	})
}
