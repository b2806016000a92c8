package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/app/services"
	"github.com/esathi/engineersathi/internal/middleware"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// parseIDQuery reads an optional positive-integer query filter. Absent or
// malformed values leave the filter unset.
func parseIDQuery(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// GetAllSubjects lists active subjects
// @Summary List subjects
// @Description Retrieves active subjects with derived note, download and rating statistics
// @Tags subjects
// @Produce json
// @Param semester_id query int false "Filter by semester ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	subjects, pagination, err := c.subjectService.GetAllSubjects(ctx, parseIDQuery(ctx, "semester_id"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       subjects,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetSubjectByID retrieves one subject with its notes
// @Summary Get subject by ID
// @Description Retrieves an active subject with its note list and semester context
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "subject ID")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// ListSubjectsForAdmin lists all subjects including inactive ones
// @Summary List subjects (admin)
// @Description Retrieves all subjects including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param semester_id query int false "Filter by semester ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminSubjectResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/subjects [get]
func (c *SubjectController) ListSubjectsForAdmin(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	subjects, pagination, err := c.subjectService.ListForAdmin(ctx, parseIDQuery(ctx, "semester_id"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       subjects,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// CreateSubject creates a subject
// @Summary Create subject
// @Description Creates a new subject with an optional thumbnail image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param semester_id formData int true "Semester ID"
// @Param name formData string true "Subject name"
// @Param code formData string true "Unique subject code"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} dto.APIResponse{data=models.Subject}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate code"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	thumbnail, _ := ctx.FormFile("thumbnail")

	subject, err := c.subjectService.CreateSubject(ctx, &req, thumbnail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// UpdateSubject updates a subject
// @Summary Update subject
// @Description Updates a subject; omitting the thumbnail keeps the stored one
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate code"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "subject ID")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	thumbnail, _ := ctx.FormFile("thumbnail")

	subject, err := c.subjectService.UpdateSubject(ctx, id, &req, thumbnail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// DeleteSubject removes a subject
// @Summary Delete subject
// @Description Deletes a subject; its notes cascade with it
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "subject ID")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Subject deleted"},
		Timestamp: time.Now(),
	})
}
