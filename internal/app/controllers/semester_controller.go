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

// SemesterController handles semester-related operations
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{semesterService: semesterService}
}

// GetAllSemesters lists the active semesters
// @Summary List semesters
// @Description Retrieves active semesters in curriculum order with derived subject and note counts
// @Tags semesters
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /semesters [get]
func (c *SemesterController) GetAllSemesters(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	semesters, pagination, err := c.semesterService.GetAllSemesters(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       semesters,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetSemesterByNumber retrieves one semester with its subjects
// @Summary Get semester by number
// @Description Retrieves an active semester by its curriculum number with its subject list
// @Tags semesters
// @Produce json
// @Param number path int true "Semester number (1-8)"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterDetailResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid semester number"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{number} [get]
func (c *SemesterController) GetSemesterByNumber(ctx *gin.Context) {
	number, ok := parseIntParam(ctx, "number", "semester number")
	if !ok {
		return
	}

	semester, err := c.semesterService.GetSemesterByNumber(ctx, int(number))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// GetSemesterSubjects lists the subjects of one semester
// @Summary List subjects of a semester
// @Description Retrieves the active subjects of an active semester, addressed by number
// @Tags semesters
// @Produce json
// @Param number path int true "Semester number (1-8)"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse}
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{number}/subjects [get]
func (c *SemesterController) GetSemesterSubjects(ctx *gin.Context) {
	number, ok := parseIntParam(ctx, "number", "semester number")
	if !ok {
		return
	}

	semester, err := c.semesterService.GetSemesterByNumber(ctx, int(number))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semester.Subjects,
		Timestamp: time.Now(),
	})
}

// ListSemestersForAdmin lists all semesters including inactive ones
// @Summary List semesters (admin)
// @Description Retrieves all semesters including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminSemesterResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/semesters [get]
func (c *SemesterController) ListSemestersForAdmin(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	semesters, pagination, err := c.semesterService.ListForAdmin(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       semesters,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// CreateSemester creates a semester
// @Summary Create semester
// @Description Creates a new semester with a unique number in 1-8
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRequest true "Semester information"
// @Success 201 {object} dto.APIResponse{data=models.Semester}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate number"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/semesters [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	semester, err := c.semesterService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// UpdateSemester updates a semester
// @Summary Update semester
// @Description Updates an existing semester
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param request body dto.UpdateSemesterRequest true "Semester information"
// @Success 200 {object} dto.APIResponse{data=models.Semester}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate number"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /admin/semesters/{id} [put]
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "semester ID")
	if !ok {
		return
	}

	var req dto.UpdateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	semester, err := c.semesterService.UpdateSemester(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      semester,
		Timestamp: time.Now(),
	})
}

// DeleteSemester removes a semester
// @Summary Delete semester
// @Description Deletes a semester; its subjects and notes cascade with it
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /admin/semesters/{id} [delete]
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "semester ID")
	if !ok {
		return
	}

	if err := c.semesterService.DeleteSemester(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Semester deleted"},
		Timestamp: time.Now(),
	})
}

// parseIntParam reads a positive integer path parameter, responding with
// a 400 when it is not one.
func parseIntParam(ctx *gin.Context, name, label string) (int64, bool) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || value <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return value, true
}
