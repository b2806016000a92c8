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

// NoteController handles note catalog and interaction operations
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// parseNoteFilter reads the composable catalog filters from the query.
func parseNoteFilter(ctx *gin.Context) dto.NoteFilter {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.NoteFilter{
		SubjectID: nil,
		Search:    ctx.Query("search"),
		NoteType:  ctx.Query("type"),
		Chapter:   ctx.Query("chapter"),
		Page:      page,
		Size:      size,
	}
	if _, present := ctx.GetQuery("featured"); present {
		filter.Featured = true
	}
	if subjectID := parseIDQuery(ctx, "subject_id"); subjectID != nil {
		filter.SubjectID = subjectID
	}
	return filter
}

// GetAllNotes lists notes matching the catalog filters
// @Summary List notes
// @Description Retrieves notes with composable filters; all set filters must match
// @Tags notes
// @Produce json
// @Param subject_id query int false "Filter by subject ID"
// @Param search query string false "Substring match on title"
// @Param type query string false "Exact note type" Enums(lecture, assignment, tutorial, exam, reference)
// @Param chapter query string false "Substring match on chapter"
// @Param featured query bool false "Featured notes only"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoteResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [get]
func (c *NoteController) GetAllNotes(ctx *gin.Context) {
	notes, pagination, err := c.noteService.GetAllNotes(ctx, parseNoteFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       notes,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetSubjectNotes lists the notes of one subject
// @Summary List notes of a subject
// @Description Retrieves the notes of a subject with the same filters as the catalog list
// @Tags notes
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoteResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Router /subjects/{id}/notes [get]
func (c *NoteController) GetSubjectNotes(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "subject ID")
	if !ok {
		return
	}

	filter := parseNoteFilter(ctx)
	filter.SubjectID = &id

	notes, pagination, err := c.noteService.GetAllNotes(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       notes,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetNoteByID retrieves the full note view
// @Summary Get note by ID
// @Description Retrieves a note with its comments, ratings and derived rating fields
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [get]
func (c *NoteController) GetNoteByID(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	note, err := c.noteService.GetNoteByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// GetFeaturedNotes lists the featured strip
// @Summary List featured notes
// @Description Retrieves up to six featured notes, newest first
// @Tags notes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.NoteResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /featured-notes [get]
func (c *NoteController) GetFeaturedNotes(ctx *gin.Context) {
	notes, err := c.noteService.GetFeaturedNotes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notes,
		Timestamp: time.Now(),
	})
}

// AddComment creates a comment on a note
// @Summary Comment on a note
// @Description Adds a visitor comment; the note id comes from the URL only
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body dto.CreateCommentRequest true "Comment data"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Invalid comment data"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id}/comments [post]
func (c *NoteController) AddComment(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	comment, err := c.noteService.AddComment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      comment,
		Timestamp: time.Now(),
	})
}

// AddRating creates a rating on a note
// @Summary Rate a note
// @Description Adds a 1-5 star rating; one rating per email per note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body dto.CreateRatingRequest true "Rating data"
// @Success 201 {object} dto.APIResponse{data=models.Rating}
// @Failure 400 {object} dto.ErrorResponse "Invalid score or duplicate rating"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id}/ratings [post]
func (c *NoteController) AddRating(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rating, err := c.noteService.AddRating(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      rating,
		Timestamp: time.Now(),
	})
}

// IncrementDownloads bumps a note's download counter
// @Summary Increment download counter
// @Description Atomically adds one to the counter and returns the new total
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.DownloadCountResponse
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id}/increment-download [post]
func (c *NoteController) IncrementDownloads(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	downloads, err := c.noteService.IncrementDownloads(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DownloadCountResponse{
		Downloads: downloads,
		Success:   true,
	})
}

// UpdateNote updates a note from the admin edit form
// @Summary Update note
// @Description Updates a note's metadata; file content is not touched here
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Note data"
// @Success 200 {object} dto.APIResponse{data=models.Note}
// @Failure 400 {object} dto.ErrorResponse "Invalid note data"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /admin/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	note, err := c.noteService.UpdateNote(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// SetFeatured sets or clears the featured flag
// @Summary Set note featured flag
// @Description Marks or unmarks a note as featured
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.SetFeaturedRequest true "Featured flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /admin/notes/{id}/featured [patch]
func (c *NoteController) SetFeatured(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	var req dto.SetFeaturedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.noteService.SetFeatured(ctx, id, *req.IsFeatured); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Note unmarked as featured"
	if *req.IsFeatured {
		message = "Note marked as featured"
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: message},
		Timestamp: time.Now(),
	})
}

// BulkUploadNotes creates one note per uploaded file
// @Summary Bulk upload notes
// @Description Creates one note per file, deriving each title from the file name
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param subject_id formData int true "Subject ID"
// @Param note_type formData string false "Note type" Enums(lecture, assignment, tutorial, exam, reference)
// @Param chapter formData string false "Shared chapter"
// @Param tags formData string false "Shared tags"
// @Param files formData file false "Note files"
// @Success 201 {object} dto.APIResponse{data=dto.BulkUploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid upload data"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/notes [post]
func (c *NoteController) BulkUploadNotes(ctx *gin.Context) {
	var req dto.BulkUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	files := form.File["files"]

	result, err := c.noteService.BulkUploadNotes(ctx, &req, files)
	if err != nil {
		// Uploads are not transactional. When a batch fails partway the
		// notes created before the failure are reported with the error.
		if result != nil && result.Created > 0 {
			ctx.JSON(http.StatusInternalServerError, dto.APIResponse{
				Data:      result,
				Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, err.Error()),
				Timestamp: time.Now(),
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DeleteNote removes a note
// @Summary Delete note
// @Description Deletes a note along with its stored file, comments and ratings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /admin/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	if err := c.noteService.DeleteNote(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Note deleted"},
		Timestamp: time.Now(),
	})
}
