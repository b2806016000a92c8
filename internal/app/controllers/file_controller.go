package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/esathi/engineersathi/internal/app/services"
	"github.com/esathi/engineersathi/internal/middleware"
	"github.com/esathi/engineersathi/internal/pkg/filestorage"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// FileController streams stored note files. Download always forces an
// attachment with the generic content type; serve picks the content type
// from the extension and lets viewable formats render inline.
type FileController struct {
	noteService services.NoteService
}

// NewFileController creates a new FileController
func NewFileController(noteService services.NoteService) *FileController {
	return &FileController{noteService: noteService}
}

// DownloadNote streams a note file as an attachment
// @Summary Download note file
// @Description Streams the stored file as an attachment under its original name. Does not touch the download counter.
// @Tags files
// @Produce octet-stream
// @Param id path int true "Note ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Note or file not found"
// @Router /notes/{id}/download [get]
func (c *FileController) DownloadNote(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	noteFile, err := c.noteService.OpenNoteFile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer noteFile.File.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", noteFile.FileName))
	ctx.Header("Content-Length", strconv.FormatInt(noteFile.Info.Size(), 10))
	ctx.Header("Content-Type", filestorage.OctetStream)

	streamFile(ctx, noteFile)
}

// ServeNote streams a note file for inline viewing
// @Summary Serve note file
// @Description Streams the stored file with an extension-derived content type; PDFs, images and plain text render inline, everything else downloads.
// @Tags files
// @Produce octet-stream
// @Param id path int true "Note ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Note or file not found"
// @Router /notes/{id}/serve [get]
func (c *FileController) ServeNote(ctx *gin.Context) {
	id, ok := parseIntParam(ctx, "id", "note ID")
	if !ok {
		return
	}

	noteFile, err := c.noteService.OpenNoteFile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer noteFile.File.Close()

	disposition := "attachment"
	if filestorage.IsInlineViewable(noteFile.ContentType) {
		disposition = "inline"
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, noteFile.FileName))
	ctx.Header("Content-Length", strconv.FormatInt(noteFile.Info.Size(), 10))
	ctx.Header("Content-Type", noteFile.ContentType)
	ctx.Header("Cache-Control", "public, max-age=3600")
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "GET, OPTIONS")

	streamFile(ctx, noteFile)
}

func streamFile(ctx *gin.Context, noteFile *services.NoteFile) {
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, noteFile.File); err != nil {
		// Headers are already out; the broken connection is all we can log.
		logger.Warn().Err(err).Str("file", noteFile.FileName).Msg("File stream interrupted")
	}
}
