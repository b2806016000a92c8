package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/filestorage"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// featuredNotesLimit caps the homepage featured strip.
const featuredNotesLimit = 6

// noteStore is the persistence surface the note service needs.
type noteStore interface {
	List(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error)
	Featured(ctx context.Context, limit int) ([]dto.NoteResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	GetDetailByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
	IncrementDownloads(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type commentStore interface {
	ListByNoteID(ctx context.Context, noteID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
}

type ratingStore interface {
	ListByNoteID(ctx context.Context, noteID int64) ([]models.Rating, error)
	Create(ctx context.Context, rating *models.Rating) error
}

type noteSubjectStore interface {
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
}

// NoteFile describes an opened stored file ready to be served. The caller
// owns File and must close it.
type NoteFile struct {
	File        *os.File
	Info        os.FileInfo
	FileName    string
	ContentType string
}

// NoteService defines the interface for note operations
type NoteService interface {
	GetAllNotes(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error)
	GetNoteByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error)
	GetFeaturedNotes(ctx context.Context) ([]dto.NoteResponse, error)
	AddComment(ctx context.Context, noteID int64, req *dto.CreateCommentRequest) (*models.Comment, error)
	AddRating(ctx context.Context, noteID int64, req *dto.CreateRatingRequest) (*models.Rating, error)
	IncrementDownloads(ctx context.Context, noteID int64) (int64, error)
	OpenNoteFile(ctx context.Context, noteID int64) (*NoteFile, error)
	BulkUploadNotes(ctx context.Context, req *dto.BulkUploadRequest, files []*multipart.FileHeader) (*dto.BulkUploadResponse, error)
	UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*models.Note, error)
	SetFeatured(ctx context.Context, id int64, featured bool) error
	DeleteNote(ctx context.Context, id int64) error
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	noteRepo    noteStore
	commentRepo commentStore
	ratingRepo  ratingStore
	subjectRepo noteSubjectStore
	fileStorage filestorage.FileStorage
}

// NewNoteService creates a new NoteService
func NewNoteService(
	noteRepo noteStore,
	commentRepo commentStore,
	ratingRepo ratingStore,
	subjectRepo noteSubjectStore,
	fileStorage filestorage.FileStorage,
) NoteService {
	return &noteServiceImpl{
		noteRepo:    noteRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		subjectRepo: subjectRepo,
		fileStorage: fileStorage,
	}
}

// GetAllNotes retrieves notes matching the catalog filters.
func (s *noteServiceImpl) GetAllNotes(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error) {
	return s.noteRepo.List(ctx, filter)
}

// GetNoteByID retrieves the full note view with its comments and ratings.
func (s *noteServiceImpl) GetNoteByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	detail, err := s.noteRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByNoteID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing note comments: %w", err)
	}

	ratings, err := s.ratingRepo.ListByNoteID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing note ratings: %w", err)
	}

	detail.Comments = comments
	detail.Ratings = ratings
	return detail, nil
}

// GetFeaturedNotes retrieves the featured strip, newest first.
func (s *noteServiceImpl) GetFeaturedNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	return s.noteRepo.Featured(ctx, featuredNotesLimit)
}

// AddComment records a visitor comment on an existing note.
func (s *noteServiceImpl) AddComment(ctx context.Context, noteID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.noteRepo.GetByID(ctx, noteID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		NoteID:      noteID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// AddRating records a star score on an existing note. One rating per
// email per note; a repeat submission surfaces as a duplicate error.
func (s *noteServiceImpl) AddRating(ctx context.Context, noteID int64, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if req.Score < models.MinRatingScore || req.Score > models.MaxRatingScore {
		return nil, apperrors.ErrScoreOutOfRange
	}

	if _, err := s.noteRepo.GetByID(ctx, noteID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		NoteID:      noteID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Score:       req.Score,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// IncrementDownloads adds one to the note's counter and returns the new
// total. This is a separate call from file delivery, so the client decides
// which fetches count as downloads.
func (s *noteServiceImpl) IncrementDownloads(ctx context.Context, noteID int64) (int64, error) {
	return s.noteRepo.IncrementDownloads(ctx, noteID)
}

// OpenNoteFile opens the stored file behind a note for serving.
func (s *noteServiceImpl) OpenNoteFile(ctx context.Context, noteID int64) (*NoteFile, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if note.FilePath == nil || *note.FilePath == "" {
		return nil, apperrors.ErrNoteHasNoFile
	}

	file, info, err := s.fileStorage.Open(*note.FilePath)
	if err != nil {
		logger.Warn().Err(err).Int64("noteID", noteID).Str("path", *note.FilePath).
			Msg("Stored note file missing on disk")
		return nil, apperrors.ErrFileMissing
	}

	fileName := info.Name()
	if note.FileName != nil && *note.FileName != "" {
		fileName = *note.FileName
	}

	return &NoteFile{
		File:        file,
		Info:        info,
		FileName:    fileName,
		ContentType: filestorage.ContentTypeByExtension(fileName),
	}, nil
}

// BulkUploadNotes creates one note per uploaded file, deriving each title
// from the file name. Files are processed independently rather than in one
// transaction, so a failure partway leaves the earlier notes in place and
// is reported for the remainder.
func (s *noteServiceImpl) BulkUploadNotes(ctx context.Context, req *dto.BulkUploadRequest, files []*multipart.FileHeader) (*dto.BulkUploadResponse, error) {
	subject, err := s.subjectRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	noteType := models.NoteType(req.NoteType)
	if req.NoteType == "" {
		noteType = models.NoteTypeLecture
	}
	if !noteType.IsValid() {
		return nil, apperrors.NewValidationError("invalid note type")
	}

	resp := &dto.BulkUploadResponse{Notes: make([]dto.NoteResponse, 0, len(files))}
	for _, fh := range files {
		path, err := s.fileStorage.SaveFile(fh, "notes")
		if err != nil {
			return resp, fmt.Errorf("error saving file %q: %w", fh.Filename, err)
		}

		title := TitleFromFilename(fh.Filename)
		fileName := fh.Filename
		note := &models.Note{
			SubjectID:   subject.ID,
			Title:       title,
			Description: "Notes for " + title,
			FilePath:    &path,
			FileName:    &fileName,
			Tags:        req.Tags,
			Chapter:     req.Chapter,
			NoteType:    noteType,
		}

		if err := s.noteRepo.Create(ctx, note); err != nil {
			_ = s.fileStorage.DeleteFile(path)
			return resp, fmt.Errorf("error creating note for %q: %w", fh.Filename, err)
		}

		resp.Created++
		resp.Notes = append(resp.Notes, dto.NoteResponse{
			ID:          note.ID,
			Title:       note.Title,
			Description: note.Description,
			Tags:        note.Tags,
			Chapter:     note.Chapter,
			NoteType:    note.NoteType,
			CreatedAt:   note.CreatedAt,
			Downloads:   note.Downloads,
			SubjectName: subject.Name,
			SubjectCode: subject.Code,
		})
	}

	return resp, nil
}

// TitleFromFilename turns an uploaded file name into a display title:
// the extension is dropped, separators become spaces and each word is
// title-cased. "data_structures-unit1.pdf" becomes "Data Structures Unit1"
// and "LECTURE_01.pdf" becomes "Lecture 01".
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	if len(words) == 0 {
		return "Untitled"
	}
	return strings.Join(words, " ")
}

// UpdateNote updates a note from the admin edit form.
func (s *noteServiceImpl) UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*models.Note, error) {
	existing, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.SubjectID = req.SubjectID
	existing.Title = req.Title
	existing.Description = req.Description
	existing.Content = req.Content
	existing.Tags = req.Tags
	existing.Chapter = req.Chapter
	existing.NoteType = models.NoteType(req.NoteType)
	if req.IsFeatured != nil {
		existing.IsFeatured = *req.IsFeatured
	}

	if !existing.NoteType.IsValid() {
		return nil, apperrors.NewValidationError("invalid note type")
	}

	if err := s.noteRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// SetFeatured toggles the featured flag on a note.
func (s *noteServiceImpl) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return s.noteRepo.SetFeatured(ctx, id, featured)
}

// DeleteNote removes a note and its stored file.
func (s *noteServiceImpl) DeleteNote(ctx context.Context, id int64) error {
	existing, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.FilePath != nil {
		_ = s.fileStorage.DeleteFile(*existing.FilePath)
	}
	if existing.Thumbnail != nil {
		_ = s.fileStorage.DeleteFile(*existing.Thumbnail)
	}

	return nil
}
