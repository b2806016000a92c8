package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/filestorage"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
)

// subjectStore is the persistence surface the subject service needs.
type subjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetDetailByID(ctx context.Context, id int64, activeOnly bool) (*dto.AdminSubjectResponse, string, error)
	List(ctx context.Context, semesterID *int64, activeOnly bool, offset uint64, limit int) ([]dto.AdminSubjectResponse, error)
	Count(ctx context.Context, semesterID *int64, activeOnly bool) (int64, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
}

type subjectNoteStore interface {
	List(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error)
}

type subjectSemesterStore interface {
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
}

// SubjectService defines the interface for subject operations
type SubjectService interface {
	GetAllSubjects(ctx context.Context, semesterID *int64, page, size int) ([]dto.SubjectResponse, dto.PaginationInfo, error)
	GetSubjectByID(ctx context.Context, id int64) (*dto.SubjectDetailResponse, error)
	ListForAdmin(ctx context.Context, semesterID *int64, page, size int) ([]dto.AdminSubjectResponse, dto.PaginationInfo, error)
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest, thumbnail *multipart.FileHeader) (*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest, thumbnail *multipart.FileHeader) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements SubjectService
type subjectServiceImpl struct {
	subjectRepo  subjectStore
	semesterRepo subjectSemesterStore
	noteRepo     subjectNoteStore
	fileStorage  filestorage.FileStorage
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(
	subjectRepo subjectStore,
	semesterRepo subjectSemesterStore,
	noteRepo subjectNoteStore,
	fileStorage filestorage.FileStorage,
) SubjectService {
	return &subjectServiceImpl{
		subjectRepo:  subjectRepo,
		semesterRepo: semesterRepo,
		noteRepo:     noteRepo,
		fileStorage:  fileStorage,
	}
}

// GetAllSubjects retrieves active subjects, optionally scoped to one semester.
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context, semesterID *int64, page, size int) ([]dto.SubjectResponse, dto.PaginationInfo, error) {
	totalItems, err := s.subjectRepo.Count(ctx, semesterID, true)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting subjects: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	rows, err := s.subjectRepo.List(ctx, semesterID, true, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing subjects: %w", err)
	}

	subjects := make([]dto.SubjectResponse, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, row.SubjectResponse)
	}

	return subjects, pagination, nil
}

// GetSubjectByID retrieves an active subject with its note list.
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*dto.SubjectDetailResponse, error) {
	row, semesterName, err := s.subjectRepo.GetDetailByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	notes, _, err := s.noteRepo.List(ctx, dto.NoteFilter{
		SubjectID: &row.ID,
		Page:      1,
		Size:      helpers.MaxPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing subject notes: %w", err)
	}

	return &dto.SubjectDetailResponse{
		SubjectResponse: row.SubjectResponse,
		SemesterName:    semesterName,
		Notes:           notes,
	}, nil
}

// ListForAdmin retrieves all subjects including inactive ones.
func (s *subjectServiceImpl) ListForAdmin(ctx context.Context, semesterID *int64, page, size int) ([]dto.AdminSubjectResponse, dto.PaginationInfo, error) {
	totalItems, err := s.subjectRepo.Count(ctx, semesterID, false)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting subjects: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	rows, err := s.subjectRepo.List(ctx, semesterID, false, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing subjects: %w", err)
	}

	return rows, pagination, nil
}

// CreateSubject creates a new subject, storing an optional thumbnail image.
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest, thumbnail *multipart.FileHeader) (*models.Subject, error) {
	if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		SemesterID:  req.SemesterID,
		Name:        req.Name,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		Credits:     req.Credits,
		IsActive:    true,
	}
	if subject.Credits <= 0 {
		subject.Credits = 3
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if thumbnail != nil {
		path, err := s.fileStorage.SaveFile(thumbnail, "thumbnails")
		if err != nil {
			return nil, fmt.Errorf("error saving thumbnail: %w", err)
		}
		subject.Thumbnail = &path
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		if subject.Thumbnail != nil {
			_ = s.fileStorage.DeleteFile(*subject.Thumbnail)
		}
		return nil, err
	}

	return subject, nil
}

// UpdateSubject updates an existing subject. A nil thumbnail leaves the
// stored one untouched.
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest, thumbnail *multipart.FileHeader) (*models.Subject, error) {
	existing, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SemesterID != existing.SemesterID {
		if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID); err != nil {
			return nil, err
		}
	}

	oldThumbnail := existing.Thumbnail
	existing.SemesterID = req.SemesterID
	existing.Name = req.Name
	existing.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	existing.Description = req.Description
	if req.Credits > 0 {
		existing.Credits = req.Credits
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if thumbnail != nil {
		path, err := s.fileStorage.SaveFile(thumbnail, "thumbnails")
		if err != nil {
			return nil, fmt.Errorf("error saving thumbnail: %w", err)
		}
		existing.Thumbnail = &path
	} else {
		// Repository keeps the stored thumbnail when nil is passed.
		existing.Thumbnail = nil
	}

	if err := s.subjectRepo.Update(ctx, existing); err != nil {
		if thumbnail != nil && existing.Thumbnail != nil {
			_ = s.fileStorage.DeleteFile(*existing.Thumbnail)
		}
		return nil, err
	}

	if thumbnail != nil && oldThumbnail != nil {
		_ = s.fileStorage.DeleteFile(*oldThumbnail)
	}
	if existing.Thumbnail == nil {
		existing.Thumbnail = oldThumbnail
	}

	return existing, nil
}

// DeleteSubject removes a subject along with its notes. Stored note files
// are left for an offline cleanup since the cascade happens in the database.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	existing, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Thumbnail != nil {
		_ = s.fileStorage.DeleteFile(*existing.Thumbnail)
	}

	return nil
}
