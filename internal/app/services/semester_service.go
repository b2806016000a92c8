package services

import (
	"context"
	"fmt"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/helpers"
)

// semesterStore is the persistence surface the semester service needs.
type semesterStore interface {
	Create(ctx context.Context, semester *models.Semester) error
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	GetByNumber(ctx context.Context, number int, activeOnly bool) (*dto.AdminSemesterResponse, error)
	List(ctx context.Context, activeOnly bool, offset uint64, limit int) ([]dto.AdminSemesterResponse, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, id int64) error
}

type semesterSubjectStore interface {
	List(ctx context.Context, semesterID *int64, activeOnly bool, offset uint64, limit int) ([]dto.AdminSubjectResponse, error)
}

// SemesterService defines the interface for semester operations
type SemesterService interface {
	GetAllSemesters(ctx context.Context, page, size int) ([]dto.SemesterResponse, dto.PaginationInfo, error)
	GetSemesterByNumber(ctx context.Context, number int) (*dto.SemesterDetailResponse, error)
	ListForAdmin(ctx context.Context, page, size int) ([]dto.AdminSemesterResponse, dto.PaginationInfo, error)
	CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error)
	UpdateSemester(ctx context.Context, id int64, req *dto.UpdateSemesterRequest) (*models.Semester, error)
	DeleteSemester(ctx context.Context, id int64) error
}

// semesterServiceImpl implements SemesterService
type semesterServiceImpl struct {
	semesterRepo semesterStore
	subjectRepo  semesterSubjectStore
}

// NewSemesterService creates a new SemesterService
func NewSemesterService(semesterRepo semesterStore, subjectRepo semesterSubjectStore) SemesterService {
	return &semesterServiceImpl{
		semesterRepo: semesterRepo,
		subjectRepo:  subjectRepo,
	}
}

// GetAllSemesters retrieves the active semesters in curriculum order.
func (s *semesterServiceImpl) GetAllSemesters(ctx context.Context, page, size int) ([]dto.SemesterResponse, dto.PaginationInfo, error) {
	totalItems, err := s.semesterRepo.Count(ctx, true)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting semesters: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	rows, err := s.semesterRepo.List(ctx, true, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing semesters: %w", err)
	}

	semesters := make([]dto.SemesterResponse, 0, len(rows))
	for _, row := range rows {
		semesters = append(semesters, row.SemesterResponse)
	}

	return semesters, pagination, nil
}

// GetSemesterByNumber retrieves an active semester by its curriculum
// number together with its active subjects. The detail route addresses
// semesters by number, not by row id.
func (s *semesterServiceImpl) GetSemesterByNumber(ctx context.Context, number int) (*dto.SemesterDetailResponse, error) {
	if number < models.MinSemesterNumber || number > models.MaxSemesterNumber {
		return nil, apperrors.ErrSemesterNotFound
	}

	row, err := s.semesterRepo.GetByNumber(ctx, number, true)
	if err != nil {
		return nil, err
	}

	subjectRows, err := s.subjectRepo.List(ctx, &row.ID, true, 0, helpers.MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing semester subjects: %w", err)
	}

	subjects := make([]dto.SubjectResponse, 0, len(subjectRows))
	for _, sr := range subjectRows {
		subjects = append(subjects, sr.SubjectResponse)
	}

	return &dto.SemesterDetailResponse{
		SemesterResponse: row.SemesterResponse,
		Subjects:         subjects,
	}, nil
}

// ListForAdmin retrieves all semesters including inactive ones.
func (s *semesterServiceImpl) ListForAdmin(ctx context.Context, page, size int) ([]dto.AdminSemesterResponse, dto.PaginationInfo, error) {
	totalItems, err := s.semesterRepo.Count(ctx, false)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting semesters: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	rows, err := s.semesterRepo.List(ctx, false, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing semesters: %w", err)
	}

	return rows, pagination, nil
}

// CreateSemester creates a new semester.
func (s *semesterServiceImpl) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	semester := &models.Semester{
		Number:      req.Number,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		semester.IsActive = *req.IsActive
	}

	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return nil, err
	}

	return semester, nil
}

// UpdateSemester updates an existing semester.
func (s *semesterServiceImpl) UpdateSemester(ctx context.Context, id int64, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	existing, err := s.semesterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Number = req.Number
	existing.Name = req.Name
	existing.Description = req.Description
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.semesterRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteSemester removes a semester and, via cascade, everything under it.
func (s *semesterServiceImpl) DeleteSemester(ctx context.Context, id int64) error {
	return s.semesterRepo.Delete(ctx, id)
}
