package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
)

type fakeSemesterStore struct {
	semesters map[int64]*models.Semester
	nextID    int64
}

func newFakeSemesterStore() *fakeSemesterStore {
	return &fakeSemesterStore{semesters: make(map[int64]*models.Semester)}
}

func (s *fakeSemesterStore) Create(ctx context.Context, semester *models.Semester) error {
	for _, existing := range s.semesters {
		if existing.Number == semester.Number {
			return apperrors.ErrSemesterNumberExists
		}
	}
	s.nextID++
	semester.ID = s.nextID
	copied := *semester
	s.semesters[semester.ID] = &copied
	return nil
}

func (s *fakeSemesterStore) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	semester, ok := s.semesters[id]
	if !ok {
		return nil, apperrors.ErrSemesterNotFound
	}
	copied := *semester
	return &copied, nil
}

func (s *fakeSemesterStore) GetByNumber(ctx context.Context, number int, activeOnly bool) (*dto.AdminSemesterResponse, error) {
	for _, semester := range s.semesters {
		if semester.Number != number {
			continue
		}
		if activeOnly && !semester.IsActive {
			continue
		}
		return &dto.AdminSemesterResponse{
			SemesterResponse: dto.SemesterResponse{ID: semester.ID, Number: semester.Number, Name: semester.Name},
			IsActive:         semester.IsActive,
		}, nil
	}
	return nil, apperrors.ErrSemesterNotFound
}

func (s *fakeSemesterStore) List(ctx context.Context, activeOnly bool, offset uint64, limit int) ([]dto.AdminSemesterResponse, error) {
	out := make([]dto.AdminSemesterResponse, 0)
	for id := int64(1); id <= s.nextID; id++ {
		semester, ok := s.semesters[id]
		if !ok || (activeOnly && !semester.IsActive) {
			continue
		}
		out = append(out, dto.AdminSemesterResponse{
			SemesterResponse: dto.SemesterResponse{ID: semester.ID, Number: semester.Number, Name: semester.Name},
			IsActive:         semester.IsActive,
		})
	}
	if offset >= uint64(len(out)) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeSemesterStore) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var count int64
	for _, semester := range s.semesters {
		if activeOnly && !semester.IsActive {
			continue
		}
		count++
	}
	return count, nil
}

func (s *fakeSemesterStore) Update(ctx context.Context, semester *models.Semester) error {
	if _, ok := s.semesters[semester.ID]; !ok {
		return apperrors.ErrSemesterNotFound
	}
	copied := *semester
	s.semesters[semester.ID] = &copied
	return nil
}

func (s *fakeSemesterStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.semesters[id]; !ok {
		return apperrors.ErrSemesterNotFound
	}
	delete(s.semesters, id)
	return nil
}

type fakeSemesterSubjectStore struct {
	subjects []dto.AdminSubjectResponse
}

func (s *fakeSemesterSubjectStore) List(ctx context.Context, semesterID *int64, activeOnly bool, offset uint64, limit int) ([]dto.AdminSubjectResponse, error) {
	out := make([]dto.AdminSubjectResponse, 0)
	for _, subject := range s.subjects {
		if semesterID != nil && subject.SemesterID != *semesterID {
			continue
		}
		if activeOnly && !subject.IsActive {
			continue
		}
		out = append(out, subject)
	}
	return out, nil
}

func newTestSemesterService() (SemesterService, *fakeSemesterStore, *fakeSemesterSubjectStore) {
	semesters := newFakeSemesterStore()
	subjects := &fakeSemesterSubjectStore{}
	return NewSemesterService(semesters, subjects), semesters, subjects
}

func seedSemester(t *testing.T, store *fakeSemesterStore, number int, active bool) *models.Semester {
	t.Helper()
	semester := &models.Semester{Number: number, Name: "Semester", IsActive: active}
	require.NoError(t, store.Create(context.Background(), semester))
	return semester
}

func TestGetAllSemesters_ActiveOnly(t *testing.T) {
	ctx := context.Background()
	svc, semesters, _ := newTestSemesterService()
	seedSemester(t, semesters, 1, true)
	seedSemester(t, semesters, 2, false)
	seedSemester(t, semesters, 3, true)

	list, pagination, err := svc.GetAllSemesters(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(2), pagination.TotalItems)
	assert.Equal(t, 1, pagination.CurrentPage)
}

func TestGetSemesterByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the semester with its active subjects", func(t *testing.T) {
		svc, semesters, subjects := newTestSemesterService()
		semester := seedSemester(t, semesters, 3, true)
		subjects.subjects = []dto.AdminSubjectResponse{
			{SubjectResponse: dto.SubjectResponse{ID: 1, Name: "Thermodynamics"}, SemesterID: semester.ID, IsActive: true},
			{SubjectResponse: dto.SubjectResponse{ID: 2, Name: "Retired Elective"}, SemesterID: semester.ID, IsActive: false},
			{SubjectResponse: dto.SubjectResponse{ID: 3, Name: "Other Semester"}, SemesterID: 99, IsActive: true},
		}

		detail, err := svc.GetSemesterByNumber(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, detail.Number)
		require.Len(t, detail.Subjects, 1)
		assert.Equal(t, "Thermodynamics", detail.Subjects[0].Name)
	})

	t.Run("number outside 1..8 is not found", func(t *testing.T) {
		svc, _, _ := newTestSemesterService()

		for _, number := range []int{0, 9, -1} {
			_, err := svc.GetSemesterByNumber(ctx, number)
			assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
		}
	})

	t.Run("inactive semester is hidden", func(t *testing.T) {
		svc, semesters, _ := newTestSemesterService()
		seedSemester(t, semesters, 5, false)

		_, err := svc.GetSemesterByNumber(ctx, 5)
		assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	})
}

func TestListForAdmin_IncludesInactive(t *testing.T) {
	ctx := context.Background()
	svc, semesters, _ := newTestSemesterService()
	seedSemester(t, semesters, 1, true)
	seedSemester(t, semesters, 2, false)

	list, pagination, err := svc.ListForAdmin(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(2), pagination.TotalItems)
}

func TestCreateSemester(t *testing.T) {
	ctx := context.Background()

	t.Run("new semesters default to active", func(t *testing.T) {
		svc, semesters, _ := newTestSemesterService()

		created, err := svc.CreateSemester(ctx, &dto.CreateSemesterRequest{Number: 4, Name: "Semester 4"})
		require.NoError(t, err)
		assert.True(t, created.IsActive)
		assert.True(t, semesters.semesters[created.ID].IsActive)
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		svc, semesters, _ := newTestSemesterService()
		seedSemester(t, semesters, 4, true)

		_, err := svc.CreateSemester(ctx, &dto.CreateSemesterRequest{Number: 4, Name: "Semester 4"})
		assert.ErrorIs(t, err, apperrors.ErrSemesterNumberExists)
	})
}

func TestUpdateSemester(t *testing.T) {
	ctx := context.Background()
	svc, semesters, _ := newTestSemesterService()
	semester := seedSemester(t, semesters, 6, true)

	inactive := false
	updated, err := svc.UpdateSemester(ctx, semester.ID, &dto.UpdateSemesterRequest{
		Number:      6,
		Name:        "Semester Six",
		Description: "Final year prep",
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Semester Six", updated.Name)
	assert.False(t, updated.IsActive)
	assert.False(t, semesters.semesters[semester.ID].IsActive)

	_, err = svc.UpdateSemester(ctx, 999, &dto.UpdateSemesterRequest{Number: 1, Name: "Missing"})
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
}

func TestDeleteSemester(t *testing.T) {
	ctx := context.Background()
	svc, semesters, _ := newTestSemesterService()
	semester := seedSemester(t, semesters, 7, true)

	require.NoError(t, svc.DeleteSemester(ctx, semester.ID))
	assert.Empty(t, semesters.semesters)

	assert.ErrorIs(t, svc.DeleteSemester(ctx, semester.ID), apperrors.ErrSemesterNotFound)
}
