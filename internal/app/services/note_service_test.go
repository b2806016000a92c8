package services

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
)

type fakeNoteStore struct {
	notes      map[int64]*models.Note
	nextID     int64
	increments map[int64]int64
	createErr  map[string]error // title -> error forced on Create
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{
		notes:      make(map[int64]*models.Note),
		nextID:     1,
		increments: make(map[int64]int64),
	}
}

func (s *fakeNoteStore) List(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error) {
	return nil, dto.PaginationInfo{}, nil
}

func (s *fakeNoteStore) Featured(ctx context.Context, limit int) ([]dto.NoteResponse, error) {
	out := make([]dto.NoteResponse, 0)
	for _, n := range s.notes {
		if n.IsFeatured && len(out) < limit {
			out = append(out, dto.NoteResponse{ID: n.ID, Title: n.Title, IsFeatured: true})
		}
	}
	return out, nil
}

func (s *fakeNoteStore) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	copied := *n
	return &copied, nil
}

func (s *fakeNoteStore) GetDetailByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	return &dto.NoteDetailResponse{ID: n.ID, Title: n.Title}, nil
}

func (s *fakeNoteStore) Create(ctx context.Context, note *models.Note) error {
	if err := s.createErr[note.Title]; err != nil {
		return err
	}
	note.ID = s.nextID
	s.nextID++
	copied := *note
	s.notes[note.ID] = &copied
	return nil
}

func (s *fakeNoteStore) Update(ctx context.Context, note *models.Note) error {
	if _, ok := s.notes[note.ID]; !ok {
		return apperrors.ErrNoteNotFound
	}
	copied := *note
	s.notes[note.ID] = &copied
	return nil
}

func (s *fakeNoteStore) SetFeatured(ctx context.Context, id int64, featured bool) error {
	n, ok := s.notes[id]
	if !ok {
		return apperrors.ErrNoteNotFound
	}
	n.IsFeatured = featured
	return nil
}

func (s *fakeNoteStore) IncrementDownloads(ctx context.Context, id int64) (int64, error) {
	n, ok := s.notes[id]
	if !ok {
		return 0, apperrors.ErrNoteNotFound
	}
	n.Downloads++
	s.increments[id]++
	return n.Downloads, nil
}

func (s *fakeNoteStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.notes[id]; !ok {
		return apperrors.ErrNoteNotFound
	}
	delete(s.notes, id)
	return nil
}

type fakeCommentStore struct {
	comments []models.Comment
	nextID   int64
}

func (s *fakeCommentStore) ListByNoteID(ctx context.Context, noteID int64) ([]models.Comment, error) {
	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.NoteID == noteID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	s.nextID++
	comment.ID = s.nextID
	s.comments = append(s.comments, *comment)
	return nil
}

type fakeRatingStore struct {
	ratings []models.Rating
	nextID  int64
}

func (s *fakeRatingStore) ListByNoteID(ctx context.Context, noteID int64) ([]models.Rating, error) {
	out := make([]models.Rating, 0)
	for _, r := range s.ratings {
		if r.NoteID == noteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRatingStore) Create(ctx context.Context, rating *models.Rating) error {
	for _, r := range s.ratings {
		if r.NoteID == rating.NoteID && r.AuthorEmail == rating.AuthorEmail {
			return apperrors.ErrDuplicateRating
		}
	}
	s.nextID++
	rating.ID = s.nextID
	s.ratings = append(s.ratings, *rating)
	return nil
}

type fakeSubjectStore struct {
	subjects map[int64]*models.Subject
}

func (s *fakeSubjectStore) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, ok := s.subjects[id]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
	files   map[string]string // relPath -> path of a real file on disk
}

func (s *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	path := subPath + "/" + fileHeader.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeFileStorage) Open(relPath string) (*os.File, os.FileInfo, error) {
	onDisk, ok := s.files[relPath]
	if !ok {
		return nil, nil, os.ErrNotExist
	}
	f, err := os.Open(onDisk)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

func (s *fakeFileStorage) DeleteFile(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	return nil
}

func (s *fakeFileStorage) FullPath(relPath string) string {
	return relPath
}

func newTestNoteService() (NoteService, *fakeNoteStore, *fakeCommentStore, *fakeRatingStore, *fakeSubjectStore, *fakeFileStorage) {
	notes := newFakeNoteStore()
	comments := &fakeCommentStore{}
	ratings := &fakeRatingStore{}
	subjects := &fakeSubjectStore{subjects: map[int64]*models.Subject{
		1: {ID: 1, SemesterID: 1, Name: "Data Structures", Code: "CS201"},
	}}
	storage := &fakeFileStorage{}
	svc := NewNoteService(notes, comments, ratings, subjects, storage)
	return svc, notes, comments, ratings, subjects, storage
}

func seedNote(store *fakeNoteStore, title string) *models.Note {
	note := &models.Note{SubjectID: 1, Title: title, NoteType: models.NoteTypeLecture}
	_ = store.Create(context.Background(), note)
	return note
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"lecture_01.pdf", "Lecture 01"},
		{"LECTURE_01.pdf", "Lecture 01"},
		{"EXAM-Prep_NOTES.pdf", "Exam Prep Notes"},
		{"data_structures-unit1.pdf", "Data Structures Unit1"},
		{"thermodynamics.docx", "Thermodynamics"},
		{"already Title.pdf", "Already Title"},
		{"multi.part.name.pdf", "Multi.part.name"},
		{"dir/path/graph-theory.txt", "Graph Theory"},
		{"___.pdf", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromFilename(tt.filename))
		})
	}
}

func TestAddRating(t *testing.T) {
	ctx := context.Background()

	t.Run("valid rating is stored", func(t *testing.T) {
		svc, notes, _, _, _, _ := newTestNoteService()
		note := seedNote(notes, "Lecture 01")

		rating, err := svc.AddRating(ctx, note.ID, &dto.CreateRatingRequest{
			AuthorName:  "Asha",
			AuthorEmail: "asha@example.com",
			Score:       4,
		})
		require.NoError(t, err)
		assert.Equal(t, note.ID, rating.NoteID)
		assert.Equal(t, 4, rating.Score)
	})

	t.Run("score outside range is rejected", func(t *testing.T) {
		svc, notes, _, _, _, _ := newTestNoteService()
		note := seedNote(notes, "Lecture 01")

		_, err := svc.AddRating(ctx, note.ID, &dto.CreateRatingRequest{
			AuthorName:  "Asha",
			AuthorEmail: "asha@example.com",
			Score:       6,
		})
		assert.ErrorIs(t, err, apperrors.ErrScoreOutOfRange)
	})

	t.Run("missing note yields not found", func(t *testing.T) {
		svc, _, _, _, _, _ := newTestNoteService()

		_, err := svc.AddRating(ctx, 999, &dto.CreateRatingRequest{
			AuthorName:  "Asha",
			AuthorEmail: "asha@example.com",
			Score:       3,
		})
		assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	})

	t.Run("second rating from the same email is rejected", func(t *testing.T) {
		svc, notes, _, _, _, _ := newTestNoteService()
		note := seedNote(notes, "Lecture 01")

		req := &dto.CreateRatingRequest{AuthorName: "Asha", AuthorEmail: "asha@example.com", Score: 5}
		_, err := svc.AddRating(ctx, note.ID, req)
		require.NoError(t, err)

		_, err = svc.AddRating(ctx, note.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateRating)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("comment is attached to the note", func(t *testing.T) {
		svc, notes, comments, _, _, _ := newTestNoteService()
		note := seedNote(notes, "Lecture 01")

		comment, err := svc.AddComment(ctx, note.ID, &dto.CreateCommentRequest{
			AuthorName:  "Bikash",
			AuthorEmail: "bikash@example.com",
			Content:     "Very helpful",
		})
		require.NoError(t, err)
		assert.Equal(t, note.ID, comment.NoteID)
		assert.Len(t, comments.comments, 1)
	})

	t.Run("missing note yields not found", func(t *testing.T) {
		svc, _, _, _, _, _ := newTestNoteService()

		_, err := svc.AddComment(ctx, 42, &dto.CreateCommentRequest{
			AuthorName:  "Bikash",
			AuthorEmail: "bikash@example.com",
			Content:     "Very helpful",
		})
		assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	})
}

func TestIncrementDownloads(t *testing.T) {
	ctx := context.Background()
	svc, notes, _, _, _, _ := newTestNoteService()
	note := seedNote(notes, "Lecture 01")

	first, err := svc.IncrementDownloads(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := svc.IncrementDownloads(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(2), notes.increments[note.ID])

	_, err = svc.IncrementDownloads(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestOpenNoteFile_NoFile(t *testing.T) {
	ctx := context.Background()
	svc, notes, _, _, _, _ := newTestNoteService()
	note := seedNote(notes, "Lecture 01")

	_, err := svc.OpenNoteFile(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoteHasNoFile)
}

func TestOpenNoteFile_DoesNotTouchDownloads(t *testing.T) {
	ctx := context.Background()
	svc, notes, _, _, _, storage := newTestNoteService()

	onDisk := filepath.Join(t.TempDir(), "lecture_01.pdf")
	require.NoError(t, os.WriteFile(onDisk, []byte("%PDF-1.4"), 0o644))
	storage.files = map[string]string{"notes/1/lecture_01.pdf": onDisk}

	relPath := "notes/1/lecture_01.pdf"
	fileName := "lecture_01.pdf"
	note := &models.Note{SubjectID: 1, Title: "Lecture 01", NoteType: models.NoteTypeLecture, FilePath: &relPath, FileName: &fileName}
	require.NoError(t, notes.Create(ctx, note))

	nf, err := svc.OpenNoteFile(ctx, note.ID)
	require.NoError(t, err)
	defer nf.File.Close()

	assert.Equal(t, "lecture_01.pdf", nf.FileName)
	assert.Equal(t, "application/pdf", nf.ContentType)

	// Opening a file for download or inline viewing never bumps the
	// counter; only the explicit increment endpoint does.
	assert.Zero(t, notes.increments[note.ID])
	assert.Equal(t, int64(0), notes.notes[note.ID].Downloads)
}

func TestBulkUploadNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("one note per file with derived titles", func(t *testing.T) {
		svc, notes, _, _, _, storage := newTestNoteService()

		files := []*multipart.FileHeader{
			{Filename: "lecture_01.pdf"},
			{Filename: "graph-theory.pdf"},
			{Filename: "trees.pdf"},
		}

		result, err := svc.BulkUploadNotes(ctx, &dto.BulkUploadRequest{SubjectID: 1, NoteType: "lecture"}, files)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Created)
		require.Len(t, result.Notes, 3)

		assert.Equal(t, "Lecture 01", result.Notes[0].Title)
		assert.Equal(t, "Notes for Lecture 01", result.Notes[0].Description)
		assert.Equal(t, "Graph Theory", result.Notes[1].Title)
		assert.Equal(t, "Trees", result.Notes[2].Title)
		assert.Equal(t, "CS201", result.Notes[0].SubjectCode)

		assert.Len(t, notes.notes, 3)
		assert.Len(t, storage.saved, 3)
	})

	t.Run("empty note type defaults to lecture", func(t *testing.T) {
		svc, notes, _, _, _, _ := newTestNoteService()

		_, err := svc.BulkUploadNotes(ctx, &dto.BulkUploadRequest{SubjectID: 1}, []*multipart.FileHeader{{Filename: "intro.pdf"}})
		require.NoError(t, err)
		assert.Equal(t, models.NoteTypeLecture, notes.notes[1].NoteType)
	})

	t.Run("unknown subject fails before any file is stored", func(t *testing.T) {
		svc, _, _, _, _, storage := newTestNoteService()

		_, err := svc.BulkUploadNotes(ctx, &dto.BulkUploadRequest{SubjectID: 77}, []*multipart.FileHeader{{Filename: "intro.pdf"}})
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
		assert.Empty(t, storage.saved)
	})

	t.Run("mid-batch failure keeps and reports earlier notes", func(t *testing.T) {
		svc, notes, _, _, _, storage := newTestNoteService()
		notes.createErr = map[string]error{"Graph Theory": errors.New("insert failed")}

		files := []*multipart.FileHeader{
			{Filename: "lecture_01.pdf"},
			{Filename: "graph-theory.pdf"},
			{Filename: "trees.pdf"},
		}

		result, err := svc.BulkUploadNotes(ctx, &dto.BulkUploadRequest{SubjectID: 1}, files)
		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Created)
		require.Len(t, result.Notes, 1)
		assert.Equal(t, "Lecture 01", result.Notes[0].Title)

		// The first note survives, the failed upload's file is cleaned up
		// and the remaining files are not attempted.
		assert.Len(t, notes.notes, 1)
		assert.Equal(t, []string{"notes/graph-theory.pdf"}, storage.deleted)
		assert.Len(t, storage.saved, 2)
	})

	t.Run("empty file list creates nothing", func(t *testing.T) {
		svc, notes, _, _, _, _ := newTestNoteService()

		result, err := svc.BulkUploadNotes(ctx, &dto.BulkUploadRequest{SubjectID: 1}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Empty(t, notes.notes)
	})
}

func TestDeleteNote_RemovesStoredFile(t *testing.T) {
	ctx := context.Background()
	svc, notes, _, _, _, storage := newTestNoteService()

	path := "notes/lecture_01.pdf"
	note := &models.Note{SubjectID: 1, Title: "Lecture 01", NoteType: models.NoteTypeLecture, FilePath: &path}
	require.NoError(t, notes.Create(ctx, note))

	require.NoError(t, svc.DeleteNote(ctx, note.ID))
	assert.Empty(t, notes.notes)
	assert.Equal(t, []string{path}, storage.deleted)
}

func TestSetFeatured(t *testing.T) {
	ctx := context.Background()
	svc, notes, _, _, _, _ := newTestNoteService()
	note := seedNote(notes, "Lecture 01")

	require.NoError(t, svc.SetFeatured(ctx, note.ID, true))
	assert.True(t, notes.notes[note.ID].IsFeatured)

	featured, err := svc.GetFeaturedNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	require.NoError(t, svc.SetFeatured(ctx, note.ID, false))
	assert.False(t, notes.notes[note.ID].IsFeatured)

	assert.ErrorIs(t, svc.SetFeatured(ctx, 999, true), apperrors.ErrNoteNotFound)
}
