package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubNoteService returns canned values for the endpoints under test.
type stubNoteService struct {
	bulkResult *dto.BulkUploadResponse
	bulkErr    error
}

func (s *stubNoteService) GetAllNotes(ctx context.Context, filter dto.NoteFilter) ([]dto.NoteResponse, dto.PaginationInfo, error) {
	return nil, dto.PaginationInfo{}, nil
}

func (s *stubNoteService) GetNoteByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	return nil, nil
}

func (s *stubNoteService) GetFeaturedNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	return nil, nil
}

func (s *stubNoteService) AddComment(ctx context.Context, noteID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	return nil, nil
}

func (s *stubNoteService) AddRating(ctx context.Context, noteID int64, req *dto.CreateRatingRequest) (*models.Rating, error) {
	return nil, nil
}

func (s *stubNoteService) IncrementDownloads(ctx context.Context, noteID int64) (int64, error) {
	return 0, nil
}

func (s *stubNoteService) OpenNoteFile(ctx context.Context, noteID int64) (*services.NoteFile, error) {
	return nil, nil
}

func (s *stubNoteService) BulkUploadNotes(ctx context.Context, req *dto.BulkUploadRequest, files []*multipart.FileHeader) (*dto.BulkUploadResponse, error) {
	return s.bulkResult, s.bulkErr
}

func (s *stubNoteService) UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*models.Note, error) {
	return nil, nil
}

func (s *stubNoteService) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return nil
}

func (s *stubNoteService) DeleteNote(ctx context.Context, id int64) error {
	return nil
}

func bulkUploadRequest(t *testing.T) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("subject_id", "1"))
	part, err := w.CreateFormFile("files", "lecture_01.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/notes", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func postBulkUpload(t *testing.T, svc services.NoteService) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = bulkUploadRequest(t)

	NewNoteController(svc).BulkUploadNotes(ctx)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestBulkUploadNotes_Success(t *testing.T) {
	svc := &stubNoteService{
		bulkResult: &dto.BulkUploadResponse{
			Created: 1,
			Notes:   []dto.NoteResponse{{ID: 1, Title: "Lecture 01"}},
		},
	}

	rec, resp := postBulkUpload(t, svc)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
}

func TestBulkUploadNotes_PartialFailureReportsProgress(t *testing.T) {
	svc := &stubNoteService{
		bulkResult: &dto.BulkUploadResponse{
			Created: 2,
			Notes:   []dto.NoteResponse{{ID: 1, Title: "Lecture 01"}, {ID: 2, Title: "Lecture 02"}},
		},
		bulkErr: errors.New(`error saving file "lecture_03.pdf": disk full`),
	}

	rec, resp := postBulkUpload(t, svc)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)

	// Notes created before the failure stay visible in the response body.
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var partial dto.BulkUploadResponse
	require.NoError(t, json.Unmarshal(data, &partial))
	assert.Equal(t, 2, partial.Created)
	require.Len(t, partial.Notes, 2)
	assert.Equal(t, "Lecture 01", partial.Notes[0].Title)
}

func TestBulkUploadNotes_TotalFailure(t *testing.T) {
	svc := &stubNoteService{
		bulkResult: &dto.BulkUploadResponse{Notes: []dto.NoteResponse{}},
		bulkErr:    errors.New(`error saving file "lecture_01.pdf": disk full`),
	}

	rec, resp := postBulkUpload(t, svc)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Nil(t, resp.Data)
}
