package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleErrorResponse(t *testing.T, err error) (int, dto.ErrorDetail) {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)

	HandleAPIError(ctx, err)

	var body struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return recorder.Code, *body.Error
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"semester not found", apperrors.ErrSemesterNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"subject not found", apperrors.ErrSubjectNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"note not found", apperrors.ErrNoteNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"note has no file", apperrors.ErrNoteHasNoFile, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"stored file missing", apperrors.ErrFileMissing, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate semester number", apperrors.ErrSemesterNumberExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate subject code", apperrors.ErrSubjectCodeExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate rating", apperrors.ErrDuplicateRating, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"semester number out of range", apperrors.ErrSemesterNumberRange, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"score out of range", apperrors.ErrScoreOutOfRange, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := handleErrorResponse(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestHandleAPIError_WrappedError(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrNoteNotFound, "note 42 not found")

	status, detail := handleErrorResponse(t, wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, detail.Code)
	assert.Equal(t, "note 42 not found", detail.Message)
}

func TestHandleAPIError_UnknownErrorHidesDetails(t *testing.T) {
	_, detail := handleErrorResponse(t, errors.New("dial tcp 10.0.0.5:5432: connect refused"))
	assert.Equal(t, "Internal server error", detail.Message)
}
