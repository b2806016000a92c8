package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default size", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -3, 10, 0, 10},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
		{"oversized page size is capped", 1, 500, 0, DefaultPageSize},
		{"fifth page of twenty", 5, 20, 80, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("exact division", func(t *testing.T) {
		info := NewPaginationInfo(30, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, int64(30), info.TotalItems)
	})

	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(31, 1, 10)
		assert.Equal(t, 4, info.TotalPages)
	})

	t.Run("empty result keeps one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, int64(0), info.TotalItems)
	})

	t.Run("page beyond range is clamped", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit values", "page=3&size=25", 3, 25},
		{"garbage falls back", "page=abc&size=xyz", 1, DefaultPageSize},
		{"oversized capped", "page=1&size=1000", 1, DefaultPageSize},
		{"zero page rejected", "page=0&size=10", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
