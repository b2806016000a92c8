package filestorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"notes.pdf", "application/pdf"},
		{"NOTES.PDF", "application/pdf"},
		{"report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"slides.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
		{"scores.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"diagram.png", "image/png"},
		{"photo.jpeg", "image/jpeg"},
		{"readme.txt", "text/plain"},
		{"data.csv", "text/csv"},
		{"archive.zip", OctetStream},
		{"noextension", OctetStream},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeByExtension(tt.filename))
		})
	}
}

func TestIsInlineViewable(t *testing.T) {
	assert.True(t, IsInlineViewable("application/pdf"))
	assert.True(t, IsInlineViewable("image/png"))
	assert.True(t, IsInlineViewable("image/jpeg"))
	assert.True(t, IsInlineViewable("text/plain"))

	assert.False(t, IsInlineViewable("text/csv"))
	assert.False(t, IsInlineViewable("application/msword"))
	assert.False(t, IsInlineViewable(OctetStream))
}
