package filestorage

import (
	"path/filepath"
	"strings"
)

// OctetStream is the fallback content type for unknown extensions.
const OctetStream = "application/octet-stream"

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".txt":  "text/plain",
	".csv":  "text/csv",
}

// ContentTypeByExtension maps a filename's extension to a content type,
// falling back to application/octet-stream.
func ContentTypeByExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return OctetStream
}

// IsInlineViewable reports whether a browser can render the content type
// directly; such files are served inline, everything else as attachment.
func IsInlineViewable(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	switch contentType {
	case "application/pdf", "text/plain":
		return true
	}
	return false
}
