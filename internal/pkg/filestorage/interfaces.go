package filestorage

import (
	"mime/multipart"
	"os"
)

// FileStorage defines the interface for stored note files and thumbnails.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the relative path recorded in the database.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// Open opens a stored file by its recorded relative path. The caller
	// owns the returned handle and must close it.
	Open(relPath string) (*os.File, os.FileInfo, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an error.
	DeleteFile(relPath string) error

	// FullPath returns the filesystem path for a recorded relative path.
	FullPath(relPath string) string
}
