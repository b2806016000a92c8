package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// LocalStorage saves files under a root directory on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores an uploaded file under subPath with a unique name and
// returns the relative path to record in the database.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := ls.basePath
	if subPath != "" {
		dirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique stored name to prevent collisions between same-named uploads.
	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := storedName
	if subPath != "" {
		relPath = filepath.Join(subPath, storedName)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// Open opens a stored file by its recorded relative path.
func (ls *LocalStorage) Open(relPath string) (*os.File, os.FileInfo, error) {
	fullPath := ls.FullPath(relPath)
	if fullPath == "" {
		return nil, nil, os.ErrNotExist
	}

	f, err := os.Open(fullPath)
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

// DeleteFile removes a stored file. A missing file is treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	fullPath := ls.FullPath(relPath)
	if fullPath == "" {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		logger.Warn().Str("path", fullPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath resolves a recorded relative path against the storage root.
// Paths that climb out of the root resolve to "".
func (ls *LocalStorage) FullPath(relPath string) string {
	if relPath == "" {
		return ""
	}

	cleaned := filepath.Clean(relPath)
	if cleaned == "." || !filepath.IsLocal(cleaned) {
		return ""
	}

	return filepath.Join(ls.basePath, cleaned)
}
