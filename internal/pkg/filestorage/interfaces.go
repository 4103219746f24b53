package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for attachment storage operations
type FileStorage interface {
	// SaveFile saves a file and returns its accessible path
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
