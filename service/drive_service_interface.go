package service

import "context"

// DriveServiceInterface defines the contract for publishing generated
// documents to Google Drive
type DriveServiceInterface interface {
	UploadGeneratedFile(ctx context.Context, path string, mimeType string) (string, error)
}
