package storage

import (
	"context"
	"mime/multipart"
)

// StorageService defines the interface for portfolio/service image hosting.
type StorageService interface {
	UploadImage(ctx context.Context, file multipart.File, folder string) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadResult is the hosted image reference returned after an upload.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}
