package upload

import (
	"io"
)

// UploadResult represents the result of a file upload
type UploadResult struct {
	URL      string `json:"url"`       // Public URL to access the file
	FileName string `json:"file_name"` // Stored filename
	Size     int64  `json:"size"`      // File size in bytes
	PublicID string `json:"public_id"` // Provider-specific identifier
}

// Provider defines the interface for blob storage providers
type Provider interface {
	// Upload stores the file under folder/filename and returns its public URL
	Upload(file io.Reader, filename, folder string) (*UploadResult, error)

	// Delete removes a stored file by public ID
	Delete(publicID string) error

	// GetURL returns the public URL for a stored file
	GetURL(publicID string) string

	// GetProviderName returns the provider name
	GetProviderName() string
}

// detectContentType maps a file extension to a MIME type
func detectContentType(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}
