package upload

import (
	"fmt"
	"io"
)

// Service provides blob storage with provider switching
type Service struct {
	provider     Provider
	providerName string
}

// NewService creates a new upload service
func NewService(provider Provider) *Service {
	return &Service{
		provider:     provider,
		providerName: provider.GetProviderName(),
	}
}

// Upload stores a file using the configured provider
func (s *Service) Upload(file io.Reader, filename, folder string) (*UploadResult, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("upload provider not configured")
	}
	return s.provider.Upload(file, filename, folder)
}

// Delete removes a stored file by public ID
func (s *Service) Delete(publicID string) error {
	if s.provider == nil {
		return fmt.Errorf("upload provider not configured")
	}
	return s.provider.Delete(publicID)
}

// GetURL returns the public URL for a stored file
func (s *Service) GetURL(publicID string) string {
	if s.provider == nil {
		return ""
	}
	return s.provider.GetURL(publicID)
}

// GetProviderName returns the current provider name
func (s *Service) GetProviderName() string {
	return s.providerName
}
