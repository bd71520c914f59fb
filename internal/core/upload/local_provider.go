package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalProvider stores files on the local filesystem. Used for development
// and tests; the returned URL is baseURL + "/" + relative path.
type LocalProvider struct {
	uploadDir string
	baseURL   string
}

// NewLocalProvider creates a local filesystem provider
func NewLocalProvider(uploadDir, baseURL string) (*LocalProvider, error) {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &LocalProvider{
		uploadDir: uploadDir,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (p *LocalProvider) GetProviderName() string {
	return "Local"
}

func (p *LocalProvider) Upload(file io.Reader, filename, folder string) (*UploadResult, error) {
	relPath := path.Join(folder, filename)
	fullPath := filepath.Join(p.uploadDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      p.GetURL(relPath),
		FileName: filename,
		Size:     size,
		PublicID: relPath,
	}, nil
}

func (p *LocalProvider) Delete(publicID string) error {
	fullPath := filepath.Join(p.uploadDir, filepath.FromSlash(publicID))
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (p *LocalProvider) GetURL(publicID string) string {
	if p.baseURL == "" {
		return "/" + publicID
	}
	return p.baseURL + "/" + publicID
}
