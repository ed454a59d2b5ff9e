package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"job-application-api/internal/repositories"
)

var allowedResumeExtensions = []string{".pdf", ".doc", ".docx"}

var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type StorageService interface {
	EnsureResumeDir() error
	ValidateExtension(filename string) error
	SaveResume(applicationID, filename string, data []byte) (string, error)
	ReadResume(path string) ([]byte, error)
	FileExists(path string) bool
	ContentTypeFor(filename string) string
}

type storageService struct {
	resumeDir string
}

func NewStorageService(resumeDir string) StorageService {
	return &storageService{
		resumeDir: resumeDir,
	}
}

func (s *storageService) EnsureResumeDir() error {
	if err := os.MkdirAll(s.resumeDir, 0755); err != nil {
		return fmt.Errorf("failed to create resume directory: %w", err)
	}

	return nil
}

// ValidateExtension implements StorageService.
func (s *storageService) ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedResumeExtensions {
		if ext == allowed {
			return nil
		}
	}

	return &InvalidFileTypeError{Extension: ext, Allowed: allowedResumeExtensions}
}

// SaveResume writes the resume bytes to {dir}/{applicationID}_{filename}.
// The extension is checked before anything touches the disk.
func (s *storageService) SaveResume(applicationID, filename string, data []byte) (string, error) {
	if err := s.ValidateExtension(filename); err != nil {
		return "", err
	}

	if err := s.EnsureResumeDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.resumeDir, fmt.Sprintf("%s_%s", applicationID, filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save resume: %w", err)
	}

	return path, nil
}

// ReadResume returns the stored bytes, mapping a missing file to ErrNotFound.
// The file can legitimately be gone: a storage reset or a process restart does
// not touch the disk, so store and filesystem drift apart.
func (s *storageService) ReadResume(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	return data, nil
}

// FileExists implements StorageService.
func (s *storageService) FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ContentTypeFor maps a resume extension to its download content type,
// falling back to an opaque binary type for anything unknown.
func (s *storageService) ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := resumeContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
