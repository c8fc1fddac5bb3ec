package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage local file system storage
type LocalStorage struct {
	basePath  string
	publicURL string
}

// NewLocalStorage create local storage instance
func NewLocalStorage(basePath, publicURL string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./data/uploads"
	}
	if publicURL == "" {
		publicURL = "/uploads"
	}

	// Ensure directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// BasePath the directory uploads are stored under (served statically)
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// Save save file
func (s *LocalStorage) Save(key string, data []byte) error {
	filePath := filepath.Join(s.basePath, key)

	// Ensure parent directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Get get file
func (s *LocalStorage) Get(key string) ([]byte, error) {
	filePath := filepath.Join(s.basePath, key)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// Delete delete file
func (s *LocalStorage) Delete(key string) error {
	filePath := filepath.Join(s.basePath, key)

	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// Exists check if file exists
func (s *LocalStorage) Exists(key string) bool {
	filePath := filepath.Join(s.basePath, key)

	_, err := os.Stat(filePath)
	return err == nil
}

// PublicURL public download path served by the HTTP router
func (s *LocalStorage) PublicURL(key string) string {
	return s.publicURL + "/" + key
}
