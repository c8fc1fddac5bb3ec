package upload_service

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AssetStore persists asset metadata.
type AssetStore interface {
	Create(asset *model.Asset) error
	GetByID(id string) (*model.Asset, error)
}

var (
	// ErrInvalidFileType extension not allowed for the asset kind
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrFileTooLarge upload exceeds the configured size cap
	ErrFileTooLarge = errors.New("file too large")
)

// allowedExtensions per asset kind
var allowedExtensions = map[model.AssetKind][]string{
	model.AssetKindCharacter: {".glb"},
	model.AssetKindModel:     {".glb", ".gltf"},
	model.AssetKindWorldMap:  {".png", ".jpg", ".jpeg"},
}

// UploadService stores uploaded asset files and their metadata rows.
type UploadService struct {
	assets      AssetStore
	stor        storage.Storage
	maxFileSize int64
}

// NewUploadService creates an upload service.
func NewUploadService(assets AssetStore, stor storage.Storage, maxFileSize int64) *UploadService {
	return &UploadService{
		assets:      assets,
		stor:        stor,
		maxFileSize: maxFileSize,
	}
}

// SaveAsset validates and stores one uploaded file, returning its
// immutable metadata row.
func (s *UploadService) SaveAsset(kind model.AssetKind, originalName, mime string, data []byte) (*model.Asset, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !extensionAllowed(kind, ext) {
		return nil, ErrInvalidFileType
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	filename := uuid.NewString() + ext
	if err := s.stor.Save(filename, data); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	asset := &model.Asset{
		ID:           uuid.NewString(),
		Kind:         kind,
		OriginalName: originalName,
		Filename:     filename,
		Mime:         mime,
		Size:         int64(len(data)),
		Url:          s.stor.PublicURL(filename),
	}
	if err := s.assets.Create(asset); err != nil {
		// Orphaned file cleanup on metadata failure
		if derr := s.stor.Delete(filename); derr != nil {
			log.Printf("Failed to remove orphaned upload %s: %v", filename, derr)
		}
		return nil, err
	}

	return asset, nil
}

// GetAsset returns asset metadata by id, served from the redis cache when
// possible. Asset rows are immutable, so cached entries never go stale.
func (s *UploadService) GetAsset(id string) (*model.Asset, error) {
	cacheKey := "asset:" + id

	var cached model.Asset
	if err := database.GetCache(cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Asset cache read failed for %s: %v", id, err)
	}

	asset, err := s.assets.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := database.SetCache(cacheKey, asset); err != nil {
		log.Printf("Asset cache write failed for %s: %v", id, err)
	}
	return asset, nil
}

func extensionAllowed(kind model.AssetKind, ext string) bool {
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}
