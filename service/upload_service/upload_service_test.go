package upload_service

import (
	"errors"
	"strings"
	"testing"

	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssets struct {
	rows    map[string]*model.Asset
	failing bool
}

func (f *fakeAssets) Create(asset *model.Asset) error {
	if f.failing {
		return errors.New("insert failed")
	}
	cp := *asset
	f.rows[asset.ID] = &cp
	return nil
}

func (f *fakeAssets) GetByID(id string) (*model.Asset, error) {
	asset, ok := f.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *asset
	return &cp, nil
}

type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Save(key string, data []byte) error {
	m.files[key] = data
	return nil
}

func (m *memStorage) Get(key string) ([]byte, error) {
	data, ok := m.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) Delete(key string) error {
	delete(m.files, key)
	return nil
}

func (m *memStorage) Exists(key string) bool {
	_, ok := m.files[key]
	return ok
}

func (m *memStorage) PublicURL(key string) string {
	return "/uploads/" + key
}

func newTestUpload(maxSize int64) (*UploadService, *fakeAssets, *memStorage) {
	assets := &fakeAssets{rows: make(map[string]*model.Asset)}
	stor := newMemStorage()
	return NewUploadService(assets, stor, maxSize), assets, stor
}

func TestUpload_SaveCharacter(t *testing.T) {
	svc, assets, stor := newTestUpload(1 << 20)

	asset, err := svc.SaveAsset(model.AssetKindCharacter, "hero.glb", "model/gltf-binary", []byte("glb-bytes"))
	require.NoError(t, err)

	assert.Equal(t, model.AssetKindCharacter, asset.Kind)
	assert.Equal(t, "hero.glb", asset.OriginalName)
	assert.True(t, strings.HasSuffix(asset.Filename, ".glb"))
	assert.NotEqual(t, "hero.glb", asset.Filename)
	assert.Equal(t, int64(9), asset.Size)
	assert.Equal(t, "/uploads/"+asset.Filename, asset.Url)

	assert.True(t, stor.Exists(asset.Filename))
	assert.Contains(t, assets.rows, asset.ID)
}

func TestUpload_ExtensionRules(t *testing.T) {
	svc, _, _ := newTestUpload(1 << 20)

	cases := []struct {
		kind model.AssetKind
		name string
		ok   bool
	}{
		{model.AssetKindCharacter, "hero.glb", true},
		{model.AssetKindCharacter, "hero.gltf", false},
		{model.AssetKindModel, "env.glb", true},
		{model.AssetKindModel, "env.gltf", true},
		{model.AssetKindModel, "env.obj", false},
		{model.AssetKindWorldMap, "map.png", true},
		{model.AssetKindWorldMap, "map.JPG", true},
		{model.AssetKindWorldMap, "map.jpeg", true},
		{model.AssetKindWorldMap, "map.gif", false},
		{model.AssetKindWorldMap, "map", false},
	}

	for _, tc := range cases {
		_, err := svc.SaveAsset(tc.kind, tc.name, "", []byte("x"))
		if tc.ok {
			assert.NoError(t, err, "%s/%s", tc.kind, tc.name)
		} else {
			assert.ErrorIs(t, err, ErrInvalidFileType, "%s/%s", tc.kind, tc.name)
		}
	}
}

func TestUpload_FileTooLarge(t *testing.T) {
	svc, _, stor := newTestUpload(4)

	_, err := svc.SaveAsset(model.AssetKindCharacter, "hero.glb", "", []byte("12345"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, stor.files)
}

func TestUpload_MetadataFailureRemovesFile(t *testing.T) {
	svc, assets, stor := newTestUpload(1 << 20)
	assets.failing = true

	_, err := svc.SaveAsset(model.AssetKindCharacter, "hero.glb", "", []byte("glb-bytes"))
	require.Error(t, err)
	assert.Empty(t, stor.files)
}

func TestUpload_GetAsset(t *testing.T) {
	svc, _, _ := newTestUpload(1 << 20)

	saved, err := svc.SaveAsset(model.AssetKindWorldMap, "map.png", "image/png", []byte("png"))
	require.NoError(t, err)

	got, err := svc.GetAsset(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = svc.GetAsset("missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
