package project_service

import (
	"testing"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows map[string]*model.Project // by name
}

func (f *fakeStore) Create(project *model.Project) error {
	cp := *project
	f.rows[project.Name] = &cp
	return nil
}

func (f *fakeStore) GetByName(name string) (*model.Project, error) {
	p, ok := f.rows[name]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) Update(project *model.Project) error {
	if _, ok := f.rows[project.Name]; !ok {
		return database.ErrNotFound
	}
	cp := *project
	f.rows[project.Name] = &cp
	return nil
}

func TestProject_UpsertCreates(t *testing.T) {
	store := &fakeStore{rows: make(map[string]*model.Project)}
	svc := NewProjectService(store)

	project, err := svc.Upsert("char-1", "model-1", "map-1")
	require.NoError(t, err)

	assert.Equal(t, DefaultProjectName, project.Name)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "char-1", project.CharacterID)
	assert.Equal(t, "model-1", project.ModelID)
	assert.Equal(t, "map-1", project.WorldMapID)
}

func TestProject_UpsertUpdatesInPlace(t *testing.T) {
	store := &fakeStore{rows: make(map[string]*model.Project)}
	svc := NewProjectService(store)

	first, err := svc.Upsert("char-1", "", "")
	require.NoError(t, err)

	second, err := svc.Upsert("char-2", "model-2", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "char-2", second.CharacterID)
	assert.Equal(t, "model-2", second.ModelID)
	assert.Equal(t, "", second.WorldMapID)
	assert.Len(t, store.rows, 1)
}

func TestProject_UpsertClearsSlots(t *testing.T) {
	store := &fakeStore{rows: make(map[string]*model.Project)}
	svc := NewProjectService(store)

	_, err := svc.Upsert("char-1", "model-1", "map-1")
	require.NoError(t, err)

	project, err := svc.Upsert("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "", project.CharacterID)
	assert.Equal(t, "", project.ModelID)
	assert.Equal(t, "", project.WorldMapID)
}
