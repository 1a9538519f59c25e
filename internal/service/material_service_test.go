package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/models"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type mockMaterialStore struct {
	materials []models.Material
}

func (m *mockMaterialStore) GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error) {
	var out []models.Material
	for _, mat := range m.materials {
		if classID != "" && mat.ClassID != classID {
			continue
		}
		out = append(out, mat)
	}
	return out, nil
}

func (m *mockMaterialStore) CreateMaterial(ctx context.Context, material *models.Material) error {
	material.ID = uuid.NewString()
	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now
	m.materials = append(m.materials, *material)
	return nil
}

func TestMaterialServiceCreateDefaultsType(t *testing.T) {
	st := &mockMaterialStore{}
	svc := NewMaterialService(st, nil, nil)

	created, err := svc.Create(context.Background(), CreateMaterialRequest{
		ClassID:   "c1",
		TeacherID: "t1",
		Title:     "Algebra Worksheet",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.MaterialTypeDocument, created.Type)
	assert.False(t, created.IsPublished)
}

func TestMaterialServiceCreateRejectsUnknownType(t *testing.T) {
	st := &mockMaterialStore{}
	svc := NewMaterialService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateMaterialRequest{
		ClassID:   "c1",
		TeacherID: "t1",
		Title:     "Algebra Worksheet",
		Type:      "podcast",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "type")
	assert.Empty(t, st.materials)
}

func TestMaterialServiceCreateRejectsMalformedFileURL(t *testing.T) {
	st := &mockMaterialStore{}
	svc := NewMaterialService(st, nil, nil)

	fileURL := "not-a-url"
	_, err := svc.Create(context.Background(), CreateMaterialRequest{
		ClassID:   "c1",
		TeacherID: "t1",
		Title:     "Lecture Recording",
		Type:      "video",
		FileURL:   &fileURL,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "valid URL")
}

func TestMaterialServiceCreateEmptyFileURLDropped(t *testing.T) {
	st := &mockMaterialStore{}
	svc := NewMaterialService(st, nil, nil)

	fileURL := ""
	created, err := svc.Create(context.Background(), CreateMaterialRequest{
		ClassID:   "c1",
		TeacherID: "t1",
		Title:     "Syllabus",
		FileURL:   &fileURL,
	})
	require.NoError(t, err)
	assert.Nil(t, created.FileURL)
}

func TestMaterialServiceCreateRequiresTeacherID(t *testing.T) {
	st := &mockMaterialStore{}
	svc := NewMaterialService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateMaterialRequest{
		ClassID: "c1",
		Title:   "Algebra Worksheet",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "teacher_id")
}
