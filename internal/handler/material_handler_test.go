package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/service"
	"github.com/educonnect/educonnect-api/pkg/response"
)

type materialStoreMock struct {
	materials []models.Material
}

func (m *materialStoreMock) GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error) {
	var out []models.Material
	for _, mat := range m.materials {
		if classID != "" && mat.ClassID != classID {
			continue
		}
		out = append(out, mat)
	}
	return out, nil
}

func (m *materialStoreMock) CreateMaterial(ctx context.Context, material *models.Material) error {
	material.ID = uuid.NewString()
	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now
	m.materials = append(m.materials, *material)
	return nil
}

func newMaterialHandler(st *materialStoreMock) *MaterialHandler {
	return NewMaterialHandler(service.NewMaterialService(st, nil, nil))
}

func TestMaterialHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMaterialHandler(&materialStoreMock{})

	body := `{"class_id":"c1","teacher_id":"t1","title":"Algebra Worksheet","is_published":true}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.MaterialTypeDocument, created.Type)
	assert.True(t, created.IsPublished)
}

func TestMaterialHandlerCreateMalformedFileURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &materialStoreMock{}
	handler := newMaterialHandler(st)

	body := `{"class_id":"c1","teacher_id":"t1","title":"Lecture Recording","type":"video","file_url":"not-a-url"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	require.NotNil(t, errBody.Error)
	assert.Contains(t, errBody.Error.Message, "valid URL")
	assert.Empty(t, st.materials)
}

func TestMaterialHandlerListByClass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &materialStoreMock{materials: []models.Material{
		{ID: "m1", ClassID: "c1", Title: "Worksheet", Type: models.MaterialTypeDocument},
		{ID: "m2", ClassID: "c2", Title: "Video", Type: models.MaterialTypeVideo},
	}}
	handler := newMaterialHandler(st)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/materials?class_id=c1", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var materials []models.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &materials))
	require.Len(t, materials, 1)
	assert.Equal(t, "m1", materials[0].ID)
}
