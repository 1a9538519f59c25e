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

type classStoreMock struct {
	classes []models.Class
}

func (m *classStoreMock) GetClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	var out []models.Class
	for _, c := range m.classes {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *classStoreMock) CreateClass(ctx context.Context, class *models.Class) error {
	class.ID = uuid.NewString()
	now := time.Now().UTC()
	class.CreatedAt = now
	class.UpdatedAt = now
	m.classes = append(m.classes, *class)
	return nil
}

func newClassHandler(st *classStoreMock) *ClassHandler {
	return NewClassHandler(service.NewClassService(st, nil, nil))
}

func TestClassHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClassHandler(&classStoreMock{})

	body := `{"name":"Mathematics 101","subject":"Mathematics","grade_level":"9th Grade","teacher_id":"t1"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/classes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created service.ClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Mathematics 101", created.Name)
	assert.Equal(t, 0, created.StudentCount)
}

func TestClassHandlerCreateMissingTeacherID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &classStoreMock{}
	handler := newClassHandler(st)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/classes", bytes.NewBufferString(`{"name":"Mathematics 101"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, "teacher_id")
	assert.Empty(t, st.classes)
}

func TestClassHandlerCreateMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClassHandler(&classStoreMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/classes", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassHandlerListRequiresTeacherID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClassHandler(&classStoreMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/classes", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, "teacher_id")
}

func TestClassHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &classStoreMock{classes: []models.Class{
		{ID: "c1", TeacherID: "t1", Name: "Algebra"},
		{ID: "c2", TeacherID: "t2", Name: "Biology"},
	}}
	handler := newClassHandler(st)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/classes?teacher_id=t1", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var classes []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "c1", classes[0].ID)
}
