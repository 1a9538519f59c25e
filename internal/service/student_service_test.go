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

type mockStudentStore struct {
	students []models.Student
}

func (m *mockStudentStore) GetStudents(ctx context.Context, classID string) ([]models.Student, error) {
	if classID == "" {
		return m.students, nil
	}
	var out []models.Student
	for _, st := range m.students {
		if st.ClassID == classID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *mockStudentStore) CreateStudent(ctx context.Context, student *models.Student) error {
	student.ID = uuid.NewString()
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	m.students = append(m.students, *student)
	return nil
}

func TestStudentServiceCreate(t *testing.T) {
	st := &mockStudentStore{}
	svc := NewStudentService(st, nil, nil)

	email := "parent@example.com"
	created, err := svc.Create(context.Background(), CreateStudentRequest{
		ClassID:     "c1",
		Name:        "Alice Johnson",
		ParentEmail: &email,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "c1", created.ClassID)
	require.NotNil(t, created.ParentEmail)
	assert.Equal(t, email, *created.ParentEmail)
}

func TestStudentServiceCreateInvalidParentEmail(t *testing.T) {
	st := &mockStudentStore{}
	svc := NewStudentService(st, nil, nil)

	email := "not-an-email"
	_, err := svc.Create(context.Background(), CreateStudentRequest{
		ClassID:     "c1",
		Name:        "Alice Johnson",
		ParentEmail: &email,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "parent_email")
	assert.Empty(t, st.students)
}

func TestStudentServiceCreateEmptyParentEmailDropped(t *testing.T) {
	st := &mockStudentStore{}
	svc := NewStudentService(st, nil, nil)

	email := ""
	created, err := svc.Create(context.Background(), CreateStudentRequest{
		ClassID:     "c1",
		Name:        "Bob Lee",
		ParentEmail: &email,
	})
	require.NoError(t, err)
	assert.Nil(t, created.ParentEmail)
}

func TestStudentServiceCreateMissingClassID(t *testing.T) {
	st := &mockStudentStore{}
	svc := NewStudentService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Alice Johnson"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "class_id")
}

func TestStudentServiceListAllWhenUnscoped(t *testing.T) {
	st := &mockStudentStore{students: []models.Student{
		{ID: "s1", ClassID: "c1", Name: "Alice"},
		{ID: "s2", ClassID: "c2", Name: "Bob"},
	}}
	svc := NewStudentService(st, nil, nil)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(context.Background(), "c2")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "s2", scoped[0].ID)
}
