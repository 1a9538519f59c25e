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

type mockProgressStore struct {
	updates []models.ProgressUpdate
}

func (m *mockProgressStore) GetProgressUpdates(ctx context.Context, studentID string) ([]models.ProgressUpdate, error) {
	var out []models.ProgressUpdate
	for _, u := range m.updates {
		if u.StudentID == studentID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockProgressStore) CreateProgressUpdate(ctx context.Context, update *models.ProgressUpdate) error {
	update.ID = uuid.NewString()
	update.CreatedAt = time.Now().UTC()
	m.updates = append(m.updates, *update)
	return nil
}

func TestProgressServiceCreateDefaultsType(t *testing.T) {
	st := &mockProgressStore{}
	svc := NewProgressService(st, nil, nil)

	created, err := svc.Create(context.Background(), CreateProgressUpdateRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Content:   "Great participation this week",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.ProgressTypeGeneral, created.Type)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProgressServiceCreateRequiresContent(t *testing.T) {
	st := &mockProgressStore{}
	svc := NewProgressService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateProgressUpdateRequest{
		StudentID: "s1",
		TeacherID: "t1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "content")
	assert.Empty(t, st.updates)
}

func TestProgressServiceCreateRejectsUnknownType(t *testing.T) {
	svc := NewProgressService(&mockProgressStore{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateProgressUpdateRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Content:   "note",
		Type:      "disciplinary",
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestProgressServiceListRequiresStudentID(t *testing.T) {
	svc := NewProgressService(&mockProgressStore{}, nil, nil)

	_, err := svc.List(context.Background(), "")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "student_id")
}
