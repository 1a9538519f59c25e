package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/pkg/config"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type mockTeacherStore struct {
	teachers map[string]*models.Teacher
}

func newMockTeacherStore() *mockTeacherStore {
	return &mockTeacherStore{teachers: map[string]*models.Teacher{}}
}

func (m *mockTeacherStore) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	for _, teacher := range m.teachers {
		if teacher.ID == id {
			return teacher, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockTeacherStore) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	teacher, ok := m.teachers[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return teacher, nil
}

func (m *mockTeacherStore) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	teacher.ID = uuid.NewString()
	now := time.Now().UTC()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	m.teachers[teacher.Email] = teacher
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenExpiry:  time.Hour,
		Issuer:       "educonnect-api",
		DemoEmail:    "teacher@school.edu",
		DemoPassword: "password",
		DemoName:     "Demo Teacher",
	}
}

func seedTeacher(t *testing.T, st *mockTeacherStore, email, password string) *models.Teacher {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	teacher := &models.Teacher{Email: email, Name: "Demo Teacher", PasswordHash: string(hash)}
	require.NoError(t, st.CreateTeacher(context.Background(), teacher))
	return teacher
}

func TestAuthServiceLogin(t *testing.T) {
	st := newMockTeacherStore()
	seedTeacher(t, st, "teacher@school.edu", "password")
	svc := NewAuthService(st, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "password",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "teacher@school.edu", resp.User.Email)
	assert.Equal(t, "teacher", resp.User.Role)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.TeacherID)
	assert.Equal(t, "teacher@school.edu", claims.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	st := newMockTeacherStore()
	seedTeacher(t, st, "teacher@school.edu", "password")
	svc := NewAuthService(st, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "wrong",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMockTeacherStore(), nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@school.edu",
		Password: "password",
	})
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	svc := NewAuthService(newMockTeacherStore(), nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "email")
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newMockTeacherStore(), nil, nil, testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceEnsureDemoTeacher(t *testing.T) {
	st := newMockTeacherStore()
	svc := NewAuthService(st, nil, nil, testAuthConfig())

	require.NoError(t, svc.EnsureDemoTeacher(context.Background()))
	teacher, err := st.GetTeacherByEmail(context.Background(), "teacher@school.edu")
	require.NoError(t, err)
	assert.NotEmpty(t, teacher.PasswordHash)
	assert.NotEqual(t, "password", teacher.PasswordHash)

	// second call leaves the existing account untouched
	require.NoError(t, svc.EnsureDemoTeacher(context.Background()))
	assert.Len(t, st.teachers, 1)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "password",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
