package store

import (
	"context"
	"time"

	"github.com/educonnect/educonnect-api/internal/models"
)

// Observer receives timing for each storage adapter operation.
type Observer interface {
	ObserveStoreOperation(operation string, duration time.Duration)
}

// WithMetrics decorates a store so every operation reports its duration.
func WithMetrics(next Store, obs Observer) Store {
	if obs == nil {
		return next
	}
	return &instrumentedStore{next: next, obs: obs}
}

type instrumentedStore struct {
	next Store
	obs  Observer
}

func (s *instrumentedStore) observe(op string, start time.Time) {
	s.obs.ObserveStoreOperation(op, time.Since(start))
}

func (s *instrumentedStore) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	defer s.observe("get_teacher", time.Now())
	return s.next.GetTeacher(ctx, id)
}

func (s *instrumentedStore) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	defer s.observe("get_teacher_by_email", time.Now())
	return s.next.GetTeacherByEmail(ctx, email)
}

func (s *instrumentedStore) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	defer s.observe("create_teacher", time.Now())
	return s.next.CreateTeacher(ctx, teacher)
}

func (s *instrumentedStore) GetClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	defer s.observe("get_classes", time.Now())
	return s.next.GetClasses(ctx, teacherID)
}

func (s *instrumentedStore) CreateClass(ctx context.Context, class *models.Class) error {
	defer s.observe("create_class", time.Now())
	return s.next.CreateClass(ctx, class)
}

func (s *instrumentedStore) GetStudents(ctx context.Context, classID string) ([]models.Student, error) {
	defer s.observe("get_students", time.Now())
	return s.next.GetStudents(ctx, classID)
}

func (s *instrumentedStore) CreateStudent(ctx context.Context, student *models.Student) error {
	defer s.observe("create_student", time.Now())
	return s.next.CreateStudent(ctx, student)
}

func (s *instrumentedStore) GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error) {
	defer s.observe("get_materials", time.Now())
	return s.next.GetMaterials(ctx, classID, teacherID)
}

func (s *instrumentedStore) CreateMaterial(ctx context.Context, material *models.Material) error {
	defer s.observe("create_material", time.Now())
	return s.next.CreateMaterial(ctx, material)
}

func (s *instrumentedStore) GetProgressUpdates(ctx context.Context, studentID string) ([]models.ProgressUpdate, error) {
	defer s.observe("get_progress_updates", time.Now())
	return s.next.GetProgressUpdates(ctx, studentID)
}

func (s *instrumentedStore) CreateProgressUpdate(ctx context.Context, update *models.ProgressUpdate) error {
	defer s.observe("create_progress_update", time.Now())
	return s.next.CreateProgressUpdate(ctx, update)
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
