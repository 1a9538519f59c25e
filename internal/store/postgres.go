package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
)

// PostgresStore executes every operation as a filtered query or row insert
// against the hosted PostgreSQL service.
type PostgresStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sqlx.DB, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{db: db, logger: logger}
}

// GetTeacher returns a teacher by id.
func (s *PostgresStore) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	const query = `SELECT id, email, name, avatar_url, preferences, password_hash, created_at, updated_at FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := s.db.GetContext(ctx, &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return &teacher, nil
}

// GetTeacherByEmail returns a teacher by unique email.
func (s *PostgresStore) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	const query = `SELECT id, email, name, avatar_url, preferences, password_hash, created_at, updated_at FROM teachers WHERE email = $1`
	var teacher models.Teacher
	if err := s.db.GetContext(ctx, &teacher, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get teacher by email: %w", err)
	}
	return &teacher, nil
}

// CreateTeacher inserts a teacher, assigning id and timestamps.
func (s *PostgresStore) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	stampNew(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	const query = `INSERT INTO teachers (id, email, name, avatar_url, preferences, password_hash, created_at, updated_at)
        VALUES (:id, :email, :name, :avatar_url, :preferences, :password_hash, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// GetClasses returns classes owned by the teacher, newest update first.
func (s *PostgresStore) GetClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	const query = `SELECT id, teacher_id, name, description, subject, grade_level, settings, created_at, updated_at
        FROM classes WHERE teacher_id = $1 ORDER BY updated_at DESC`
	classes := []models.Class{}
	if err := s.db.SelectContext(ctx, &classes, query, teacherID); err != nil {
		return nil, fmt.Errorf("get classes: %w", err)
	}
	return classes, nil
}

// CreateClass inserts a class, assigning id and timestamps.
func (s *PostgresStore) CreateClass(ctx context.Context, class *models.Class) error {
	stampNew(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	const query = `INSERT INTO classes (id, teacher_id, name, description, subject, grade_level, settings, created_at, updated_at)
        VALUES (:id, :teacher_id, :name, :description, :subject, :grade_level, :settings, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// GetStudents returns students in a class ordered by name. An empty classID
// returns the full roster.
func (s *PostgresStore) GetStudents(ctx context.Context, classID string) ([]models.Student, error) {
	query := `SELECT id, class_id, name, student_id, parent_email, parent_phone, metadata, created_at, updated_at FROM students`
	var args []interface{}
	if classID != "" {
		query += ` WHERE class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY name`

	students := []models.Student{}
	if err := s.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}
	return students, nil
}

// CreateStudent inserts a student, assigning id and timestamps.
func (s *PostgresStore) CreateStudent(ctx context.Context, student *models.Student) error {
	stampNew(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	const query = `INSERT INTO students (id, class_id, name, student_id, parent_email, parent_phone, metadata, created_at, updated_at)
        VALUES (:id, :class_id, :name, :student_id, :parent_email, :parent_phone, :metadata, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// GetMaterials returns materials, optionally filtered by class or by owning
// teacher (through the class), newest update first.
func (s *PostgresStore) GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error) {
	base := `SELECT m.id, m.class_id, m.title, m.content, m.type, m.file_url, m.metadata, m.is_published, m.created_at, m.updated_at FROM materials m`
	var conditions []string
	var args []interface{}

	if teacherID != "" {
		base += ` JOIN classes c ON c.id = m.class_id`
		conditions = append(conditions, fmt.Sprintf("c.teacher_id = $%d", len(args)+1))
		args = append(args, teacherID)
	}
	if classID != "" {
		conditions = append(conditions, fmt.Sprintf("m.class_id = $%d", len(args)+1))
		args = append(args, classID)
	}
	if len(conditions) > 0 {
		base += " WHERE " + strings.Join(conditions, " AND ")
	}
	base += " ORDER BY m.updated_at DESC"

	materials := []models.Material{}
	if err := s.db.SelectContext(ctx, &materials, base, args...); err != nil {
		return nil, fmt.Errorf("get materials: %w", err)
	}
	return materials, nil
}

// CreateMaterial inserts a material, assigning id and timestamps.
func (s *PostgresStore) CreateMaterial(ctx context.Context, material *models.Material) error {
	stampNew(&material.ID, &material.CreatedAt, &material.UpdatedAt)
	const query = `INSERT INTO materials (id, class_id, title, content, type, file_url, metadata, is_published, created_at, updated_at)
        VALUES (:id, :class_id, :title, :content, :type, :file_url, :metadata, :is_published, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, material); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// GetProgressUpdates returns a student's progress notes, newest first.
func (s *PostgresStore) GetProgressUpdates(ctx context.Context, studentID string) ([]models.ProgressUpdate, error) {
	const query = `SELECT id, student_id, teacher_id, content, type, data, created_at
        FROM progress_updates WHERE student_id = $1 ORDER BY created_at DESC`
	updates := []models.ProgressUpdate{}
	if err := s.db.SelectContext(ctx, &updates, query, studentID); err != nil {
		return nil, fmt.Errorf("get progress updates: %w", err)
	}
	return updates, nil
}

// CreateProgressUpdate inserts an immutable progress note.
func (s *PostgresStore) CreateProgressUpdate(ctx context.Context, update *models.ProgressUpdate) error {
	if update.ID == "" {
		update.ID = uuid.NewString()
	}
	if update.CreatedAt.IsZero() {
		update.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO progress_updates (id, student_id, teacher_id, content, type, data, created_at)
        VALUES (:id, :student_id, :teacher_id, :content, :type, :data, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, update); err != nil {
		return fmt.Errorf("create progress update: %w", err)
	}
	return nil
}

// Ping verifies the backend connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// stampNew fills store-assigned identity and timestamps on insert.
func stampNew(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
