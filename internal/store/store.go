// Package store provides the backend-agnostic persistence facade for the
// API. Every domain operation is available against either the hosted
// PostgreSQL service or the embedded SQLite database; the binding is chosen
// once when the store is constructed and never re-evaluated per call.
package store

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/pkg/config"
	"github.com/educonnect/educonnect-api/pkg/database"
)

// ErrNotFound signals a by-id or by-email lookup that matched no row. It is
// distinct from an empty list result, which is returned as an empty slice.
var ErrNotFound = errors.New("record not found")

// Store is the single operation set every service depends on.
type Store interface {
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error

	GetClasses(ctx context.Context, teacherID string) ([]models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error

	GetStudents(ctx context.Context, classID string) ([]models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error

	GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error)
	CreateMaterial(ctx context.Context, material *models.Material) error

	GetProgressUpdates(ctx context.Context, studentID string) ([]models.ProgressUpdate, error)
	CreateProgressUpdate(ctx context.Context, update *models.ProgressUpdate) error

	Ping(ctx context.Context) error
	Close() error
}

// New constructs the store binding selected by configuration. There is no
// runtime fallback: if the chosen backend is unreachable the operation, and
// here the construction, fails.
func New(cfg *config.Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Database.UseOffline {
		db, err := database.NewSQLite(cfg.SQLite.Path, sqliteSchema)
		if err != nil {
			return nil, err
		}
		logger.Info("store initialized", zap.String("backend", "sqlite"), zap.String("path", cfg.SQLite.Path))
		return NewSQLiteStore(db, logger), nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("store initialized", zap.String("backend", "postgres"), zap.String("database", cfg.Database.Name))
	return NewPostgresStore(db, logger), nil
}
