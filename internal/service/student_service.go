package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type studentStore interface {
	GetStudents(ctx context.Context, classID string) ([]models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
}

// CreateStudentRequest captures the creation payload. parent_email may be
// omitted or empty but must be well-formed when present.
type CreateStudentRequest struct {
	ClassID     string         `json:"class_id" validate:"required"`
	Name        string         `json:"name" validate:"required,max=100"`
	StudentID   *string        `json:"student_id" validate:"omitempty,max=50"`
	ParentEmail *string        `json:"parent_email" validate:"omitempty,email"`
	ParentPhone *string        `json:"parent_phone" validate:"omitempty,max=20"`
	Metadata    models.JSONMap `json:"metadata"`
}

// StudentService coordinates student operations.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(st studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// List returns students, scoped to one class when classID is non-empty.
func (s *StudentService) List(ctx context.Context, classID string) ([]models.Student, error) {
	students, err := s.store.GetStudents(ctx, classID)
	if err != nil {
		s.logger.Error("failed to list students", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Create validates and persists a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if req.ParentEmail != nil && *req.ParentEmail == "" {
		req.ParentEmail = nil
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	student := &models.Student{
		ClassID:     req.ClassID,
		Name:        req.Name,
		StudentID:   req.StudentID,
		ParentEmail: req.ParentEmail,
		ParentPhone: req.ParentPhone,
		Metadata:    req.Metadata,
	}
	if err := s.store.CreateStudent(ctx, student); err != nil {
		s.logger.Error("failed to create student", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}
