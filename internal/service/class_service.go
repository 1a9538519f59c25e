package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type classStore interface {
	GetClasses(ctx context.Context, teacherID string) ([]models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error
}

// CreateClassRequest captures the creation payload including the owning
// teacher reference.
type CreateClassRequest struct {
	TeacherID   string         `json:"teacher_id" validate:"required"`
	Name        string         `json:"name" validate:"required,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=500"`
	Subject     *string        `json:"subject" validate:"omitempty,max=50"`
	GradeLevel  *string        `json:"grade_level" validate:"omitempty,max=20"`
	Settings    models.JSONMap `json:"settings"`
}

// ClassResponse extends a created class with its (initially empty) roster
// size, matching the client contract.
type ClassResponse struct {
	models.Class
	StudentCount int `json:"student_count"`
}

// ClassService coordinates class operations.
type ClassService struct {
	store     classStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(st classStore, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{store: st, validator: validate, logger: logger}
}

// List returns the classes owned by one teacher.
func (s *ClassService) List(ctx context.Context, teacherID string) ([]models.Class, error) {
	if teacherID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher_id is required")
	}

	classes, err := s.store.GetClasses(ctx, teacherID)
	if err != nil {
		s.logger.Error("failed to list classes", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Create validates and persists a new class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*ClassResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	class := &models.Class{
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Settings:    req.Settings,
	}
	if err := s.store.CreateClass(ctx, class); err != nil {
		s.logger.Error("failed to create class", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	return &ClassResponse{Class: *class, StudentCount: 0}, nil
}
