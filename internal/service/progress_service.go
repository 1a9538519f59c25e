package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type progressStore interface {
	GetProgressUpdates(ctx context.Context, studentID string) ([]models.ProgressUpdate, error)
	CreateProgressUpdate(ctx context.Context, update *models.ProgressUpdate) error
}

// CreateProgressUpdateRequest captures an immutable progress note.
type CreateProgressUpdateRequest struct {
	StudentID string         `json:"student_id" validate:"required"`
	TeacherID string         `json:"teacher_id" validate:"required"`
	Content   string         `json:"content" validate:"required"`
	Type      string         `json:"type" validate:"omitempty,oneof=general academic behavioral achievement"`
	Data      models.JSONMap `json:"data"`
}

// ProgressService coordinates progress update operations.
type ProgressService struct {
	store     progressStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProgressService constructs ProgressService.
func NewProgressService(st progressStore, validate *validator.Validate, logger *zap.Logger) *ProgressService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{store: st, validator: validate, logger: logger}
}

// List returns a student's progress notes, newest first.
func (s *ProgressService) List(ctx context.Context, studentID string) ([]models.ProgressUpdate, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}

	updates, err := s.store.GetProgressUpdates(ctx, studentID)
	if err != nil {
		s.logger.Error("failed to list progress updates", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list progress updates")
	}
	return updates, nil
}

// Create validates and persists a progress note. An omitted type defaults to
// general. Notes are never updated after insert.
func (s *ProgressService) Create(ctx context.Context, req CreateProgressUpdateRequest) (*models.ProgressUpdate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	updateType := models.ProgressUpdateType(req.Type)
	if updateType == "" {
		updateType = models.ProgressTypeGeneral
	}

	update := &models.ProgressUpdate{
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Content:   req.Content,
		Type:      updateType,
		Data:      req.Data,
	}
	if err := s.store.CreateProgressUpdate(ctx, update); err != nil {
		s.logger.Error("failed to create progress update", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create progress update")
	}
	return update, nil
}
