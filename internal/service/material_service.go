package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type materialStore interface {
	GetMaterials(ctx context.Context, classID, teacherID string) ([]models.Material, error)
	CreateMaterial(ctx context.Context, material *models.Material) error
}

// CreateMaterialRequest captures the creation payload. The teacher reference
// is required by the public contract but materials are owned through their
// class; it is not persisted as a column.
type CreateMaterialRequest struct {
	ClassID     string         `json:"class_id" validate:"required"`
	TeacherID   string         `json:"teacher_id" validate:"required"`
	Title       string         `json:"title" validate:"required,max=200"`
	Content     *string        `json:"content"`
	Type        string         `json:"type" validate:"omitempty,oneof=document video image link other"`
	FileURL     *string        `json:"file_url" validate:"omitempty,url"`
	Metadata    models.JSONMap `json:"metadata"`
	IsPublished bool           `json:"is_published"`
}

// MaterialService coordinates material operations.
type MaterialService struct {
	store     materialStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService constructs MaterialService.
func NewMaterialService(st materialStore, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{store: st, validator: validate, logger: logger}
}

// List returns materials filtered by class and/or owning teacher; both
// filters are optional.
func (s *MaterialService) List(ctx context.Context, classID, teacherID string) ([]models.Material, error) {
	materials, err := s.store.GetMaterials(ctx, classID, teacherID)
	if err != nil {
		s.logger.Error("failed to list materials", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}
	return materials, nil
}

// Create validates and persists a new material. An omitted type defaults to
// document.
func (s *MaterialService) Create(ctx context.Context, req CreateMaterialRequest) (*models.Material, error) {
	if req.FileURL != nil && *req.FileURL == "" {
		req.FileURL = nil
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	materialType := models.MaterialType(req.Type)
	if materialType == "" {
		materialType = models.MaterialTypeDocument
	}

	material := &models.Material{
		ClassID:     req.ClassID,
		Title:       req.Title,
		Content:     req.Content,
		Type:        materialType,
		FileURL:     req.FileURL,
		Metadata:    req.Metadata,
		IsPublished: req.IsPublished,
	}
	if err := s.store.CreateMaterial(ctx, material); err != nil {
		s.logger.Error("failed to create material", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create material")
	}
	return material, nil
}
