package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/store"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type teacherStore interface {
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
}

// CreateTeacherRequest captures the account provisioning payload.
type CreateTeacherRequest struct {
	Email       string         `json:"email" validate:"required,email"`
	Name        string         `json:"name" validate:"required,max=100"`
	Password    string         `json:"password" validate:"required,min=6"`
	AvatarURL   *string        `json:"avatar_url" validate:"omitempty,url"`
	Preferences models.JSONMap `json:"preferences"`
}

// TeacherService coordinates teacher account operations.
type TeacherService struct {
	store     teacherStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(st teacherStore, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: st, validator: validate, logger: logger}
}

// Get returns one teacher by id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher id is required")
	}

	teacher, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		s.logger.Error("failed to load teacher", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// Create provisions a teacher account with a bcrypt-hashed password. The
// unique email constraint is enforced by the backing store; a duplicate
// surfaces as a conflict.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	if _, err := s.store.GetTeacherByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("failed to check teacher email", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	teacher := &models.Teacher{
		Email:        req.Email,
		Name:         req.Name,
		AvatarURL:    req.AvatarURL,
		Preferences:  req.Preferences,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateTeacher(ctx, teacher); err != nil {
		s.logger.Error("failed to create teacher", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return teacher, nil
}
