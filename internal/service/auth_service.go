package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/pkg/config"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type authStore interface {
	GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
}

// AuthService verifies teacher credentials against stored bcrypt hashes and
// issues JWT access tokens.
type AuthService struct {
	store     authStore
	validator *validator.Validate
	logger    *zap.Logger
	config    config.AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(st authStore, validate *validator.Validate, logger *zap.Logger, cfg config.AuthConfig) *AuthService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: st, validator: validate, logger: logger, config: cfg}
}

// Login authenticates a teacher and returns the issued token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	teacher, err := s.store.GetTeacherByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	token, err := s.generateAccessToken(teacher)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &models.LoginResponse{
		Success: true,
		User: models.TeacherInfo{
			ID:    teacher.ID,
			Email: teacher.Email,
			Name:  teacher.Name,
			Role:  "teacher",
		},
		Token:   token,
		Message: "Login successful",
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(raw string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

// EnsureDemoTeacher creates the configured bootstrap account when it does
// not exist yet, replacing the old hardcoded credential check with a real
// record whose password is bcrypt-hashed.
func (s *AuthService) EnsureDemoTeacher(ctx context.Context) error {
	if s.config.DemoEmail == "" || s.config.DemoPassword == "" {
		return nil
	}

	if _, err := s.store.GetTeacherByEmail(ctx, s.config.DemoEmail); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	teacher := &models.Teacher{
		Email:        s.config.DemoEmail,
		Name:         s.config.DemoName,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateTeacher(ctx, teacher); err != nil {
		return err
	}

	s.logger.Info("bootstrap teacher created", zap.String("email", teacher.Email))
	return nil
}

func (s *AuthService) generateAccessToken(teacher *models.Teacher) (string, error) {
	now := time.Now().UTC()
	claims := models.JWTClaims{
		TeacherID: teacher.ID,
		Email:     teacher.Email,
		Name:      teacher.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   teacher.ID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
