package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating a teacher.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TeacherInfo describes the authenticated teacher in responses.
type TeacherInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse is the public login contract.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    TeacherInfo `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	TeacherID string `json:"teacher_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}
