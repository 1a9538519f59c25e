package models

import "time"

// Class represents a course section owned by exactly one teacher.
type Class struct {
	ID          string    `db:"id" json:"id"`
	TeacherID   string    `db:"teacher_id" json:"teacher_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Subject     *string   `db:"subject" json:"subject,omitempty"`
	GradeLevel  *string   `db:"grade_level" json:"grade_level,omitempty"`
	Settings    JSONMap   `db:"settings" json:"settings,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
