package models

import "time"

// ProgressUpdateType classifies a progress note.
type ProgressUpdateType string

const (
	ProgressTypeGeneral     ProgressUpdateType = "general"
	ProgressTypeAcademic    ProgressUpdateType = "academic"
	ProgressTypeBehavioral  ProgressUpdateType = "behavioral"
	ProgressTypeAchievement ProgressUpdateType = "achievement"
)

// ProgressUpdate is an immutable note a teacher records about a student.
// There is no updated_at column; rows are never modified after insert.
type ProgressUpdate struct {
	ID        string             `db:"id" json:"id"`
	StudentID string             `db:"student_id" json:"student_id"`
	TeacherID string             `db:"teacher_id" json:"teacher_id"`
	Content   string             `db:"content" json:"content"`
	Type      ProgressUpdateType `db:"type" json:"type"`
	Data      JSONMap            `db:"data" json:"data,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}
