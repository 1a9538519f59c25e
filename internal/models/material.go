package models

import "time"

// MaterialType categorizes course material.
type MaterialType string

const (
	MaterialTypeDocument MaterialType = "document"
	MaterialTypeVideo    MaterialType = "video"
	MaterialTypeImage    MaterialType = "image"
	MaterialTypeLink     MaterialType = "link"
	MaterialTypeOther    MaterialType = "other"
)

// Material represents course content attached to a class.
type Material struct {
	ID          string       `db:"id" json:"id"`
	ClassID     string       `db:"class_id" json:"class_id"`
	Title       string       `db:"title" json:"title"`
	Content     *string      `db:"content" json:"content,omitempty"`
	Type        MaterialType `db:"type" json:"type"`
	FileURL     *string      `db:"file_url" json:"file_url,omitempty"`
	Metadata    JSONMap      `db:"metadata" json:"metadata,omitempty"`
	IsPublished bool         `db:"is_published" json:"is_published"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}
