package models

import "time"

// Note material types
const (
	NoteTypeRTP   = "rtp"
	NoteTypeMTP   = "mtp"
	NoteTypeOther = "other"
)

// Note is an uploaded PDF study note under a topic
type Note struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Type        string `json:"type" gorm:"default:'other'"` // rtp, mtp, other

	FileName string `json:"file_name" gorm:"not null"`
	FileUrl  string `json:"file_url" gorm:"not null"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`

	TopicID    uint   `json:"topic_id" gorm:"index;not null"`
	CourseType string `json:"course_type" gorm:"index"` // denormalized for filtering
}
