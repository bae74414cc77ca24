package models

import "time"

// Video note material types
const (
	VideoNoteTypeRTP      = "rtp"
	VideoNoteTypeMTP      = "mtp"
	VideoNoteTypeRevision = "revision"
	VideoNoteTypeOther    = "other"
)

// VideoNote is a linked video lecture under a topic
type VideoNote struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Url  string `json:"url" gorm:"not null"`
	Type string `json:"type" gorm:"default:'other'"` // rtp, mtp, revision, other

	TopicID    uint   `json:"topic_id" gorm:"index;not null"`
	CourseType string `json:"course_type" gorm:"index"` // denormalized for filtering
}
