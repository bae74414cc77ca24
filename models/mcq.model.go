package models

import (
	"time"

	"gorm.io/datatypes"
)

// MCQ is a multiple choice question. It belongs to both a topic and a test
// paper; the test paper must itself belong to the same topic.
type MCQ struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Question      string            `json:"question" gorm:"type:text;not null"`
	Options       datatypes.JSONMap `json:"options"` // option key -> option text
	CorrectAnswer string            `json:"correct_answer" gorm:"not null"`
	Explanation   string            `json:"explanation" gorm:"type:text"`
	Marks         *int              `json:"marks"`

	TopicID     uint `json:"topic_id" gorm:"index;not null"`
	TestPaperID uint `json:"test_paper_id" gorm:"index;not null"`
}
