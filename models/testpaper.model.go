package models

import (
	"time"

	"gorm.io/gorm"
)

// TestPaper is a timed MCQ paper under a topic
type TestPaper struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Name             string `json:"name" gorm:"not null"`
	Description      string `json:"description"`
	TimeLimitMinutes int    `json:"time_limit_minutes" gorm:"default:0"`
	TopicID          uint   `json:"topic_id" gorm:"index;not null"`

	IsPublished        bool       `json:"is_published" gorm:"default:false"`
	ScheduledPublishAt *time.Time `json:"scheduled_publish_at"`
}

// TestPaperTotalMarks computes the paper's total as the sum of its live
// MCQ marks; an MCQ without marks counts as zero.
func TestPaperTotalMarks(db *gorm.DB, testPaperID uint) (int, error) {
	var total int
	err := db.Model(&MCQ{}).
		Scopes(Visible).
		Where("test_paper_id = ?", testPaperID).
		Select("COALESCE(SUM(COALESCE(marks, 0)), 0)").
		Scan(&total).Error
	return total, err
}
