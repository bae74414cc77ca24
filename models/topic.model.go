package models

import "time"

// Topic is a subject area within a course (e.g. "Taxation")
type Topic struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
}
