package models

import "time"

// Course types supported by the platform
const (
	CourseTypeCAInter = "CAInter"
	CourseTypeCAFinal = "CAFinal"
)

// Course is the top of the content hierarchy; one course per exam level
type Course struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Name       string `json:"name" gorm:"not null"`
	CourseType string `json:"course_type" gorm:"index;not null"` // CAInter, CAFinal

	Topics []Topic `json:"topics,omitempty" gorm:"foreignKey:CourseID"`
}

// IsValidCourseType reports whether the given course type is recognised
func IsValidCourseType(courseType string) bool {
	return courseType == CourseTypeCAInter || courseType == CourseTypeCAFinal
}
