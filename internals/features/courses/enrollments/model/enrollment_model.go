package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
)

// EnrollmentModel: satu baris per (user, course).
type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"column:enrollment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course" json:"enrollment_course_id"`
	EnrollmentStatus   string    `gorm:"column:enrollment_status;size:20;not null;default:'active'" json:"enrollment_status"`

	EnrollmentProgressPercent float64    `gorm:"column:enrollment_progress_percent;not null;default:0" json:"enrollment_progress_percent"`
	EnrollmentCompletedAt     *time.Time `gorm:"column:enrollment_completed_at" json:"enrollment_completed_at,omitempty"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
