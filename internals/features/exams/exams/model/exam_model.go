package model

import (
	"time"

	"github.com/google/uuid"
)

// Passing score default kalau exam tidak menyetel ambang sendiri.
const DefaultPassingScore = 50.0

type ExamModel struct {
	ExamID          uuid.UUID `gorm:"column:exam_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"exam_id"`
	ExamCourseID    uuid.UUID `gorm:"column:exam_course_id;type:uuid;not null;index" json:"exam_course_id"`
	ExamTitle       string    `gorm:"column:exam_title;size:255;not null" json:"exam_title"`
	ExamDescription *string   `gorm:"column:exam_description;type:text" json:"exam_description,omitempty"`

	// nullable → pakai DefaultPassingScore saat grading
	ExamPassingScore    *float64 `gorm:"column:exam_passing_score" json:"exam_passing_score,omitempty"`
	ExamDurationMinutes *int     `gorm:"column:exam_duration_minutes" json:"exam_duration_minutes,omitempty"`
	ExamIsPublished     bool     `gorm:"column:exam_is_published;not null;default:false" json:"exam_is_published"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}

// PassingScore mengembalikan ambang kelulusan efektif.
func (m *ExamModel) PassingScore() float64 {
	if m.ExamPassingScore == nil || *m.ExamPassingScore <= 0 {
		return DefaultPassingScore
	}
	return *m.ExamPassingScore
}
