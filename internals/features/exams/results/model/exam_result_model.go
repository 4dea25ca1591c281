package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExamResultModel struct {
	ExamResultID       uuid.UUID `gorm:"column:exam_result_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"exam_result_id"`
	ExamResultUserID   uuid.UUID `gorm:"column:exam_result_user_id;type:uuid;not null;index" json:"exam_result_user_id"`
	ExamResultExamID   uuid.UUID `gorm:"column:exam_result_exam_id;type:uuid;not null;index" json:"exam_result_exam_id"`
	ExamResultCourseID uuid.UUID `gorm:"column:exam_result_course_id;type:uuid;not null;index" json:"exam_result_course_id"`

	ExamResultScore       float64 `gorm:"column:exam_result_score;not null" json:"exam_result_score"`
	ExamResultTotalPoints float64 `gorm:"column:exam_result_total_points;not null" json:"exam_result_total_points"`
	ExamResultPercentage  float64 `gorm:"column:exam_result_percentage;not null" json:"exam_result_percentage"`
	ExamResultPassed      bool    `gorm:"column:exam_result_passed;not null" json:"exam_result_passed"`

	// jawaban user apa adanya, untuk review
	ExamResultAnswers datatypes.JSONMap `gorm:"column:exam_result_answers;type:jsonb" json:"exam_result_answers"`

	ExamResultTimeSpentSeconds int       `gorm:"column:exam_result_time_spent_seconds;not null;default:0" json:"exam_result_time_spent_seconds"`
	ExamResultSubmittedAt      time.Time `gorm:"column:exam_result_submitted_at;autoCreateTime" json:"exam_result_submitted_at"`
}

func (ExamResultModel) TableName() string {
	return "exam_results"
}
