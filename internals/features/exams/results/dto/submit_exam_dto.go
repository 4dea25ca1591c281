package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/exams/results/model"
)

type SubmitExamRequest struct {
	ExamID   string            `json:"exam_id" validate:"required,uuid"`
	CourseID string            `json:"course_id" validate:"required,uuid"`
	Answers  map[string]string `json:"answers" validate:"required"`
	// epoch milliseconds saat user mulai mengerjakan
	StartTime int64 `json:"start_time"`
}

type SubmitExamResponse struct {
	Score             float64   `json:"score"`
	TotalPoints       float64   `json:"total_points"`
	Percentage        float64   `json:"percentage"`
	Passed            bool      `json:"passed"`
	CertificateIssued bool      `json:"certificate_issued"`
	ResultID          uuid.UUID `json:"result_id"`
}

type ExamResultDTO struct {
	ExamResultID               uuid.UUID `json:"exam_result_id"`
	ExamResultExamID           uuid.UUID `json:"exam_result_exam_id"`
	ExamResultCourseID         uuid.UUID `json:"exam_result_course_id"`
	ExamResultScore            float64   `json:"exam_result_score"`
	ExamResultTotalPoints      float64   `json:"exam_result_total_points"`
	ExamResultPercentage       float64   `json:"exam_result_percentage"`
	ExamResultPassed           bool      `json:"exam_result_passed"`
	ExamResultTimeSpentSeconds int       `json:"exam_result_time_spent_seconds"`
	ExamResultSubmittedAt      time.Time `json:"exam_result_submitted_at"`
}

func ToExamResultDTO(m model.ExamResultModel) ExamResultDTO {
	return ExamResultDTO{
		ExamResultID:               m.ExamResultID,
		ExamResultExamID:           m.ExamResultExamID,
		ExamResultCourseID:         m.ExamResultCourseID,
		ExamResultScore:            m.ExamResultScore,
		ExamResultTotalPoints:      m.ExamResultTotalPoints,
		ExamResultPercentage:       m.ExamResultPercentage,
		ExamResultPassed:           m.ExamResultPassed,
		ExamResultTimeSpentSeconds: m.ExamResultTimeSpentSeconds,
		ExamResultSubmittedAt:      m.ExamResultSubmittedAt,
	}
}
