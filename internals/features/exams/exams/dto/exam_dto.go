package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/exams/exams/model"
)

type CreateExamRequest struct {
	ExamCourseID        string   `json:"exam_course_id" validate:"required,uuid"`
	ExamTitle           string   `json:"exam_title" validate:"required,min=3,max=255"`
	ExamDescription     *string  `json:"exam_description,omitempty"`
	ExamPassingScore    *float64 `json:"exam_passing_score,omitempty" validate:"omitempty,gt=0,lte=100"`
	ExamDurationMinutes *int     `json:"exam_duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

type UpdateExamRequest struct {
	ExamTitle           *string  `json:"exam_title,omitempty" validate:"omitempty,min=3,max=255"`
	ExamDescription     *string  `json:"exam_description,omitempty"`
	ExamPassingScore    *float64 `json:"exam_passing_score,omitempty" validate:"omitempty,gt=0,lte=100"`
	ExamDurationMinutes *int     `json:"exam_duration_minutes,omitempty" validate:"omitempty,gt=0"`
	ExamIsPublished     *bool    `json:"exam_is_published,omitempty"`
}

type CreateExamQuestionRequest struct {
	ExamQuestionText     string   `json:"exam_question_text" validate:"required"`
	ExamQuestionCorrect  string   `json:"exam_question_correct" validate:"required"`
	ExamQuestionPoints   *float64 `json:"exam_question_points,omitempty" validate:"omitempty,gt=0"`
	ExamQuestionPosition int      `json:"exam_question_position"`
}

type UpdateExamQuestionRequest struct {
	ExamQuestionText     *string  `json:"exam_question_text,omitempty"`
	ExamQuestionCorrect  *string  `json:"exam_question_correct,omitempty"`
	ExamQuestionPoints   *float64 `json:"exam_question_points,omitempty" validate:"omitempty,gt=0"`
	ExamQuestionPosition *int     `json:"exam_question_position,omitempty"`
}

// ExamDTO: tampilan exam untuk user — tanpa kunci jawaban.
type ExamDTO struct {
	ExamID              uuid.UUID         `json:"exam_id"`
	ExamCourseID        uuid.UUID         `json:"exam_course_id"`
	ExamTitle           string            `json:"exam_title"`
	ExamDescription     *string           `json:"exam_description,omitempty"`
	ExamPassingScore    float64           `json:"exam_passing_score"`
	ExamDurationMinutes *int              `json:"exam_duration_minutes,omitempty"`
	ExamIsPublished     bool              `json:"exam_is_published"`
	ExamCreatedAt       time.Time         `json:"exam_created_at"`
	Questions           []ExamQuestionDTO `json:"questions,omitempty"`
}

type ExamQuestionDTO struct {
	ExamQuestionID       uuid.UUID `json:"exam_question_id"`
	ExamQuestionText     string    `json:"exam_question_text"`
	ExamQuestionPoints   float64   `json:"exam_question_points"`
	ExamQuestionPosition int       `json:"exam_question_position"`
}

func ToExamDTO(m model.ExamModel) ExamDTO {
	return ExamDTO{
		ExamID:              m.ExamID,
		ExamCourseID:        m.ExamCourseID,
		ExamTitle:           m.ExamTitle,
		ExamDescription:     m.ExamDescription,
		ExamPassingScore:    m.PassingScore(),
		ExamDurationMinutes: m.ExamDurationMinutes,
		ExamIsPublished:     m.ExamIsPublished,
		ExamCreatedAt:       m.ExamCreatedAt,
	}
}

func ToExamQuestionDTO(q model.ExamQuestionModel) ExamQuestionDTO {
	return ExamQuestionDTO{
		ExamQuestionID:       q.ExamQuestionID,
		ExamQuestionText:     q.ExamQuestionText,
		ExamQuestionPoints:   q.Points(),
		ExamQuestionPosition: q.ExamQuestionPosition,
	}
}
