package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultQuestionPoints = 1.0

type ExamQuestionModel struct {
	ExamQuestionID     uuid.UUID `gorm:"column:exam_question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"exam_question_id"`
	ExamQuestionExamID uuid.UUID `gorm:"column:exam_question_exam_id;type:uuid;not null;index" json:"exam_question_exam_id"`
	ExamQuestionText   string    `gorm:"column:exam_question_text;type:text;not null" json:"exam_question_text"`

	// Kunci jawaban bisa tersimpan di salah satu dari dua kolom:
	// exam_question_correct (skema sekarang) atau exam_question_answer
	// (kolom lama, masih ada datanya). Normalisasi lewat CorrectAnswer().
	ExamQuestionCorrect      *string `gorm:"column:exam_question_correct" json:"-"`
	ExamQuestionAnswerLegacy *string `gorm:"column:exam_question_answer" json:"-"`

	// nullable → pakai DefaultQuestionPoints saat grading
	ExamQuestionPoints   *float64 `gorm:"column:exam_question_points" json:"exam_question_points,omitempty"`
	ExamQuestionPosition int      `gorm:"column:exam_question_position;not null;default:0" json:"exam_question_position"`

	ExamQuestionCreatedAt time.Time `gorm:"column:exam_question_created_at;autoCreateTime" json:"exam_question_created_at"`
	ExamQuestionUpdatedAt time.Time `gorm:"column:exam_question_updated_at;autoUpdateTime" json:"exam_question_updated_at"`
}

func (ExamQuestionModel) TableName() string {
	return "exam_questions"
}

// CorrectAnswer menormalkan dua layout kolom kunci jawaban
// menjadi satu nilai kanonik.
func (q *ExamQuestionModel) CorrectAnswer() string {
	if q.ExamQuestionCorrect != nil && strings.TrimSpace(*q.ExamQuestionCorrect) != "" {
		return *q.ExamQuestionCorrect
	}
	if q.ExamQuestionAnswerLegacy != nil {
		return *q.ExamQuestionAnswerLegacy
	}
	return ""
}

// Points mengembalikan bobot efektif soal (default 1).
func (q *ExamQuestionModel) Points() float64 {
	if q.ExamQuestionPoints == nil || *q.ExamQuestionPoints <= 0 {
		return DefaultQuestionPoints
	}
	return *q.ExamQuestionPoints
}
