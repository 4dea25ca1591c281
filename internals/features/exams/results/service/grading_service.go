package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	certificateService "kursusku_backend/internals/features/certificates/service"
	enrollmentService "kursusku_backend/internals/features/courses/enrollments/service"
	examModel "kursusku_backend/internals/features/exams/exams/model"
	"kursusku_backend/internals/features/exams/results/model"
)

type GradingService struct {
	DB           *gorm.DB
	Certificates *certificateService.CertificateService
	Enrollments  *enrollmentService.EnrollmentService
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{
		DB:           db,
		Certificates: certificateService.NewCertificateService(db),
		Enrollments:  enrollmentService.NewEnrollmentService(db),
	}
}

type ScoreSummary struct {
	Score       float64
	TotalPoints float64
	Percentage  float64
}

// ScoreAnswers menilai jawaban user terhadap kunci jawaban.
// Pencocokan: trim whitespace + case-insensitive. Tidak ada nilai parsial —
// jawaban benar dapat bobot penuh, selain itu 0. Soal tanpa jawaban atau
// jawaban kosong dihitung salah, termasuk saat kunci jawabannya juga kosong.
// TotalPoints = jumlah bobot SEMUA soal, bukan hanya yang dijawab.
func ScoreAnswers(questions []examModel.ExamQuestionModel, answers map[string]string) ScoreSummary {
	var sum ScoreSummary
	for _, q := range questions {
		points := q.Points()
		sum.TotalPoints += points

		given, ok := answers[q.ExamQuestionID.String()]
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(given)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, strings.TrimSpace(q.CorrectAnswer())) {
			sum.Score += points
		}
	}

	if sum.TotalPoints > 0 {
		sum.Percentage = sum.Score / sum.TotalPoints * 100
	}
	return sum
}

type SubmitResult struct {
	Result            *model.ExamResultModel
	CertificateIssued bool
}

// SubmitExam: grading penuh satu submission.
// Urutan: load exam → load soal → nilai → simpan hasil (fatal bila gagal) →
// sertifikat + penyelesaian enrollment best-effort (log-and-continue).
func (s *GradingService) SubmitExam(ctx context.Context, userID, examID, courseID uuid.UUID, answers map[string]string, startTime int64) (*SubmitResult, error) {
	var exam examModel.ExamModel
	if err := s.DB.WithContext(ctx).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	var questions []examModel.ExamQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("exam_question_exam_id = ?", examID).
		Order("exam_question_position ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrExamNoQuestions
	}

	sum := ScoreAnswers(questions, answers)
	passed := sum.Percentage >= exam.PassingScore()

	timeSpent := 0
	if startTime > 0 {
		if elapsed := time.Now().UnixMilli() - startTime; elapsed > 0 {
			timeSpent = int(elapsed / 1000)
		}
	}

	storedAnswers := datatypes.JSONMap{}
	for k, v := range answers {
		storedAnswers[k] = v
	}

	result := model.ExamResultModel{
		ExamResultUserID:           userID,
		ExamResultExamID:           examID,
		ExamResultCourseID:         courseID,
		ExamResultScore:            sum.Score,
		ExamResultTotalPoints:      sum.TotalPoints,
		ExamResultPercentage:       sum.Percentage,
		ExamResultPassed:           passed,
		ExamResultAnswers:          storedAnswers,
		ExamResultTimeSpentSeconds: timeSpent,
	}
	if err := s.DB.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, err
	}

	out := &SubmitResult{Result: &result}
	if !passed {
		return out, nil
	}

	// Downstream sync best-effort: hasil ujian sudah tersimpan,
	// kegagalan di sini tidak boleh menggagalkan submission.
	if _, issued, err := s.Certificates.Issue(ctx, userID, courseID, sum.Percentage); err != nil {
		log.Println("[WARNING] Certificate issuance failed:", err)
	} else {
		out.CertificateIssued = issued
	}

	if err := s.Enrollments.MarkCourseCompleted(ctx, userID, courseID, sum.Percentage); err != nil {
		log.Println("[WARNING] Failed to mark course completed:", err)
	}

	return out, nil
}
