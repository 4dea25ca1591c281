package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/results/dto"
	"kursusku_backend/internals/features/exams/results/model"
	"kursusku_backend/internals/features/exams/results/service"
	helper "kursusku_backend/internals/helpers"
)

var validateResult = validator.New()

type ExamResultController struct {
	DB      *gorm.DB
	Grading *service.GradingService
}

func NewExamResultController(db *gorm.DB) *ExamResultController {
	return &ExamResultController{DB: db, Grading: service.NewGradingService(db)}
}

// 📝 Submit jawaban exam → dinilai server-side
func (ctrl *ExamResultController) SubmitExam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SubmitExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResult.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	examID := uuid.MustParse(body.ExamID)
	courseID := uuid.MustParse(body.CourseID)

	res, err := ctrl.Grading.SubmitExam(c.UserContext(), userID, examID, courseID, body.Answers, body.StartTime)
	if err != nil {
		switch err {
		case service.ErrExamNotFound:
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		case service.ErrExamNoQuestions:
			return fiber.NewError(fiber.StatusNotFound, "Exam has no questions")
		default:
			log.Println("[ERROR] Failed to submit exam:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit exam")
		}
	}

	return helper.JsonOK(c, "Exam berhasil dinilai", dto.SubmitExamResponse{
		Score:             res.Result.ExamResultScore,
		TotalPoints:       res.Result.ExamResultTotalPoints,
		Percentage:        res.Result.ExamResultPercentage,
		Passed:            res.Result.ExamResultPassed,
		CertificateIssued: res.CertificateIssued,
		ResultID:          res.Result.ExamResultID,
	})
}

// 📄 Riwayat hasil exam milik user login
func (ctrl *ExamResultController) GetMyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	query := ctrl.DB.Where("exam_result_user_id = ?", userID)
	if examID := c.Query("exam_id"); examID != "" {
		id, err := uuid.Parse(examID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
		}
		query = query.Where("exam_result_exam_id = ?", id)
	}

	var results []model.ExamResultModel
	if err := query.Order("exam_result_submitted_at DESC").Find(&results).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve exam results")
	}

	out := make([]dto.ExamResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToExamResultDTO(r))
	}
	return helper.JsonOK(c, "", out)
}
