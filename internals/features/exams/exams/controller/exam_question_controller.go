package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kursusku_backend/internals/features/exams/exams/dto"
	"kursusku_backend/internals/features/exams/exams/model"
	helper "kursusku_backend/internals/helpers"
)

// ➕ Tambah soal ke exam (admin)
func (ctrl *ExamController) CreateExamQuestion(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	var body dto.CreateExamQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	question := model.ExamQuestionModel{
		ExamQuestionExamID:   examID,
		ExamQuestionText:     body.ExamQuestionText,
		ExamQuestionCorrect:  &body.ExamQuestionCorrect,
		ExamQuestionPoints:   body.ExamQuestionPoints,
		ExamQuestionPosition: body.ExamQuestionPosition,
	}

	if err := ctrl.DB.Create(&question).Error; err != nil {
		log.Println("[ERROR] Failed to create exam question:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.JsonCreated(c, "Soal berhasil ditambahkan", dto.ToExamQuestionDTO(question))
}

// ✏️ Update soal (partial, admin)
func (ctrl *ExamController) UpdateExamQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("question_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question ID")
	}

	var question model.ExamQuestionModel
	if err := ctrl.DB.First(&question, "exam_question_id = ?", questionID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	var body dto.UpdateExamQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if body.ExamQuestionText != nil {
		updates["exam_question_text"] = *body.ExamQuestionText
	}
	if body.ExamQuestionCorrect != nil {
		updates["exam_question_correct"] = *body.ExamQuestionCorrect
	}
	if body.ExamQuestionPoints != nil {
		updates["exam_question_points"] = *body.ExamQuestionPoints
	}
	if body.ExamQuestionPosition != nil {
		updates["exam_question_position"] = *body.ExamQuestionPosition
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&question).Updates(updates).Error; err != nil {
			log.Println("[ERROR] Failed to update exam question:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update question")
		}
	}

	return helper.JsonUpdated(c, "Soal berhasil diperbarui", dto.ToExamQuestionDTO(question))
}

// ❌ Hapus soal (admin)
func (ctrl *ExamController) DeleteExamQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("question_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question ID")
	}

	if err := ctrl.DB.Delete(&model.ExamQuestionModel{}, "exam_question_id = ?", questionID).Error; err != nil {
		log.Println("[ERROR] Failed to delete exam question:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}

	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"exam_question_id": questionID})
}
