package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/exams/dto"
	"kursusku_backend/internals/features/exams/exams/model"
	helper "kursusku_backend/internals/helpers"
)

var validateExam = validator.New()

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// ➕ Buat exam baru (admin)
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	exam := model.ExamModel{
		ExamCourseID:        uuid.MustParse(body.ExamCourseID),
		ExamTitle:           body.ExamTitle,
		ExamDescription:     body.ExamDescription,
		ExamPassingScore:    body.ExamPassingScore,
		ExamDurationMinutes: body.ExamDurationMinutes,
	}

	if err := ctrl.DB.Create(&exam).Error; err != nil {
		log.Println("[ERROR] Failed to create exam:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.JsonCreated(c, "Exam berhasil dibuat", dto.ToExamDTO(exam))
}

// 📄 Semua exam dalam satu course (admin)
func (ctrl *ExamController) GetExamsByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var exams []model.ExamModel
	if err := ctrl.DB.
		Where("exam_course_id = ?", courseID).
		Order("exam_created_at ASC").
		Find(&exams).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve exams")
	}

	out := make([]dto.ExamDTO, 0, len(exams))
	for _, e := range exams {
		out = append(out, dto.ToExamDTO(e))
	}
	return helper.JsonOK(c, "", out)
}

// 🔍 Detail exam + daftar soal tanpa kunci jawaban (user)
func (ctrl *ExamController) GetExamDetail(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	var questions []model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_exam_id = ?", examID).
		Order("exam_question_position ASC, exam_question_created_at ASC").
		Find(&questions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	out := dto.ToExamDTO(exam)
	out.Questions = make([]dto.ExamQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out.Questions = append(out.Questions, dto.ToExamQuestionDTO(q))
	}
	return helper.JsonOK(c, "", out)
}

// ✏️ Update exam (partial, admin)
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	var body dto.UpdateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if body.ExamTitle != nil {
		updates["exam_title"] = *body.ExamTitle
	}
	if body.ExamDescription != nil {
		updates["exam_description"] = *body.ExamDescription
	}
	if body.ExamPassingScore != nil {
		updates["exam_passing_score"] = *body.ExamPassingScore
	}
	if body.ExamDurationMinutes != nil {
		updates["exam_duration_minutes"] = *body.ExamDurationMinutes
	}
	if body.ExamIsPublished != nil {
		updates["exam_is_published"] = *body.ExamIsPublished
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&exam).Updates(updates).Error; err != nil {
			log.Println("[ERROR] Failed to update exam:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam")
		}
	}

	return helper.JsonUpdated(c, "Exam berhasil diperbarui", dto.ToExamDTO(exam))
}

// ❌ Hapus exam beserta soalnya (admin)
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_question_exam_id = ?", examID).
			Delete(&model.ExamQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExamModel{}, "exam_id = ?", examID).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete exam:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam")
	}

	return helper.JsonDeleted(c, "Exam berhasil dihapus", fiber.Map{"exam_id": examID})
}
