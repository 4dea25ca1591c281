package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "kursusku_backend/internals/features/exams/results/controller"
)

// 🔒 User: submit & riwayat hasil exam
func ExamResultUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewExamResultController(db)

	private.Post("/exam-results", ctrl.SubmitExam)
	private.Get("/exam-results", ctrl.GetMyResults)
}
