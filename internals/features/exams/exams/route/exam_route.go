package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "kursusku_backend/internals/features/exams/exams/controller"
)

// 🔒 Admin: kelola exam & soal
func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := examController.NewExamController(db)

	admin.Post("/exams", ctrl.CreateExam)
	admin.Get("/courses/:course_id/exams", ctrl.GetExamsByCourse)
	admin.Put("/exams/:id", ctrl.UpdateExam)
	admin.Delete("/exams/:id", ctrl.DeleteExam)

	admin.Post("/exams/:id/questions", ctrl.CreateExamQuestion)
	admin.Put("/exams/:id/questions/:question_id", ctrl.UpdateExamQuestion)
	admin.Delete("/exams/:id/questions/:question_id", ctrl.DeleteExamQuestion)
}

// 🔒 User: lihat exam (soal tanpa kunci jawaban)
func ExamUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := examController.NewExamController(db)

	private.Get("/exams/:id", ctrl.GetExamDetail)
}
