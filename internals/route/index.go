package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateRoute "kursusku_backend/internals/features/certificates/route"
	courseRoute "kursusku_backend/internals/features/courses/courses/route"
	enrollmentRoute "kursusku_backend/internals/features/courses/enrollments/route"
	lessonRoute "kursusku_backend/internals/features/courses/lessons/route"
	examRoute "kursusku_backend/internals/features/exams/exams/route"
	examResultRoute "kursusku_backend/internals/features/exams/results/route"
	paymentRoute "kursusku_backend/internals/features/marketplace/payments/route"
	voucherRoute "kursusku_backend/internals/features/marketplace/vouchers/route"
	scheduleRoute "kursusku_backend/internals/features/schedules/route"
	authRoute "kursusku_backend/internals/features/users/auth/route"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh route aplikasi:
//   - /api/auth    → register/login/refresh/logout
//   - /api/public  → tanpa login (katalog kursus, verifikasi sertifikat, webhook)
//   - /api/u       → user login
//   - /api/a       → admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	// 🌐 Publik
	public := app.Group("/api/public")
	courseRoute.CoursePublicRoutes(public, db)
	certificateRoute.CertificatePublicRoutes(public, db)

	// webhook Midtrans: path /api/payments/notification di-skip auth middleware
	api := app.Group("/api")
	paymentRoute.PaymentWebhookRoutes(api, db)

	// 🔒 User login
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	lessonRoute.LessonUserRoutes(private, db)
	enrollmentRoute.EnrollmentUserRoutes(private, db)
	examRoute.ExamUserRoutes(private, db)
	examResultRoute.ExamResultUserRoutes(private, db)
	certificateRoute.CertificateUserRoutes(private, db)
	paymentRoute.PaymentUserRoutes(private, db)
	scheduleRoute.ScheduleUserRoutes(private, db)

	// 🔒 Admin
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin())
	courseRoute.CourseAdminRoutes(admin, db)
	lessonRoute.LessonAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)
	voucherRoute.VoucherAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
}
