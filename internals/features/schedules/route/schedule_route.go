package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "kursusku_backend/internals/features/schedules/controller"
)

// 🔒 Admin: kelola jadwal kelas live
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	admin.Post("/schedules", ctrl.CreateSchedule)
}

// 🔒 User: lihat jadwal & booking kursi
func ScheduleUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	private.Get("/courses/:course_id/schedules", ctrl.GetUpcomingSchedules)
	private.Post("/schedules/:id/book", ctrl.BookSeat)
	private.Get("/bookings", ctrl.GetMyBookings)
}
