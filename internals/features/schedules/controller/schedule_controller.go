package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kursusku_backend/internals/features/schedules/model"
	helper "kursusku_backend/internals/helpers"
)

var validateSchedule = validator.New()

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

type createScheduleRequest struct {
	CourseID   string  `json:"course_id" validate:"required,uuid"`
	Title      string  `json:"title" validate:"required,min=3,max=255"`
	StartAt    string  `json:"start_at" validate:"required"`
	EndAt      string  `json:"end_at" validate:"required"`
	SeatQuota  int     `json:"seat_quota" validate:"required,gt=0"`
	MeetingURL *string `json:"meeting_url,omitempty" validate:"omitempty,url"`
}

// ➕ Buat jadwal kelas live (admin)
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var body createScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	startAt, err := time.Parse(time.RFC3339, body.StartAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid start_at format (use RFC3339)")
	}
	endAt, err := time.Parse(time.RFC3339, body.EndAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid end_at format (use RFC3339)")
	}
	if !endAt.After(startAt) {
		return fiber.NewError(fiber.StatusBadRequest, "end_at must be after start_at")
	}

	schedule := model.ClassScheduleModel{
		ClassScheduleCourseID:   uuid.MustParse(body.CourseID),
		ClassScheduleTitle:      body.Title,
		ClassScheduleStartAt:    startAt,
		ClassScheduleEndAt:      endAt,
		ClassScheduleSeatQuota:  body.SeatQuota,
		ClassScheduleMeetingURL: body.MeetingURL,
	}
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		log.Println("[ERROR] Failed to create schedule:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", schedule)
}

// 📄 Jadwal mendatang untuk satu course
func (ctrl *ScheduleController) GetUpcomingSchedules(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var schedules []model.ClassScheduleModel
	if err := ctrl.DB.
		Where("class_schedule_course_id = ? AND class_schedule_start_at > ?", courseID, time.Now()).
		Order("class_schedule_start_at ASC").
		Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}
	return helper.JsonOK(c, "", schedules)
}

// 🎟 Booking kursi: UPDATE bersyarat seat_booked < seat_quota dalam transaksi,
// jadi kuota tidak bisa terlewati oleh request paralel.
func (ctrl *ScheduleController) BookSeat(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid schedule ID")
	}

	var booking model.ScheduleBookingModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var schedule model.ClassScheduleModel
		if err := tx.First(&schedule, "class_schedule_id = ?", scheduleID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Schedule not found")
			}
			return err
		}

		booking = model.ScheduleBookingModel{
			ScheduleBookingUserID:     userID,
			ScheduleBookingScheduleID: scheduleID,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&booking)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Already booked")
		}

		seat := tx.Model(&model.ClassScheduleModel{}).
			Where("class_schedule_id = ? AND class_schedule_seat_booked < class_schedule_seat_quota", scheduleID).
			Update("class_schedule_seat_booked", gorm.Expr("class_schedule_seat_booked + 1"))
		if seat.Error != nil {
			return seat.Error
		}
		if seat.RowsAffected == 0 {
			// kuota penuh → rollback booking
			return fiber.NewError(fiber.StatusConflict, "Schedule is fully booked")
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		log.Println("[ERROR] Failed to book seat:", txErr)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to book seat")
	}

	return helper.JsonCreated(c, "Kursi berhasil dibooking", booking)
}

// 📄 Booking milik user login
func (ctrl *ScheduleController) GetMyBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var bookings []model.ScheduleBookingModel
	if err := ctrl.DB.
		Where("schedule_booking_user_id = ?", userID).
		Order("schedule_booking_created_at DESC").
		Find(&bookings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}
	return helper.JsonOK(c, "", bookings)
}
